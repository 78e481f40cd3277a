package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-apfsck/internal/parsers/keys"
	"github.com/deploymenttheory/go-apfsck/internal/parsers/objects"
	"github.com/deploymenttheory/go-apfsck/internal/types"
)

var (
	decodeOmapKey   bool
	decodeOmapValue bool
)

var keyCmd = &cobra.Command{
	Use:   "key <hex>",
	Short: "Decode a raw catalog or object map key",
	Long: `Decode a hex-encoded raw record key into its canonical form: object id,
record type tag, number, and name. Catalog keys are decoded by default;
--omap decodes an object map key and --omap-value an object map value
instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadContext(cmd)
		if err != nil {
			return err
		}

		raw, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
		if err != nil {
			return fmt.Errorf("invalid hex key: %w", err)
		}

		if decodeOmapValue {
			val, err := objects.ReadOmapValue(raw, ctx)
			if err != nil {
				return err
			}
			fmt.Printf("flags:  0x%x\n", val.OvFlags)
			fmt.Printf("size:   %d\n", val.OvSize)
			fmt.Printf("paddr:  0x%x\n", val.OvPaddr)
			return nil
		}

		var key keys.Key
		if decodeOmapKey {
			key, err = keys.ReadOmapKey(raw)
		} else {
			key, err = keys.ReadCatalogKey(raw, ctx)
		}
		if err != nil {
			return err
		}

		idNote := ""
		if !decodeOmapKey && key.ID >= types.SystemObjIdMark {
			idNote = " (system volume)"
		}
		kindNote := ""
		if key.Kind > types.ApfsTypeMaxValid {
			kindNote = " (invalid)"
		}
		fmt.Printf("id:     0x%x%s\n", key.ID, idNote)
		fmt.Printf("type:   %d%s\n", key.Kind, kindNote)
		fmt.Printf("number: 0x%x\n", key.Number)
		if key.Name != nil {
			fmt.Printf("name:   %q\n", key.Name)
		}
		return nil
	},
}

func init() {
	keyCmd.Flags().BoolVar(&decodeOmapKey, "omap", false, "decode an object map key")
	keyCmd.Flags().BoolVar(&decodeOmapValue, "omap-value", false, "decode an object map value")
}
