package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-apfsck/internal/normalize"
	"github.com/deploymenttheory/go-apfsck/internal/types"
)

var hashCmd = &cobra.Command{
	Use:   "hash <name>",
	Short: "Compute the packed directory entry hash for a filename",
	Long: `Compute the hash-and-length field a hashed directory entry key would store
for the given filename, under the configured case sensitivity mode.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadContext(cmd)
		if err != nil {
			return err
		}

		packed := normalize.DrecHash([]byte(args[0]), !ctx.CaseSensitive)
		fmt.Printf("packed: 0x%08x\n", packed)
		fmt.Printf("hash:   0x%06x\n", (packed&types.JDrecHashMask)>>types.JDrecHashShift)
		fmt.Printf("length: %d\n", packed&types.JDrecLenMask)
		return nil
	},
}
