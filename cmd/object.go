package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/containerd/log"
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-apfsck/internal/checker"
	"github.com/deploymenttheory/go-apfsck/internal/device"
	"github.com/deploymenttheory/go-apfsck/internal/interfaces"
	"github.com/deploymenttheory/go-apfsck/internal/parsers/objects"
	"github.com/deploymenttheory/go-apfsck/internal/types"
)

var (
	virtualObject bool
	omapPaddr     int64
	omapXid       uint64
	keepGoing     bool
)

var objectCmd = &cobra.Command{
	Use:   "object <oid>...",
	Short: "Load objects from the image and validate their headers",
	Long: `Load one or more objects from the image and validate their headers: object
id, transaction id, type flags, and the Fletcher-64 block checksum.

By default each oid is treated as a physical block address. With --virtual,
the oid is translated through an object map entry supplied explicitly via
--omap-paddr and --omap-xid, and the block's transaction id is cross-checked
against the mapping.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadContext(cmd)
		if err != nil {
			return err
		}
		return runObject(cmd, args, ctx)
	},
}

func init() {
	objectCmd.Flags().BoolVar(&virtualObject, "virtual", false, "translate the oid through an object map entry")
	objectCmd.Flags().Int64Var(&omapPaddr, "omap-paddr", 0, "physical block from the object map entry")
	objectCmd.Flags().Uint64Var(&omapXid, "omap-xid", 0, "transaction id from the object map entry")
	objectCmd.Flags().BoolVar(&keepGoing, "keep-going", false, "report all violations instead of stopping at the first")
}

// loadContext merges the viper configuration with any explicitly set flags.
func loadContext(cmd *cobra.Command) (*checker.Context, error) {
	config, err := LoadCheckConfig()
	if err != nil {
		return nil, err
	}

	flags := cmd.Root().PersistentFlags()
	if flags.Changed("block-size") {
		config.BlockSize = blockSize
	}
	if flags.Changed("case-insensitive") {
		config.CaseInsensitive = caseInsensitive
	}
	if flags.Changed("max-xid") {
		config.MaxXid = maxXid
	}
	if flags.Changed("container-uuid") {
		config.ContainerUUID = containerUUID
	}

	return config.Context()
}

// staticOmapResolver serves a single mapping supplied on the command line.
// A full checker wires the object map B-tree here instead.
type staticOmapResolver struct {
	mapping interfaces.OmapMapping
}

func (r *staticOmapResolver) Lookup(oid types.OidT) (interfaces.OmapMapping, error) {
	return r.mapping, nil
}

func runObject(cmd *cobra.Command, args []string, ctx *checker.Context) error {
	if devicePath == "" {
		return fmt.Errorf("--device is required")
	}

	dev, err := device.Open(devicePath, ctx.BlockSize)
	if err != nil {
		return err
	}
	defer dev.Close()

	var omap interfaces.OmapResolver
	if virtualObject {
		if omapXid == 0 {
			return fmt.Errorf("--virtual requires --omap-xid")
		}
		omap = &staticOmapResolver{mapping: interfaces.OmapMapping{
			Paddr: types.Paddr(omapPaddr),
			Xid:   types.XidT(omapXid),
		}}
	}

	var reporter checker.Reporter
	var accumulator *checker.AccumulatingReporter
	if keepGoing {
		accumulator = checker.NewAccumulatingReporter()
		reporter = accumulator
	} else {
		reporter = checker.NewFatalReporter(ctx.ContainerUUID)
	}

	for _, arg := range args {
		oid, err := strconv.ParseUint(arg, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid oid %q: %w", arg, err)
		}

		_, hdr, err := objects.ReadObject(dev, omap, types.OidT(oid), ctx)
		if err != nil {
			v, ok := checker.AsViolation(err)
			if !ok {
				return err
			}
			if err := reporter.Report(v); err != nil {
				return err
			}
			continue
		}

		log.G(context.Background()).
			WithField("oid", fmt.Sprintf("0x%x", hdr.Oid)).
			WithField("block", fmt.Sprintf("0x%x", hdr.BlockNr)).
			WithField("type", fmt.Sprintf("0x%x", hdr.Type)).
			WithField("subtype", fmt.Sprintf("0x%x", hdr.Subtype)).
			Debug("object validated")
		fmt.Printf("oid 0x%x: valid (block 0x%x, type 0x%x, subtype 0x%x)\n",
			hdr.Oid, hdr.BlockNr, hdr.Type, hdr.Subtype)
	}

	if accumulator != nil {
		for _, v := range accumulator.Violations() {
			fmt.Printf("%s: %v\n", v.Category, v)
		}
		if len(accumulator.Violations()) > 0 {
			return fmt.Errorf("%d violation(s) found", len(accumulator.Violations()))
		}
	}
	return nil
}
