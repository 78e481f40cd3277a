// Package cmd implements the go-apfsck command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/containerd/log"
	"github.com/spf13/cobra"
)

var (
	// Global output flags
	verbose    bool
	devicePath string

	// Checking context overrides, shared by all subcommands
	blockSize       uint32
	caseInsensitive bool
	maxXid          uint64
	containerUUID   string
)

var rootCmd = &cobra.Command{
	Use:   "go-apfsck",
	Short: "Offline consistency checker core for APFS images",
	Long: `go-apfsck is a read-only consistency checker for Apple File System (APFS)
images. It decodes catalog and object map record keys, recomputes filename
hashes, and validates object headers and Fletcher-64 block checksums without
ever writing to the image.

Commands:
  object      Load objects from the image and validate their headers
  key         Decode a raw catalog or object map key
  hash        Compute the packed directory entry hash for a filename`,
	Version: "0.1.0-dev",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			_ = log.SetLevel("debug")
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&devicePath, "device", "", "path to the raw image file")
	rootCmd.PersistentFlags().Uint32Var(&blockSize, "block-size", 0, "container block size in bytes")
	rootCmd.PersistentFlags().BoolVar(&caseInsensitive, "case-insensitive", false, "treat the volume as case-insensitive")
	rootCmd.PersistentFlags().Uint64Var(&maxXid, "max-xid", 0, "newest known transaction id")
	rootCmd.PersistentFlags().StringVar(&containerUUID, "container-uuid", "", "container UUID for report labels")

	rootCmd.AddCommand(
		objectCmd,
		keyCmd,
		hashCmd,
	)
}
