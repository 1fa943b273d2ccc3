package main

import (
	"os"

	"github.com/spf13/cobra"
)

// cmdRoot is the base command when no other command has been specified.
var cmdRoot = &cobra.Command{
	Use:   "roadauxctl",
	Short: "Inspect and round-trip restriction and traffic section blobs",
	Long: `
roadauxctl reads restriction-table and traffic-overlay section blobs from
disk, decodes them, and can re-encode them to verify a byte-exact round
trip. It has no write path of its own: blobs are produced by the map
pipeline that owns a tile's restriction and key vectors.
`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	DisableAutoGenTag: true,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help() //nolint:errcheck
		os.Exit(0)
	},
}
