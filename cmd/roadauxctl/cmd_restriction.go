package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vectortile/roadaux/restriction"
)

var cmdRestriction = &cobra.Command{
	Use:   "restriction",
	Short: "Inspect restriction-section blobs",
}

var cmdRestrictionInspect = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Decode a restriction section and print a summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		restrictions, err := restriction.Decode(data)
		if err != nil {
			return err
		}

		var noCount, onlyCount int
		for _, r := range restrictions {
			if r.Type == restriction.No {
				noCount++
			} else {
				onlyCount++
			}
		}

		fmt.Printf("restrictions: %d (No: %d, Only: %d)\n", len(restrictions), noCount, onlyCount)
		return nil
	},
}

var cmdRestrictionRoundtrip = &cobra.Command{
	Use:   "roundtrip [file]",
	Short: "Decode then re-encode a restriction section, verifying a byte-exact match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		restrictions, err := restriction.Decode(data)
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}

		reencoded, err := restriction.Encode(restrictions)
		if err != nil {
			return fmt.Errorf("re-encode: %w", err)
		}

		if !bytes.Equal(data, reencoded) {
			return fmt.Errorf("round trip mismatch: %d input bytes, %d re-encoded bytes", len(data), len(reencoded))
		}

		fmt.Println("round trip OK")
		return nil
	},
}

func init() {
	cmdRoot.AddCommand(cmdRestriction)
	cmdRestriction.AddCommand(cmdRestrictionInspect)
	cmdRestriction.AddCommand(cmdRestrictionRoundtrip)
}
