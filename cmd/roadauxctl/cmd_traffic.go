package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vectortile/roadaux/traffic"
)

var cmdTraffic = &cobra.Command{
	Use:   "traffic",
	Short: "Inspect traffic-key and traffic-value section blobs",
}

var cmdTrafficKeysInspect = &cobra.Command{
	Use:   "keys-inspect [file]",
	Short: "Decode a traffic-key section and print a summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		keys, err := traffic.DecodeKeys(data)
		if err != nil {
			return err
		}

		features := map[uint32]struct{}{}
		for _, k := range keys {
			features[k.Fid] = struct{}{}
		}

		fmt.Printf("keys: %d across %d features\n", len(keys), len(features))
		return nil
	},
}

var cmdTrafficKeysRoundtrip = &cobra.Command{
	Use:   "keys-roundtrip [file]",
	Short: "Decode then re-encode a traffic-key section, verifying a byte-exact match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		keys, err := traffic.DecodeKeys(data)
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}

		reencoded, err := traffic.EncodeKeys(keys)
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

var cmdTrafficValuesInspect = &cobra.Command{
	Use:   "values-inspect [file]",
	Short: "Decode a traffic-value section and print a summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		values, err := traffic.DecodeValues(data)
		if err != nil {
			return err
		}

		counts := make(map[traffic.SpeedGroup]int)
		for _, v := range values {
			counts[v]++
		}

		fmt.Printf("values: %d\n", len(values))
		for sg := traffic.Unknown; sg <= traffic.Clear; sg++ {
			if n := counts[sg]; n > 0 {
				fmt.Printf("  %-8s %d\n", sg, n)
			}
		}
		return nil
	},
}

func init() {
	cmdRoot.AddCommand(cmdTraffic)
	cmdTraffic.AddCommand(cmdTrafficKeysInspect)
	cmdTraffic.AddCommand(cmdTrafficKeysRoundtrip)
	cmdTraffic.AddCommand(cmdTrafficValuesInspect)
}
