package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tlvdoc/tlvdoc/doc"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "encode <json-file> <binary-file>",
		Short: "Encode a JSON file into the binary document format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(args[0], args[1])
		},
	})
}

func runEncode(jsonPath, binaryPath string) error {
	text, err := readFile(jsonPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", jsonPath, err)
	}
	printVerbose("encoding %s\n", jsonPath)
	bin, err := doc.Encode(string(text))
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := os.WriteFile(binaryPath, bin, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", binaryPath, err)
	}
	printInfo("wrote %d bytes to %s\n", len(bin), binaryPath)
	return nil
}
