package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tlvdoc/tlvdoc/doc"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "decode <binary-file> <json-file>",
		Short: "Decode a binary document into JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args[0], args[1])
		},
	})
}

func runDecode(binaryPath, jsonPath string) error {
	bin, err := readFile(binaryPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", binaryPath, err)
	}
	printVerbose("decoding %s\n", binaryPath)
	text, err := doc.Decode(bin)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := os.WriteFile(jsonPath, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", jsonPath, err)
	}
	printInfo("wrote %d bytes to %s\n", len(text), jsonPath)
	return nil
}
