package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tlvdoc/tlvdoc/doc"
	"github.com/tlvdoc/tlvdoc/doc/path"
	"github.com/tlvdoc/tlvdoc/doc/transform"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "get <binary-file> <path>",
		Short: "Extract the value addressed by path and print it as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args[0], args[1])
		},
	})
}

func runGet(binaryPath, rawPath string) error {
	bin, err := readFile(binaryPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", binaryPath, err)
	}
	p, err := path.Parse(rawPath)
	if err != nil {
		return fmt.Errorf("parsing path: %w", err)
	}

	tr := transform.New(bin)
	v, err := tr.Extract(p)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	text, err := doc.Decode(v)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{"path": rawPath, "value": text})
	}
	printInfo("%s\n", text)
	return nil
}
