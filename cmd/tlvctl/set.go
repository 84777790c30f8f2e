package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tlvdoc/tlvdoc/doc"
	"github.com/tlvdoc/tlvdoc/doc/path"
	"github.com/tlvdoc/tlvdoc/doc/transform"
)

var setUnset bool

func init() {
	cmd := &cobra.Command{
		Use:   "set <binary-file> <path> [json-value]",
		Short: "Set, or with --unset remove, the value addressed by path",
		Long: `Rewrites the binary file in place (the input is read fully, edited
in memory, then overwritten). With --unset, json-value is omitted.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := ""
			if len(args) == 3 {
				value = args[2]
			}
			return runSet(args[0], args[1], value)
		},
	}
	cmd.Flags().BoolVar(&setUnset, "unset", false, "remove the value at path instead of setting it")
	rootCmd.AddCommand(cmd)
}

func runSet(binaryPath, rawPath, jsonValue string) error {
	bin, err := readFile(binaryPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", binaryPath, err)
	}
	p, err := path.Parse(rawPath)
	if err != nil {
		return fmt.Errorf("parsing path: %w", err)
	}

	tr := transform.New(bin)

	if setUnset {
		if err := tr.Unset(p); err != nil {
			return fmt.Errorf("unset: %w", err)
		}
	} else {
		if jsonValue == "" {
			return fmt.Errorf("set requires a json-value argument (or pass --unset)")
		}
		v, err := doc.Encode(jsonValue)
		if err != nil {
			return fmt.Errorf("encoding value: %w", err)
		}
		if err := tr.Set(p, v); err != nil {
			return fmt.Errorf("set: %w", err)
		}
	}

	out := tr.Output()
	if err := os.WriteFile(binaryPath, out, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", binaryPath, err)
	}
	printInfo("wrote %d bytes to %s\n", len(out), binaryPath)
	return nil
}
