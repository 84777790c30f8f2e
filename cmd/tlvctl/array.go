package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tlvdoc/tlvdoc/doc"
	"github.com/tlvdoc/tlvdoc/doc/path"
	"github.com/tlvdoc/tlvdoc/doc/transform"
)

func init() {
	rootCmd.AddCommand(
		newArrayInsertCmd("array-prepend", true),
		newArrayInsertCmd("array-append", false),
	)
}

func newArrayInsertCmd(use string, prepend bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <binary-file> <path> <json-value>",
		Short: "Insert json-value at the front or back of the array at path",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArrayInsert(args[0], args[1], args[2], prepend)
		},
	}
}

func runArrayInsert(binaryPath, rawPath, jsonValue string, prepend bool) error {
	bin, err := readFile(binaryPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", binaryPath, err)
	}
	p, err := path.Parse(rawPath)
	if err != nil {
		return fmt.Errorf("parsing path: %w", err)
	}
	v, err := doc.Encode(jsonValue)
	if err != nil {
		return fmt.Errorf("encoding value: %w", err)
	}

	tr := transform.New(bin)
	if prepend {
		err = tr.ArrayPrepend(p, v)
	} else {
		err = tr.ArrayAppend(p, v)
	}
	if err != nil {
		return fmt.Errorf("array insert: %w", err)
	}

	out := tr.Output()
	if err := os.WriteFile(binaryPath, out, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", binaryPath, err)
	}
	printInfo("wrote %d bytes to %s\n", len(out), binaryPath)
	return nil
}
