package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tlvdoc/tlvdoc/doc"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "roundtrip",
		Short: "Differential fuzz driver: read JSON lines from stdin and report divergence",
		Long: `For each line of JSON read from stdin, encodes and decodes it twice
over (binary1/json1 then binary2/json2 from json1, then binary3/json3 also
from json1) and reports any line where the second and third passes
disagree with each other, either in JSON text or in binary bytes. A
well-behaved codec converges after the first pass: json1 need not equal
the input line, but json2 must equal json3 and binary2 must equal
binary3 byte-for-byte.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoundtrip(os.Stdin, os.Stdout)
		},
	})
}

func runRoundtrip(in *os.File, out *os.File) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<24)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		binary1, err := doc.Encode(line)
		if err != nil {
			fmt.Fprintln(out, "failure on binary1 conversion")
			continue
		}
		json1, err := doc.Decode(binary1)
		if err != nil {
			fmt.Fprintln(out, "failure on json1 conversion")
			continue
		}
		binary2, err := doc.Encode(json1)
		if err != nil {
			fmt.Fprintln(out, "failure on binary2 conversion")
			continue
		}
		json2, err := doc.Decode(binary2)
		if err != nil {
			fmt.Fprintln(out, "failure on json2 conversion")
			continue
		}
		binary3, err := doc.Encode(json1)
		if err != nil {
			fmt.Fprintln(out, "failure on binary3 conversion")
			continue
		}
		json3, err := doc.Decode(binary3)
		if err != nil {
			fmt.Fprintln(out, "failure on json3 conversion")
			continue
		}

		jsonSame := json2 == json3
		binarySame := string(binary2) == string(binary3)

		if !jsonSame || !binarySame {
			fmt.Fprintf(out, "json_same=%s binary_same=%s\n\t%s\n",
				yesNo(jsonSame), yesNo(binarySame), line)
		}
	}
	return scanner.Err()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
