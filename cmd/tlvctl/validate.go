package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tlvdoc/tlvdoc/doc"
)

var validateLimits string

func init() {
	cmd := &cobra.Command{
		Use:   "validate <binary-file>",
		Short: "Validate a binary document's structure",
		Long: `Limits presets:
  default - generous bounds suitable for trusted input
  strict  - tight bounds suitable for untrusted network input
  relaxed - no bounds at all`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
	cmd.Flags().StringVar(&validateLimits, "limits", "default", "limits preset: default, strict, relaxed")
	rootCmd.AddCommand(cmd)
}

func runValidate(binaryPath string) error {
	bin, err := readFile(binaryPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", binaryPath, err)
	}

	var limits doc.Limits
	switch validateLimits {
	case "default":
		limits = doc.DefaultLimits()
	case "strict":
		limits = doc.StrictLimits()
	case "relaxed":
		limits = doc.RelaxedLimits()
	default:
		return fmt.Errorf("unknown limits preset: %s", validateLimits)
	}

	verr := doc.ValidateWithLimits(bin, limits)

	if jsonOut {
		result := map[string]any{
			"file":   binaryPath,
			"limits": validateLimits,
			"valid":  verr == nil,
		}
		if verr != nil {
			result["error"] = verr.Error()
		}
		return printJSON(result)
	}

	if verr != nil {
		printInfo("INVALID: %v\n", verr)
		return verr
	}
	printInfo("VALID\n")
	return nil
}
