package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/TheDaniel166/tq/numprops"
	"github.com/TheDaniel166/tq/quadset"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <n>",
	Short: "Build and report the full Quadset of a seed integer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("seed must be an integer: %w", err)
		}

		res, err := quadset.Analyze(n)
		if err != nil {
			return err
		}

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()

		fmt.Printf("\n%s\n\n", cyan(fmt.Sprintf("=== Quadset of %d ===", n)))

		for _, m := range res.Members() {
			// Pad before coloring: escape codes would break the field width.
			fmt.Printf("  %s %12d  %s\n",
				yellow(fmt.Sprintf("%-18s", m.Role)), m.Value, gray(m.Digits))
			fmt.Printf("    %s\n", propertyHighlights(m.Properties))
		}

		fmt.Printf("\n  %s %d\n", yellow("Quadset sum: "), res.QuadsetSum())
		fmt.Printf("  %s %d\n", yellow("Septad total:"), res.SeptadTotal())
		fmt.Printf("\n  %s\n    %s\n", yellow("Patterns:"), res.Summary())

		return nil
	},
}

// propertyHighlights condenses a member's property map into one line.
func propertyHighlights(p map[string]any) string {
	out := ""
	if p["is_prime"].(bool) {
		out += "prime"
		if ord, ok := p["prime_ordinal"].(int); ok && ord > 0 {
			out += fmt.Sprintf(" (#%d)", ord)
		}
	} else if fs, ok := p["prime_factorization"].([]numprops.Factor); ok && len(fs) > 0 {
		out += "= "
		for i, f := range fs {
			if i > 0 {
				out += " · "
			}
			out += strconv.FormatInt(f.Prime, 10)
			if f.Exp > 1 {
				out += fmt.Sprintf("^%d", f.Exp)
			}
		}
	}

	out += fmt.Sprintf("  %s", p["abundance"])
	out += fmt.Sprintf("  digit sum %d, root %d", p["digit_sum"], p["digital_root"])
	if p["is_fibonacci"].(bool) {
		out += "  fibonacci"
	}
	if p["is_happy"].(bool) {
		out += "  happy"
	}
	if p["is_square"].(bool) {
		out += "  square"
	}
	if p["is_cube"].(bool) {
		out += "  cube"
	}
	if poly, ok := p["polygonal"].(numprops.Polygonal); ok && p["is_polygonal"].(bool) {
		out += fmt.Sprintf("  %d-gonal #%d", poly.Sides, poly.Index)
	}

	return out
}
