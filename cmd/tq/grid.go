package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/TheDaniel166/tq/grid"
)

var gridVariant string

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Query the canonical 27×27 spatial grid",
}

var gridCellCmd = &cobra.Command{
	Use:   "cell <x> <y>",
	Short: "Look up the cell at a coordinate and show its symmetry group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ix, err := buildIndex()
		if err != nil {
			return err
		}
		x, y, err := parseCoord(args[0], args[1])
		if err != nil {
			return err
		}

		c, ok := ix.Cell(x, y)
		if !ok {
			fmt.Printf("no cell at (%d,%d)\n", x, y)
			return nil
		}
		printCell(c)

		yellow := color.New(color.FgYellow).SprintFunc()
		fmt.Printf("%s\n", yellow("symmetry group:"))
		for _, g := range ix.SymmetryGroup(x, y) {
			fmt.Printf("  (%d,%d) = %d\n", g.X, g.Y, g.Value)
		}

		return nil
	},
}

var gridLocatorCmd = &cobra.Command{
	Use:   "locator <region> <area> <cell>",
	Short: "Find the cell with the given bigram triple",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ix, err := buildIndex()
		if err != nil {
			return err
		}
		var triple [3]int
		for i, a := range args {
			v, err := strconv.Atoi(a)
			if err != nil || v < 0 || v > 8 {
				return fmt.Errorf("locator parts must be integers 0..8, got %q", a)
			}
			triple[i] = v
		}

		c, ok := ix.CellByLocator(triple[0], triple[1], triple[2])
		if !ok {
			fmt.Printf("no cell with locator %d/%d/%d\n", triple[0], triple[1], triple[2])
			return nil
		}
		printCell(c)

		return nil
	},
}

var gridChordCmd = &cobra.Command{
	Use:   "chord <value>",
	Short: "Show the chord values related to a decimal value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ix, err := buildIndex()
		if err != nil {
			return err
		}
		v, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("value must be an integer: %w", err)
		}

		fmt.Println(ix.ChordValues(v))

		return nil
	},
}

func init() {
	gridCmd.PersistentFlags().StringVar(&gridVariant, "variant", "full",
		"symmetry rule: full or horizontal")
	gridCmd.AddCommand(gridCellCmd)
	gridCmd.AddCommand(gridLocatorCmd)
	gridCmd.AddCommand(gridChordCmd)
}

// buildIndex constructs the canonical 27×27 index with the requested
// symmetry variant.
func buildIndex() (*grid.Index, error) {
	opts := grid.DefaultOptions()
	switch gridVariant {
	case "full":
		opts.Variant = grid.FullSymmetry
	case "horizontal":
		opts.Variant = grid.HorizontalOnly
	default:
		return nil, fmt.Errorf("unknown variant %q (want full or horizontal)", gridVariant)
	}

	values, digits := grid.CanonicalTables(27)

	return grid.New(27, values, digits, opts)
}

func parseCoord(sx, sy string) (int, int, error) {
	x, err := strconv.Atoi(sx)
	if err != nil {
		return 0, 0, fmt.Errorf("x must be an integer: %w", err)
	}
	y, err := strconv.Atoi(sy)
	if err != nil {
		return 0, 0, fmt.Errorf("y must be an integer: %w", err)
	}

	return x, y, nil
}

func printCell(c grid.Cell) {
	yellow := color.New(color.FgYellow).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	fmt.Printf("%s (%d,%d) = %d  %s\n", yellow("cell:"), c.X, c.Y, c.Value, gray(c.Digits))
	fmt.Printf("  locator region/area/cell: %d/%d/%d  family %d\n",
		c.Bigrams[grid.BigramRegion].Ternary(),
		c.Bigrams[grid.BigramArea].Ternary(),
		c.Bigrams[grid.BigramCell].Ternary(),
		c.Family)
	if c.IsOrigin {
		fmt.Println("  origin")
	} else if c.IsAxis {
		fmt.Println("  axis")
	}
}
