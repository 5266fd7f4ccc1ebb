// Command tq explores ternary Quadsets and the spatial grid from the
// terminal. It is a thin demo surface over the library packages; all
// computation lives in ternary/, numprops/, quadset/, pattern/ and
// grid/.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tq",
	Short: "Ternary Quadset and spatial grid explorer",
	Long: `tq converts integers to balanced and unbalanced ternary, builds the
four-member Quadset of a seed with its differentials and transgram,
and answers symmetry and chord queries over the 27×27 grid.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(ternaryCmd)
	rootCmd.AddCommand(gridCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
