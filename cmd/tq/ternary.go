package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/TheDaniel166/tq/ternary"
)

var ternaryCmd = &cobra.Command{
	Use:   "ternary <n>",
	Short: "Show the ternary forms and digit transforms of an integer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("argument must be an integer: %w", err)
		}

		digits, err := ternary.Encode(n)
		if err != nil {
			return err
		}
		balanced, err := ternary.EncodeBalanced(n)
		if err != nil {
			return err
		}
		conrune, err := ternary.Conrune(digits)
		if err != nil {
			return err
		}

		yellow := color.New(color.FgYellow).SprintFunc()
		fmt.Printf("%s %s\n", yellow("ternary: "), digits)
		fmt.Printf("%s %s\n", yellow("balanced:"), balanced)
		fmt.Printf("%s %s\n", yellow("conrune: "), conrune)
		fmt.Printf("%s %s\n", yellow("reversal:"), ternary.Reverse(digits))

		return nil
	},
}
