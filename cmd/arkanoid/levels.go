package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the built-in level layouts",
	Long: `Shows every level in play order. Digits are brick codes:
1-4 break in one hit, 5 takes two, 9 is steel, '.' is an empty slot.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	layouts := arkanoid.BuiltinLayouts()

	fmt.Println("Levels:")
	fmt.Println()
	for i, l := range layouts {
		fmt.Printf("  %d. %s (%s) %dx%d\n", i+1, l.Name, l.ID, l.Cols(), l.Rows())
		for _, line := range l.Lines() {
			fmt.Printf("       %s\n", line)
		}
		fmt.Println()
	}
	fmt.Println("Run 'arkanoid play' to start from level 1.")
}
