package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/latticewords/xfill/pkg/grid"
)

var (
	validateInput string
	validateWords string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a grid for structural problems without filling it",
	Long: `Run the pre-search structural checks the fill engine requires —
grid connectivity, per-slot dictionary-length coverage, and Fixed-letter
alphabet membership — without attempting a fill. Useful for catching a
malformed grid or an unworkable dictionary pairing before spending
search time on it.

Examples:
  xwordfill validate --input puzzle.txt --words en`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "path to a grid text file (required)")
	validateCmd.Flags().StringVarP(&validateWords, "words", "w", "en", "wordlist name, resolved from the wordlists/ directory")
	_ = validateCmd.MarkFlagRequired("input")
}

func runValidate(cmd *cobra.Command, args []string) error {
	g, err := loadGrid(validateInput)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("%v", err))
		os.Exit(exitStructuralError)
	}

	ix, err := loadIndex(validateWords)
	if err != nil {
		return err
	}

	var problems []string
	if err := grid.CheckConnected(g); err != nil {
		problems = append(problems, err.Error())
	}
	if err := grid.CheckWordLengths(g, ix); err != nil {
		problems = append(problems, err.Error())
	}
	if err := grid.CheckAlphabet(g, ix); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) == 0 {
		fmt.Println(color.GreenString("valid: %d slots, all structurally fillable", len(g.Slots)))
		return nil
	}

	fmt.Println(color.RedString("invalid:"))
	for _, p := range problems {
		fmt.Printf("  - %s\n", p)
	}
	os.Exit(exitStructuralError)
	return nil
}
