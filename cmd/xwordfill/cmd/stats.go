package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsWords string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display word index and grid structural statistics",
	Long: `Display statistics about a wordlist and, optionally, how a grid's
slots distribute over that wordlist's word lengths.

Examples:
  # Show dictionary size and length distribution
  xwordfill stats --words en

  # Show how a grid's slot lengths line up with dictionary coverage
  xwordfill stats --words en --input puzzle.txt`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsWords, "words", "w", "en", "wordlist name, resolved from the wordlists/ directory")
	statsCmd.Flags().StringVar(&flagInput, "input", "", "optional grid text file to report slot-length coverage for")
}

func runStats(cmd *cobra.Command, args []string) error {
	ix, err := loadIndex(statsWords)
	if err != nil {
		return err
	}

	fmt.Printf("Word Index Statistics\n")
	fmt.Printf("======================\n")
	fmt.Printf("Wordlist:  %s\n", statsWords)
	fmt.Printf("Words:     %d\n", ix.Len())
	fmt.Printf("Alphabet:  %d letters (%s)\n\n", ix.Alphabet().Len(), string(ix.Alphabet().Runes()))

	lengths := ix.LengthCounts()
	sortedLengths := make([]int, 0, len(lengths))
	for l := range lengths {
		sortedLengths = append(sortedLengths, l)
	}
	sort.Ints(sortedLengths)

	fmt.Println("Words by length:")
	for _, l := range sortedLengths {
		fmt.Printf("  %2d: %d\n", l, lengths[l])
	}

	if flagInput == "" {
		return nil
	}

	g, err := loadGrid(flagInput)
	if err != nil {
		return err
	}

	fmt.Printf("\nGrid Slot Coverage (%s)\n", flagInput)
	fmt.Printf("=========================\n")
	fmt.Printf("Slots: %d\n", len(g.Slots))
	uncovered := 0
	for _, s := range g.Slots {
		if lengths[s.Length] == 0 {
			fmt.Printf("  slot %d (%s, length %d): NO DICTIONARY WORDS OF THIS LENGTH\n", s.ID, s.Direction, s.Length)
			uncovered++
		}
	}
	if uncovered == 0 {
		fmt.Println("  every slot length is covered by the dictionary")
	}

	return nil
}
