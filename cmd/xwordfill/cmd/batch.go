package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/latticewords/xfill/pkg/fillengine"
	"github.com/latticewords/xfill/pkg/ioformat"
)

var (
	batchInputDir  string
	batchOutputDir string
	batchWords     string
	batchRandom    bool
)

// batchCmd fills every grid text file in a directory, reporting
// progress with a bar the way a long-running one-at-a-time CLI loop
// should, rather than the plain printf-per-item loop the teacher's
// generate command used. Not part of the core's contract (§1 scopes
// "multi-grid batch scheduling" out) — this is a CLI convenience that
// calls Fill once per grid, nothing more.
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Fill every grid file in a directory",
	Long: `Fill every *.txt grid file in --input-dir against the same wordlist,
writing each result to --output-dir under the same base name.

Examples:
  xwordfill batch --input-dir ./grids --output-dir ./filled --words en`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchInputDir, "input-dir", "", "directory of grid text files (required)")
	batchCmd.Flags().StringVar(&batchOutputDir, "output-dir", "", "directory to write filled grids to (required)")
	batchCmd.Flags().StringVarP(&batchWords, "words", "w", "en", "wordlist name, resolved from the wordlists/ directory")
	batchCmd.Flags().BoolVar(&batchRandom, "random", false, "enable randomized fill order")
	_ = batchCmd.MarkFlagRequired("input-dir")
	_ = batchCmd.MarkFlagRequired("output-dir")
}

func runBatch(cmd *cobra.Command, args []string) error {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = fmt.Sprintf(" loading wordlist %q", batchWords)
	s.Start()
	ix, err := loadIndex(batchWords)
	s.Stop()
	if err != nil {
		return err
	}

	files, err := filepath.Glob(filepath.Join(batchInputDir, "*.txt"))
	if err != nil {
		return fmt.Errorf("listing input directory: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no .txt grid files found in %s", batchInputDir)
	}

	if err := os.MkdirAll(batchOutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	bar := pb.StartNew(len(files))
	defer bar.Finish()

	var failed []string
	for i, path := range files {
		g, err := loadGrid(path)
		if err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", filepath.Base(path), err))
			bar.Increment()
			continue
		}

		// Fill itself runs CheckConnected/CheckWordLengths/CheckAlphabet
		// before searching, so a structurally doomed grid surfaces as
		// fillErr below rather than needing a separate pre-check here.
		seed := int64(i) // deterministic-per-index seed so a rerun of the same batch reproduces
		fillErr := fillengine.Fill(context.Background(), g, ix, fillengine.Options{Randomize: batchRandom, Seed: seed})
		if fillErr != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", filepath.Base(path), fillErr))
			bar.Increment()
			continue
		}

		outPath := filepath.Join(batchOutputDir, filepath.Base(path))
		if err := os.WriteFile(outPath, []byte(ioformat.RenderGrid(g)), 0o644); err != nil {
			failed = append(failed, fmt.Sprintf("%s: writing output: %v", filepath.Base(path), err))
		}
		bar.Increment()
	}

	if len(failed) > 0 {
		fmt.Println(color.YellowString("\n%d of %d grids failed:", len(failed), len(files)))
		for _, f := range failed {
			fmt.Printf("  - %s\n", f)
		}
	}
	return nil
}
