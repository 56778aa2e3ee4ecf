// Package cmd implements the xwordfill command-line surface: a thin
// cobra adapter around the pkg/wordindex, pkg/grid, and pkg/fillengine
// library core. Grounded on tcstacks-crossy's cmd/crossgen/cmd (cobra
// command registration in init(), persistent verbosity flag, the same
// RunE + fmt.Errorf("...: %w", err) error style).
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/latticewords/xfill/internal/gobcache"
	"github.com/latticewords/xfill/internal/profile"
	"github.com/latticewords/xfill/internal/wordlistfile"
	"github.com/latticewords/xfill/pkg/fillengine"
	"github.com/latticewords/xfill/pkg/grid"
	"github.com/latticewords/xfill/pkg/ioformat"
	"github.com/latticewords/xfill/pkg/wordindex"
	"github.com/latticewords/xfill/pkg/xwerr"
)

const version = "0.1.0"

var (
	flagInput     string
	flagWords     string
	flagRandom    bool
	flagSeed      int64
	flagFormat    string
	flagTitle     string
	flagAuthor    string
	flagCopyright string
	flagProfile   bool
	verbosity     int
)

var rootCmd = &cobra.Command{
	Use:     "xwordfill",
	Short:   "Fill crossword grids from a dictionary using constraint satisfaction",
	Version: version,
	RunE:    runFill,
}

// Execute adds all child commands and runs the root command. Called
// once by main.main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "verbosity level (0=errors only, 1=info, 2=debug)")

	rootCmd.Flags().StringVar(&flagInput, "input", "", "path to a grid text file (required)")
	rootCmd.Flags().StringVar(&flagWords, "words", "en", "wordlist name, resolved from the wordlists/ directory")
	rootCmd.Flags().BoolVar(&flagRandom, "random", false, "enable randomized fill order")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "seed for --random; 0 seeds from the current time")
	rootCmd.Flags().StringVar(&flagFormat, "format", "grid", "output format: grid|across")
	rootCmd.Flags().StringVar(&flagTitle, "title", "", "puzzle title, used only with --format across")
	rootCmd.Flags().StringVar(&flagAuthor, "author", "Anonymous", "puzzle author, used only with --format across")
	rootCmd.Flags().StringVar(&flagCopyright, "copyright", "", "copyright line, used only with --format across")
	rootCmd.Flags().BoolVar(&flagProfile, "profile", false, "enable CPU profiling of the fill")

	_ = rootCmd.MarkFlagRequired("input")
}

// exit codes, distinguished in stderr text per the CLI contract.
const (
	exitOK              = 0
	exitStructuralError = 2
	exitInfeasible      = 3
	exitCancelled       = 4
	exitUsageError      = 1
)

func runFill(cmd *cobra.Command, args []string) error {
	ix, err := loadIndex(flagWords)
	if err != nil {
		return err
	}
	if verbosity > 0 {
		fmt.Fprintf(os.Stderr, "loaded %d words over a %d-letter alphabet\n", ix.Len(), ix.Alphabet().Len())
	}

	g, err := loadGrid(flagInput)
	if err != nil {
		return exitWith(err)
	}

	var prof *profile.Session
	if flagProfile {
		prof, err = profile.Start("./profiles")
		if err != nil {
			return fmt.Errorf("starting profile: %w", err)
		}
	}

	seed := flagSeed
	if flagRandom && seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	fillErr := fillengine.Fill(context.Background(), g, ix, fillengine.Options{Randomize: flagRandom, Seed: seed})

	if prof != nil {
		if err := prof.Stop(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: stopping profile: %v\n", err)
		}
	}

	if verbosity > 0 {
		fmt.Fprintf(os.Stderr, "fill finished in %s\n", time.Since(start))
	}

	if fillErr != nil {
		return exitWith(fillErr)
	}

	out, err := render(g)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func render(g *grid.Grid) (string, error) {
	switch flagFormat {
	case "grid":
		return ioformat.RenderGrid(g), nil
	case "across":
		title := flagTitle
		if title == "" {
			base := strings.TrimSuffix(filepath.Base(flagInput), filepath.Ext(flagInput))
			title = titleCaser.String(strings.ReplaceAll(base, "_", " "))
		}
		copyright := flagCopyright
		if copyright == "" {
			copyright = fmt.Sprintf("%d Public domain.", time.Now().Year())
		}
		return ioformat.RenderAcross(g, title, flagAuthor, copyright), nil
	default:
		return "", fmt.Errorf("invalid --format %q (must be grid or across)", flagFormat)
	}
}

func loadIndex(name string) (*wordindex.Index, error) {
	path := wordlistfile.ResolveName(name)
	cachePath := path + ".cache"

	if words, err := gobcache.Load(cachePath); err == nil {
		return wordindex.BuildIndex(words), nil
	}

	words, err := wordlistfile.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading wordlist %q: %w", name, err)
	}
	if err := gobcache.Save(cachePath, words); err != nil && verbosity > 0 {
		fmt.Fprintf(os.Stderr, "warning: could not write wordlist cache: %v\n", err)
	}
	return wordindex.BuildIndex(words), nil
}

func loadGrid(path string) (*grid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input grid: %w", err)
	}
	return ioformat.ParseGrid(string(data))
}

// exitWith maps a structural/infeasible/cancelled result to stderr text
// and a distinguishing process exit via cobra's error return, letting
// main translate the error kind to an exit code.
func exitWith(err error) error {
	var structural *xwerr.StructuralError
	switch {
	case asStructural(err, &structural):
		fmt.Fprintln(os.Stderr, color.RedString("structural error: %s", structural.Reason))
	case err == xwerr.ErrInfeasible:
		fmt.Fprintln(os.Stderr, color.YellowString("infeasible: no fill exists for this grid under this dictionary"))
	case err == xwerr.ErrCancelled:
		fmt.Fprintln(os.Stderr, color.YellowString("cancelled"))
	default:
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
	}
	return err
}

func asStructural(err error, target **xwerr.StructuralError) bool {
	se, ok := err.(*xwerr.StructuralError)
	if ok {
		*target = se
	}
	return ok
}

// ExitCode maps an error returned by a command's RunE to the process
// exit code the CLI contract requires.
func ExitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var structural *xwerr.StructuralError
	if asStructural(err, &structural) {
		return exitStructuralError
	}
	switch err {
	case xwerr.ErrInfeasible:
		return exitInfeasible
	case xwerr.ErrCancelled:
		return exitCancelled
	default:
		return exitUsageError
	}
}

var titleCaser = cases.Title(language.Und)
