package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chriserin/worldgen/internal/directive"
	"github.com/chriserin/worldgen/internal/gen"
	"github.com/chriserin/worldgen/internal/parser"
	"github.com/chriserin/worldgen/internal/ui"
	"github.com/spf13/cobra"
)

var writeFlag bool

var generateCmd = &cobra.Command{
	Use:   "generate <file>...",
	Short: "Generate world definitions from skeleton files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunGenerate(cmd.OutOrStdout(), args, writeFlag)
	},
}

func init() {
	generateCmd.Flags().BoolVarP(&writeFlag, "write", "w", false, "rewrite skeleton files in place")
	rootCmd.AddCommand(generateCmd)
}

// RunGenerate expands each skeleton file into its world definition. Without
// write the generated source is printed to w, with write the skeleton file is
// replaced by the generated source.
func RunGenerate(w io.Writer, paths []string, write bool) error {
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		sk, err := parser.ParseFile(path, content)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		opts, err := directive.Parse(sk.Args)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		out, err := gen.Render(gen.World{Skeleton: sk, Options: opts})
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if write {
			if err := os.WriteFile(path, out, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			ui.GenLine(w, path)
		} else {
			if _, err := w.Write(out); err != nil {
				return err
			}
		}
	}

	if write && len(paths) > 1 {
		ui.SummaryLine(w, len(paths))
	}
	return nil
}
