package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"luna/internal/analysis"
	"luna/internal/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Parse files and report diagnostics",
	Long: `Parse one or more Luna source files concurrently and run the
semantic checks on each tree. A file that fails to parse reports its
first error; a file that parses reports every semantic finding. Exits
non-zero when any file has a diagnostic.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

type diagnostic struct {
	path string
	msg  string
}

func runCheck(cmd *cobra.Command, args []string) error {
	diags, failed, err := checkFiles(cmd.Context(), args)
	if err != nil {
		return err
	}

	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "%s:%s\n", paint(os.Stderr, fileStyle, d.path), d.msg)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	fmt.Fprintln(os.Stdout, paint(os.Stdout, okStyle, fmt.Sprintf("%d files ok", len(args))))
	return nil
}

// checkFiles parses and analyzes every path with a bounded worker group.
// I/O errors abort the run; parse and analysis findings are collected as
// diagnostics, ordered by path.
func checkFiles(ctx context.Context, paths []string) ([]diagnostic, int, error) {
	sem := make(chan struct{}, runtime.NumCPU())
	g, gctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	var diags []diagnostic
	failed := make(map[string]bool)

	report := func(path string, msgs ...string) {
		mu.Lock()
		defer mu.Unlock()
		failed[path] = true
		for _, msg := range msgs {
			diags = append(diags, diagnostic{path: path, msg: msg})
		}
	}

	for _, path := range paths {
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			defer func() { <-sem }()

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			prog, err := parser.Parse(string(data))
			if err != nil {
				report(path, err.Error())
				return nil
			}

			findings := analysis.NewChecker().Check(prog)
			msgs := make([]string, len(findings))
			for i, f := range findings {
				msgs[i] = f.String()
			}
			if len(msgs) > 0 {
				report(path, msgs...)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	sort.SliceStable(diags, func(i, j int) bool { return diags[i].path < diags[j].path })
	return diags, len(failed), nil
}
