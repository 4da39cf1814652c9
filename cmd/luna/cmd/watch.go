package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"luna/internal/analysis"
	"luna/internal/parser"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>...",
	Short: "Re-check files on change",
	Long: `Watch one or more directories and re-parse a Luna source file
whenever it is written. Only files whose extension matches the [watch]
section of luna.toml are checked. Runs until interrupted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	for _, dir := range args {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	fmt.Printf("watching %s\n", strings.Join(args, ", "))

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !watchedExtension(ev.Name) {
				continue
			}
			checkOne(ev.Name)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, paint(os.Stderr, errStyle, "watch error: "+err.Error()))
		}
	}
}

func watchedExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, want := range cfg.Watch.Extensions {
		if ext == want {
			return true
		}
	}
	return false
}

func checkOne(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", paint(os.Stderr, fileStyle, path), err)
		return
	}
	prog, err := parser.Parse(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s:%v\n", paint(os.Stderr, fileStyle, path), err)
		return
	}
	if findings := analysis.NewChecker().Check(prog); len(findings) > 0 {
		for _, f := range findings {
			fmt.Fprintf(os.Stderr, "%s:%s\n", paint(os.Stderr, fileStyle, path), f)
		}
		return
	}
	fmt.Printf("%s %s\n", paint(os.Stdout, okStyle, "ok"), path)
}
