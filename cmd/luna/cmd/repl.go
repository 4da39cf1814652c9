package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"luna/internal/ast"
	"luna/internal/parser"
)

const (
	promptMain  = "luna> "
	promptCont  = "....> "
	historyFile = ".luna_history"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse interactively",
	Long: `Read Luna source interactively and print each parsed tree.

Input that ends mid-statement continues on the next line. Type :quit
or press Ctrl-D to exit.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		src, ok := readStatement(ln)
		if !ok {
			fmt.Println()
			return nil
		}

		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			return nil
		}

		prog, err := parser.Parse(src)
		if err != nil {
			fmt.Fprintln(os.Stderr, paint(os.Stderr, errStyle, err.Error()))
			continue
		}
		fmt.Print(ast.Dump(prog))
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
}

// readStatement collects lines until the buffered input parses, or fails
// with an error that is not just truncation. An unfinished block keeps the
// continuation prompt going.
func readStatement(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(promptMain)
		} else {
			line, err = ln.Prompt(promptCont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, perr := parser.Parse(src); perr == nil || !parser.IsIncomplete(perr) {
			return src, true
		}
	}
}
