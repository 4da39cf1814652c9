package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"luna/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "luna",
	Short: "luna - a scripting language front end",
	Long: `luna lexes and parses Luna source files and reports the first
lexical or syntax error it encounters.

Commands:
  parse    - parse a file and print its syntax tree
  tokens   - print the token stream of a file
  check    - parse many files, report diagnostics
  repl     - parse interactively
  watch    - re-check files on change`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Discover(cfgFile)
		return err
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("error:")+" "+err.Error())
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./luna.toml)")
}

var (
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	fileStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
)

// colorEnabled decides whether styled output goes to w, combining the
// configured mode with a terminal check.
func colorEnabled(w io.Writer) bool {
	switch cfg.Output.Color {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// paint renders s with style when color is enabled on w.
func paint(w io.Writer, style lipgloss.Style, s string) string {
	if !colorEnabled(w) {
		return s
	}
	return style.Render(s)
}

// readSource reads a source file, or stdin when path is "-".
func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
