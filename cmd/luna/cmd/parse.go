package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"luna/internal/ast"
	"luna/internal/parser"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a file and print its syntax tree",
	Long: `Parse a Luna source file and print the resulting syntax tree.

Use "-" to read from stdin. The output format follows the [output]
section of luna.toml; --json forces JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print the tree as JSON")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}

	prog, err := parser.Parse(src)
	if err != nil {
		return fmt.Errorf("%s:%w", args[0], err)
	}

	if parseJSON || cfg.Output.Format == "json" {
		data, err := ast.MarshalJSON(prog)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Fprint(os.Stdout, ast.Dump(prog))
	return nil
}
