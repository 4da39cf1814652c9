package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"luna/internal/lexer"
	"luna/internal/token"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream of a file",
	Long: `Lex a Luna source file and print one token per line with its
position, kind and spelling. Use "-" to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}

	l := lexer.New(src)
	for {
		tok := l.NextToken()
		if tok.Kind == token.Illegal {
			return fmt.Errorf("%s:%w", args[0], l.Err())
		}
		if tok.Kind == token.EOF {
			return nil
		}
		fmt.Printf("%d:%d\t%s\t%q\n", tok.Pos.Line, tok.Pos.Column, tok.Kind, tok.Lexeme)
	}
}
