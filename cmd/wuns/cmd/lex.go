package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zoren/go-wuns/internal/lexer"
)

var showPos bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a wuns file or expression",
	Long: `Tokenize a wuns program and print the resulting tokens.

This command is useful for debugging the lexer and understanding how
source text is split into words and brackets.

Examples:
  # Tokenize a script file
  wuns lex prog.wuns

  # Tokenize an inline expression
  wuns lex -e "[add 2 3]"

  # Show token byte offsets
  wuns lex --show-pos prog.wuns`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token byte offsets")
}

func lexScript(_ *cobra.Command, args []string) error {
	r, err := openInput(args)
	if err != nil {
		return err
	}
	defer r.Close()

	l := lexer.New(r)
	for {
		tok, err := l.Next()
		if err != nil {
			return err
		}
		if tok.Type == lexer.EOF {
			return nil
		}
		if showPos {
			fmt.Printf("%6d  %-8s %s\n", tok.Offset, tok.Type, tok.Literal)
		} else {
			fmt.Printf("%-8s %s\n", tok.Type, tok.Literal)
		}
	}
}

// openInput resolves the file-or-eval input convention shared by the
// debugging subcommands.
func openInput(args []string) (io.ReadCloser, error) {
	if evalExpr != "" {
		return io.NopCloser(strings.NewReader(evalExpr)), nil
	}
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return f, nil
	}
	return nil, fmt.Errorf("either provide a file path or use -e flag for inline code")
}
