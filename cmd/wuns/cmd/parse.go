package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoren/go-wuns/internal/lexer"
	"github.com/zoren/go-wuns/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a wuns file or expression",
	Long: `Parse a wuns program and print each top-level form on its own
line, without evaluating anything.

Examples:
  # Parse a script file
  wuns parse prog.wuns

  # Parse an inline expression
  wuns parse -e "[quote [a [b c] d]]"`,
	Args: cobra.MaximumNArgs(1),
	RunE: parseScript,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func parseScript(_ *cobra.Command, args []string) error {
	r, err := openInput(args)
	if err != nil {
		return err
	}
	defer r.Close()

	p := parser.New(lexer.New(r))
	forms, err := p.ParseProgram()
	if err != nil {
		return err
	}
	for _, f := range forms {
		fmt.Println(f)
	}
	return nil
}
