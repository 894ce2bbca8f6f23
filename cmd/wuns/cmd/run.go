package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zoren/go-wuns/internal/interp"
	"github.com/zoren/go-wuns/internal/lexer"
	"github.com/zoren/go-wuns/internal/parser"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a wuns file or expression",
	Long: `Evaluate a wuns program from a file or an inline expression.

Each top-level form is evaluated in order and its value printed on its
own line. Evaluation stops at the first error; output already printed
for earlier forms is preserved.

Examples:
  # Run a script file
  wuns run prog.wuns

  # Evaluate an inline expression
  wuns run -e "[add 2 3]"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
}

func runScript(_ *cobra.Command, args []string) error {
	if evalExpr != "" {
		return runReader(strings.NewReader(evalExpr))
	}
	if len(args) == 1 {
		return runFile(args[0])
	}
	return fmt.Errorf("either provide a file path or use -e flag for inline code")
}

func runFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	defer f.Close()
	return runReader(f)
}

func runReader(r io.Reader) error {
	p := parser.New(lexer.New(r))
	return interp.New(os.Stdout).Run(p)
}
