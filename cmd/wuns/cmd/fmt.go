package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zoren/go-wuns/internal/lexer"
	"github.com/zoren/go-wuns/internal/parser"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Format a wuns file",
	Long: `Reformat a wuns program canonically: one top-level form per line,
elements separated by single spaces.

Formatting parses the source and re-prints the forms, so the output is
syntactically identical to the input up to whitespace.

Examples:
  # Print the formatted program to stdout
  wuns fmt prog.wuns

  # Rewrite the file in place
  wuns fmt --write prog.wuns`,
	Args: cobra.ExactArgs(1),
	RunE: fmtScript,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result back to the source file")
}

func fmtScript(_ *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	p := parser.New(lexer.New(f))
	forms, err := p.ParseProgram()
	f.Close()
	if err != nil {
		return err
	}

	var sb strings.Builder
	for _, fm := range forms {
		sb.WriteString(fm.String())
		sb.WriteByte('\n')
	}

	if fmtWrite {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		return os.WriteFile(path, []byte(sb.String()), info.Mode().Perm())
	}
	fmt.Print(sb.String())
	return nil
}
