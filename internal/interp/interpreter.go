// Package interp is the tree-walking evaluator for wuns forms.
//
// An Interpreter holds the only mutable process state the language has:
// the insertion-ordered table of user-defined funcs and macros, and the
// gensym counter. Both are touched exclusively by top-level evaluation;
// everything else flows through immutable forms and frame-local
// environments.
package interp

import (
	"fmt"
	"io"

	"github.com/zoren/go-wuns/internal/form"
	"github.com/zoren/go-wuns/internal/parser"
)

// Interpreter evaluates forms and writes results and log output to out.
type Interpreter struct {
	out      io.Writer
	registry []*funcMacro
	gensym   int64
}

// New creates an Interpreter writing to out.
func New(out io.Writer) *Interpreter {
	return &Interpreter{out: out}
}

// Eval evaluates a single top-level form. The environment starts empty;
// bindings only ever come from let, loop, and calls.
func (in *Interpreter) Eval(f form.Form) (form.Form, error) {
	return in.eval(f, nil)
}

// Run is the read-eval-print loop over top-level forms: each form parsed
// from p is evaluated and its value printed followed by a newline. Output
// already written for earlier forms survives a later fatal error.
func (in *Interpreter) Run(p *parser.Parser) error {
	for {
		f, err := p.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		v, err := in.Eval(f)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(in.out, "%s\n", v); err != nil {
			return err
		}
	}
}
