package interp

import "github.com/zoren/go-wuns/internal/form"

// funcMacro is a user-defined callable registered by the func or macro
// special form.
type funcMacro struct {
	name    form.Word
	params  []form.Word
	rest    form.Word // "" when the callable is not variadic
	bodies  []form.Form
	isMacro bool
}

func (fm *funcMacro) variadic() bool { return fm.rest != "" }

// register appends a definition. The table is insertion-ordered and never
// shrinks; redefinition shadows by virtue of newest-first lookup.
func (in *Interpreter) register(fm *funcMacro) {
	in.registry = append(in.registry, fm)
}

// lookupFuncMacro finds the most recent definition of name, or nil.
func (in *Interpreter) lookupFuncMacro(name form.Word) *funcMacro {
	for i := len(in.registry) - 1; i >= 0; i-- {
		if in.registry[i].name == name {
			return in.registry[i]
		}
	}
	return nil
}
