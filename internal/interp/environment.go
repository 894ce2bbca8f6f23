package interp

import "github.com/zoren/go-wuns/internal/form"

// binding is one name→value pair in a frame.
type binding struct {
	name  form.Word
	value form.Form
}

// Environment is a frame of ordered bindings linked to its enclosing
// frame. Lookup walks frames innermost-first and scans a frame's bindings
// newest-first, so later bindings shadow earlier ones.
//
// Frames are logically immutable during a call; the loop special form is
// the only writer, rewriting its own frame's values in place on a
// continuation.
type Environment struct {
	outer    *Environment
	bindings []binding
}

// NewEnvironment creates an empty root frame.
func NewEnvironment() *Environment {
	return &Environment{}
}

// NewEnclosedEnvironment creates an empty frame whose parent is outer.
// outer may be nil for a top-level frame.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{outer: outer}
}

// Define appends a binding to this frame.
func (e *Environment) Define(name form.Word, value form.Form) {
	e.bindings = append(e.bindings, binding{name: name, value: value})
}

// Get resolves name to the innermost binding's value.
func (e *Environment) Get(name form.Word) (form.Form, bool) {
	for env := e; env != nil; env = env.outer {
		for i := len(env.bindings) - 1; i >= 0; i-- {
			if env.bindings[i].name == name {
				return env.bindings[i].value, true
			}
		}
	}
	return nil, false
}

// setAt rewrites the value of the i-th binding of this frame. Used by
// loop to splice continuation values into its own frame.
func (e *Environment) setAt(i int, value form.Form) {
	e.bindings[i].value = value
}
