package interp

import "github.com/zoren/go-wuns/internal/form"

// Special form names. These are recognized before the func/macro table is
// consulted, so user definitions can never shadow them.
const (
	symQuote form.Word = "quote"
	symIf    form.Word = "if"
	symLet   form.Word = "let"
	symLoop  form.Word = "loop"
	symCont  form.Word = "cont"
	symFunc  form.Word = "func"
	symMacro form.Word = "macro"
	symRest  form.Word = ".."
)

// eval evaluates f in env. env may be nil at top level.
func (in *Interpreter) eval(f form.Form, env *Environment) (form.Form, error) {
	switch v := f.(type) {
	case form.Word:
		if val, ok := env.Get(v); ok {
			return val, nil
		}
		// An unbound integer word (digits with an optional leading minus)
		// is a numeric literal and evaluates to itself.
		if form.IsDecimal(v) || (len(v) > 1 && v[0] == '-' && form.IsDecimal(v[1:])) {
			return v, nil
		}
		return nil, errorf(UnboundError, "word %s not bound", v)
	case form.List:
		if len(v) == 0 {
			return form.Unit(), nil
		}
		head, ok := v[0].(form.Word)
		if !ok {
			return nil, errorf(StructuralError, "first element of %s must be a word", v)
		}
		switch head {
		case symQuote:
			if len(v) != 2 {
				return nil, errorf(ArityError, "quote takes exactly one argument, got %d", len(v)-1)
			}
			return v[1], nil
		case symIf:
			return in.evalIf(v, env)
		case symLet:
			return in.evalLet(v, env)
		case symLoop:
			return in.evalLoop(v, env)
		case symCont:
			return in.evalCont(v, env)
		case symFunc, symMacro:
			return in.evalDefine(head, v)
		}
		if fm := in.lookupFuncMacro(head); fm != nil {
			return in.applyFuncMacro(fm, v, env)
		}
		return in.applyBuiltin(head, v, env)
	default:
		return nil, errorf(StructuralError, "cannot evaluate %v", f)
	}
}

func (in *Interpreter) evalIf(v form.List, env *Environment) (form.Form, error) {
	if len(v) != 4 {
		return nil, errorf(ArityError, "if takes three arguments, got %d", len(v)-1)
	}
	cond, err := in.eval(v[1], env)
	if err != nil {
		return nil, err
	}
	if form.IsFalse(cond) {
		return in.eval(v[3], env)
	}
	return in.eval(v[2], env)
}

// bindPairs establishes the let/loop bindings left to right in a fresh
// frame. Each value expression already sees the bindings before it.
func (in *Interpreter) bindPairs(head form.Word, bindingForm form.Form, env *Environment) (*Environment, error) {
	pairs, ok := bindingForm.(form.List)
	if !ok {
		return nil, errorf(StructuralError, "%s bindings must be a list", head)
	}
	if len(pairs)%2 != 0 {
		return nil, errorf(StructuralError, "%s bindings must have even length, got %d", head, len(pairs))
	}
	frame := NewEnclosedEnvironment(env)
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(form.Word)
		if !ok {
			return nil, errorf(StructuralError, "%s binding names must be words, got %s", head, pairs[i])
		}
		val, err := in.eval(pairs[i+1], frame)
		if err != nil {
			return nil, err
		}
		frame.Define(name, val)
	}
	return frame, nil
}

func (in *Interpreter) evalLet(v form.List, env *Environment) (form.Form, error) {
	if len(v) < 2 {
		return nil, errorf(ArityError, "let needs a binding list")
	}
	frame, err := in.bindPairs(symLet, v[1], env)
	if err != nil {
		return nil, err
	}
	return in.evalBodies(v[2:], frame)
}

func (in *Interpreter) evalLoop(v form.List, env *Environment) (form.Form, error) {
	if len(v) < 2 {
		return nil, errorf(ArityError, "loop needs a binding list")
	}
	frame, err := in.bindPairs(symLoop, v[1], env)
	if err != nil {
		return nil, err
	}
	n := len(frame.bindings)
	for {
		result, err := in.evalBodies(v[2:], frame)
		if err != nil {
			return nil, err
		}
		packet, ok := result.(form.List)
		if !ok || !form.IsContinuation(packet) {
			return result, nil
		}
		values := form.ContinuationValues(packet)
		if len(values) != n {
			return nil, errorf(StructuralError, "loop continuation carries %d values for %d bindings", len(values), n)
		}
		for i, val := range values {
			frame.setAt(i, val)
		}
	}
}

func (in *Interpreter) evalCont(v form.List, env *Environment) (form.Form, error) {
	values := make([]form.Form, 0, len(v)-1)
	for _, arg := range v[1:] {
		val, err := in.eval(arg, env)
		if err != nil {
			return nil, err
		}
		values = append(values, val)
	}
	return form.NewContinuation(values), nil
}

// evalBodies evaluates bodies in order and returns the last value, or
// unit when there are none.
func (in *Interpreter) evalBodies(bodies []form.Form, env *Environment) (form.Form, error) {
	var result form.Form = form.Unit()
	for _, body := range bodies {
		var err error
		result, err = in.eval(body, env)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// evalDefine registers a func or macro. The parameter list may end with
// the word .. followed by a rest parameter, making the callable variadic.
func (in *Interpreter) evalDefine(head form.Word, v form.List) (form.Form, error) {
	if len(v) < 3 {
		return nil, errorf(ArityError, "%s needs a name and a parameter list", head)
	}
	name, ok := v[1].(form.Word)
	if !ok {
		return nil, errorf(StructuralError, "%s name must be a word, got %s", head, v[1])
	}
	paramList, ok := v[2].(form.List)
	if !ok {
		return nil, errorf(StructuralError, "%s parameters must be a list", head)
	}
	params := make([]form.Word, len(paramList))
	for i, p := range paramList {
		w, ok := p.(form.Word)
		if !ok {
			return nil, errorf(StructuralError, "%s parameters must be words, got %s", head, p)
		}
		params[i] = w
	}
	fm := &funcMacro{
		name:    name,
		isMacro: head == symMacro,
		bodies:  v[3:],
	}
	if len(params) >= 2 && params[len(params)-2] == symRest {
		fm.rest = params[len(params)-1]
		fm.params = params[:len(params)-2]
	} else {
		fm.params = params
	}
	in.register(fm)
	return form.Unit(), nil
}

// applyFuncMacro calls a user-defined func or macro. Funcs receive
// evaluated arguments, macros the argument forms themselves. The body
// frame's parent is the caller's environment; a macro's result is then
// evaluated once more in the caller's environment.
func (in *Interpreter) applyFuncMacro(fm *funcMacro, v form.List, env *Environment) (form.Form, error) {
	given := len(v) - 1
	if fm.variadic() {
		if given < len(fm.params) {
			return nil, errorf(ArityError, "%s takes at least %d arguments, got %d", fm.name, len(fm.params), given)
		}
	} else if given != len(fm.params) {
		return nil, errorf(ArityError, "%s takes %d arguments, got %d", fm.name, len(fm.params), given)
	}

	args := make([]form.Form, given)
	if fm.isMacro {
		copy(args, v[1:])
	} else {
		for i, arg := range v[1:] {
			val, err := in.eval(arg, env)
			if err != nil {
				return nil, err
			}
			args[i] = val
		}
	}

	frame := NewEnclosedEnvironment(env)
	for i, p := range fm.params {
		frame.Define(p, args[i])
	}
	if fm.variadic() {
		rest := make(form.List, given-len(fm.params))
		copy(rest, args[len(fm.params):])
		frame.Define(fm.rest, rest)
	}

	result, err := in.evalBodies(fm.bodies, frame)
	if err != nil {
		return nil, err
	}
	if fm.isMacro {
		return in.eval(result, env)
	}
	return result, nil
}
