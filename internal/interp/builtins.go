package interp

import (
	"fmt"
	"strconv"

	"github.com/zoren/go-wuns/internal/form"
)

// builtin is one entry of the built-in operator table. arity < 0 means
// variadic.
type builtin struct {
	fn    func(in *Interpreter, args []form.Form) (form.Form, error)
	arity int
}

var builtins = map[form.Word]builtin{
	"abort":  {arity: 0, fn: biAbort},
	"gensym": {arity: 0, fn: biGensym},

	"is-word": {arity: 1, fn: biIsWord},
	"is-list": {arity: 1, fn: biIsList},
	"size":    {arity: 1, fn: biSize},
	"log":     {arity: 1, fn: biLog},

	"add":                    {arity: 2, fn: arith(func(a, b int64) int64 { return a + b })},
	"sub":                    {arity: 2, fn: arith(func(a, b int64) int64 { return a - b })},
	"bit-and":                {arity: 2, fn: arith(func(a, b int64) int64 { return a & b })},
	"bit-or":                 {arity: 2, fn: arith(func(a, b int64) int64 { return a | b })},
	"bit-xor":                {arity: 2, fn: arith(func(a, b int64) int64 { return a ^ b })},
	"bit-shift-left":         {arity: 2, fn: arith(func(a, b int64) int64 { return a << b })},
	"bit-shift-right-signed": {arity: 2, fn: arith(func(a, b int64) int64 { return a >> b })},

	"lt": {arity: 2, fn: compare(func(a, b int64) bool { return a < b })},
	"le": {arity: 2, fn: compare(func(a, b int64) bool { return a <= b })},
	"ge": {arity: 2, fn: compare(func(a, b int64) bool { return a >= b })},
	"gt": {arity: 2, fn: compare(func(a, b int64) bool { return a > b })},

	"eq":     {arity: 2, fn: biEq},
	"at":     {arity: 2, fn: biAt},
	"slice":  {arity: 3, fn: biSlice},
	"concat": {arity: -1, fn: biConcat},
}

// applyBuiltin evaluates the arguments of v in env and applies the
// builtin named by head. An unknown head is fatal: by this point neither
// a special form nor a user definition matched.
func (in *Interpreter) applyBuiltin(head form.Word, v form.List, env *Environment) (form.Form, error) {
	b, ok := builtins[head]
	if !ok {
		return nil, errorf(UnknownError, "%s", head)
	}
	given := len(v) - 1
	if b.arity >= 0 && given != b.arity {
		return nil, errorf(ArityError, "%s takes %d arguments, got %d", head, b.arity, given)
	}
	args := make([]form.Form, given)
	for i, arg := range v[1:] {
		val, err := in.eval(arg, env)
		if err != nil {
			return nil, err
		}
		args[i] = val
	}
	return b.fn(in, args)
}

// wordToInt converts a decimal word to an int64. Non-decimal words and
// conversion overflow are fatal.
func wordToInt(context string, f form.Form) (int64, error) {
	w, ok := f.(form.Word)
	if !ok || !form.IsDecimal(w) {
		return 0, errorf(NumericError, "%s requires a decimal word, got %s", context, f)
	}
	n, err := strconv.ParseInt(string(w), 10, 64)
	if err != nil {
		return 0, errorf(NumericError, "%s overflows: %s", context, w)
	}
	return n, nil
}

// wordToIndex converts a word to a signed index: a decimal word with an
// optional leading minus. Indexes, unlike arithmetic operands, may be
// negative to count from the end.
func wordToIndex(context string, f form.Form) (int64, error) {
	w, ok := f.(form.Word)
	if !ok {
		return 0, errorf(NumericError, "%s index must be a word, got %s", context, f)
	}
	s := string(w)
	neg := false
	if len(s) > 1 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if !form.IsDecimal(form.Word(s)) {
		return 0, errorf(NumericError, "%s index must be an integer word, got %s", context, w)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errorf(NumericError, "%s index overflows: %s", context, w)
	}
	if neg {
		n = -n
	}
	return n, nil
}

func wordFromInt(n int64) form.Word {
	return form.Word(strconv.FormatInt(n, 10))
}

func arith(op func(a, b int64) int64) func(*Interpreter, []form.Form) (form.Form, error) {
	return func(_ *Interpreter, args []form.Form) (form.Form, error) {
		a, err := wordToInt("arithmetic", args[0])
		if err != nil {
			return nil, err
		}
		b, err := wordToInt("arithmetic", args[1])
		if err != nil {
			return nil, err
		}
		return wordFromInt(op(a, b)), nil
	}
}

func compare(op func(a, b int64) bool) func(*Interpreter, []form.Form) (form.Form, error) {
	return func(_ *Interpreter, args []form.Form) (form.Form, error) {
		a, err := wordToInt("comparison", args[0])
		if err != nil {
			return nil, err
		}
		b, err := wordToInt("comparison", args[1])
		if err != nil {
			return nil, err
		}
		return form.Bool(op(a, b)), nil
	}
}

func biAbort(*Interpreter, []form.Form) (form.Form, error) {
	return nil, errorf(AbortError, "aborted")
}

func biGensym(in *Interpreter, _ []form.Form) (form.Form, error) {
	w := form.Word(fmt.Sprintf("gensym%d", in.gensym))
	in.gensym++
	return w, nil
}

func biIsWord(_ *Interpreter, args []form.Form) (form.Form, error) {
	_, ok := args[0].(form.Word)
	return form.Bool(ok), nil
}

func biIsList(_ *Interpreter, args []form.Form) (form.Form, error) {
	_, ok := args[0].(form.List)
	return form.Bool(ok), nil
}

func biSize(_ *Interpreter, args []form.Form) (form.Form, error) {
	switch v := args[0].(type) {
	case form.Word:
		return wordFromInt(int64(len(v))), nil
	case form.List:
		return wordFromInt(int64(len(v))), nil
	default:
		return nil, errorf(TypeError, "size requires a word or a list")
	}
}

func biLog(in *Interpreter, args []form.Form) (form.Form, error) {
	if _, err := fmt.Fprintf(in.out, "wuns: %s\n", args[0]); err != nil {
		return nil, errorf(AbortError, "log failed: %v", err)
	}
	return form.Unit(), nil
}

func biEq(_ *Interpreter, args []form.Form) (form.Form, error) {
	a, ok := args[0].(form.Word)
	if !ok {
		return nil, errorf(TypeError, "eq requires words, got %s", args[0])
	}
	b, ok := args[1].(form.Word)
	if !ok {
		return nil, errorf(TypeError, "eq requires words, got %s", args[1])
	}
	return form.Bool(a == b), nil
}

func biAt(_ *Interpreter, args []form.Form) (form.Form, error) {
	i, err := wordToIndex("at", args[1])
	if err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case form.List:
		idx := i
		if idx < 0 {
			idx += int64(len(v))
		}
		if idx < 0 || idx >= int64(len(v)) {
			return nil, errorf(IndexError, "at index %d out of range for list of size %d", i, len(v))
		}
		return v[idx], nil
	case form.Word:
		idx := i
		if idx < 0 {
			idx += int64(len(v))
		}
		if idx < 0 || idx >= int64(len(v)) {
			return nil, errorf(IndexError, "at index %d out of range for word of size %d", i, len(v))
		}
		return wordFromInt(int64(v[idx])), nil
	default:
		return nil, errorf(TypeError, "at requires a word or a list")
	}
}

// biSlice clamps both bounds into [0, len] with negatives counted from
// the end; an empty or inverted range yields unit.
func biSlice(_ *Interpreter, args []form.Form) (form.Form, error) {
	v, ok := args[0].(form.List)
	if !ok {
		return nil, errorf(TypeError, "slice requires a list, got %s", args[0])
	}
	i, err := wordToIndex("slice", args[1])
	if err != nil {
		return nil, err
	}
	j, err := wordToIndex("slice", args[2])
	if err != nil {
		return nil, err
	}
	start := clampIndex(i, len(v))
	end := clampIndex(j, len(v))
	if end <= start {
		return form.Unit(), nil
	}
	out := make(form.List, end-start)
	copy(out, v[start:end])
	return out, nil
}

func clampIndex(i int64, size int) int {
	if i < 0 {
		i += int64(size)
	}
	if i < 0 {
		return 0
	}
	if i > int64(size) {
		return size
	}
	return int(i)
}

func biConcat(_ *Interpreter, args []form.Form) (form.Form, error) {
	total := 0
	for _, a := range args {
		l, ok := a.(form.List)
		if !ok {
			return nil, errorf(TypeError, "concat requires lists, got %s", a)
		}
		total += len(l)
	}
	out := make(form.List, 0, total)
	for _, a := range args {
		out = append(out, a.(form.List)...)
	}
	return out, nil
}
