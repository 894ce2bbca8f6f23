package form

// The continuation sentinel is the empty word. The parser only ever
// produces non-empty words, so a packet headed by it cannot be forged
// from source; [cont ...] is the sole constructor.
const sentinel Word = ""

// NewContinuation builds a continuation packet carrying the given values.
func NewContinuation(values []Form) List {
	packet := make(List, 0, len(values)+1)
	packet = append(packet, sentinel)
	packet = append(packet, values...)
	return packet
}

// IsContinuation reports whether f is a continuation packet: a non-empty
// list whose first element is the sentinel word.
func IsContinuation(f Form) bool {
	l, ok := f.(List)
	if !ok || len(l) == 0 {
		return false
	}
	w, ok := l[0].(Word)
	return ok && len(w) == 0
}

// ContinuationValues returns the values carried by a packet.
func ContinuationValues(l List) []Form { return l[1:] }
