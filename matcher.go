package wikicorpus

// A Matcher recognizes a literal in a byte stream fed one byte at a
// time.
//
// On a mismatch the candidate restarts at the offending byte; there is
// no skip table, so a pattern whose prefix repeats inside itself can be
// missed.  None of the literals used here have that shape.
type Matcher struct {
	pattern []byte
	n       int
	armed   bool
}

// NewMatcher returns an armed matcher for the given literal.
func NewMatcher(pattern string) *Matcher {
	return &Matcher{pattern: []byte(pattern), armed: true}
}

// Feed consumes one byte and reports whether it completed the literal.
// A disarmed matcher never matches.
func (m *Matcher) Feed(b byte) bool {
	if !m.armed {
		return false
	}
	switch {
	case m.pattern[m.n] == b:
		m.n++
	case m.pattern[0] == b:
		m.n = 1
	default:
		m.n = 0
	}
	if m.n == len(m.pattern) {
		m.n = 0
		return true
	}
	return false
}

// Arm enables the matcher with no bytes matched.
func (m *Matcher) Arm() {
	m.armed = true
	m.n = 0
}

// Disarm stops the matcher until the next Arm.
func (m *Matcher) Disarm() {
	m.armed = false
	m.n = 0
}

// Reset forgets any partial match.
func (m *Matcher) Reset() {
	m.n = 0
}

// Armed reports whether the matcher is consuming input.
func (m *Matcher) Armed() bool {
	return m.armed
}

// Len is the length of the literal.
func (m *Matcher) Len() int {
	return len(m.pattern)
}
