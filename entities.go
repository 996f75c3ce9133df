package wikicorpus

import "bytes"

// Recognized references, in match order.  Anything else after an &
// passes through untouched.
var entities = []struct {
	name []byte
	char byte
}{
	{[]byte("lt;"), '<'},
	{[]byte("gt;"), '>'},
	{[]byte("amp;"), '&'},
	{[]byte("nbsp;"), ' '},
	{[]byte("quot;"), '\''},
}

// DecodeEntities replaces &lt; &gt; &amp; &nbsp; and &quot; in buf with
// the characters they name and returns the new length.  &quot; becomes
// a single quote.
//
// Leading whitespace is dropped.  A decoded character is scanned again,
// so the doubly escaped &amp;nbsp; and &amp;lt; found in dumps become a
// space and <.
func DecodeEntities(buf []byte) int {
	c := newCompactor(buf)
	for c.more() {
		b := c.next()
		if b == '&' {
			if ch, n, ok := matchEntity(c.rest()); ok {
				c.skip(n - 1)
				c.put(ch)
				continue
			}
		}
		c.emit(b)
	}
	return c.len()
}

func matchEntity(rest []byte) (byte, int, bool) {
	for _, e := range entities {
		if bytes.HasPrefix(rest, e.name) {
			return e.char, len(e.name), true
		}
	}
	return 0, 0, false
}
