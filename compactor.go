package wikicorpus

// A compactor walks a buffer with independent read and write cursors.
//
// Bytes that are read but never emitted are dropped; rewinding the
// write cursor discards bytes already emitted.  The write cursor never
// passes the read cursor, so everything happens in the one buffer.
type compactor struct {
	buf []byte
	r   int
	w   int
}

// newCompactor starts reading at the first non-whitespace byte.
func newCompactor(buf []byte) compactor {
	return compactor{buf: buf, r: firstNonSpace(buf)}
}

func (c *compactor) more() bool {
	return c.r < len(c.buf)
}

// next returns the byte under the read cursor and advances it.
func (c *compactor) next() byte {
	b := c.buf[c.r]
	c.r++
	return b
}

// rest is the unread part of the buffer.
func (c *compactor) rest() []byte {
	return c.buf[c.r:]
}

func (c *compactor) skip(n int) {
	c.r += n
}

// put overwrites the byte under the read cursor so it is read next.
func (c *compactor) put(b byte) {
	c.buf[c.r] = b
}

func (c *compactor) emit(b byte) {
	c.buf[c.w] = b
	c.w++
}

func (c *compactor) mark() int {
	return c.w
}

func (c *compactor) rewind(mark int) {
	if mark < c.w {
		c.w = mark
	}
}

func (c *compactor) len() int {
	return c.w
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// firstNonSpace returns the index of the first non-whitespace byte,
// or len(buf) if there is none.
func firstNonSpace(buf []byte) int {
	for i, b := range buf {
		if !isSpace(b) {
			return i
		}
	}
	return len(buf)
}
