package wikicorpus

// An open [[link, with the write position where it began.
type linkFrame struct {
	mark  int
	piped bool
}

// RemoveLinks strips [[wikilink]] markup from buf in place and returns
// the new length.
//
// Piped links keep their display text and lose the target:
//
//	[[Paris|the capital]]  ->  the capital
//	[[Paris]]              ->  (nothing)
//
// Single brackets are treated the same way, so [http://x.org Site]
// disappears entirely.  Brackets themselves are never written.  A link
// still open at the end of the buffer keeps its content.
func RemoveLinks(buf []byte) int {
	return removeLinks(buf, false)
}

func removeLinks(buf []byte, stripApostrophes bool) int {
	c := newCompactor(buf)
	depth := 0
	var frames []linkFrame

	for c.more() {
		b := c.next()
		switch b {
		case '[':
			depth++
			if depth%2 == 1 {
				frames = append(frames, linkFrame{mark: c.mark()})
			} else {
				c.rewind(frames[len(frames)-1].mark)
			}
		case ']':
			if depth == 0 {
				continue
			}
			depth--
			if depth%2 == 0 {
				f := frames[len(frames)-1]
				frames = frames[:len(frames)-1]
				if !f.piped {
					c.rewind(f.mark)
				}
			}
		case '|':
			if depth == 0 {
				c.emit(b)
				continue
			}
			f := &frames[len(frames)-1]
			c.rewind(f.mark)
			f.piped = true
		case '\'':
			if !stripApostrophes {
				c.emit(b)
			}
		default:
			c.emit(b)
		}
	}
	return c.len()
}
