package wikicorpus

const (
	escapedOpen  = "&lt;"
	escapedClose = "&gt;"
)

// RemoveTagRegions deletes every escaped tag region named tagName from
// buf in place and returns the new length.
//
// A region starts at "&lt;"+tagName and runs through the first "&gt;"
// following the closing literal, which defaults to "&lt;/"+tagName when
// closing is empty.  Comments use tagName "!--" and closing "--".
//
// Regions don't nest.  A self-closing <ref/> stays open until the next
// </ref>, and everything between goes with it.
func RemoveTagRegions(buf []byte, tagName, closing string) int {
	if closing == "" {
		closing = escapedOpen + "/" + tagName
	}
	start := NewMatcher(escapedOpen + tagName)
	middle := NewMatcher(closing)
	middle.Disarm()
	end := NewMatcher(escapedClose)
	end.Disarm()

	c := newCompactor(buf)
	cut := 0
	for c.more() {
		b := c.next()
		c.emit(b)

		switch {
		case start.Feed(b):
			cut = c.mark() - start.Len()
			start.Disarm()
			middle.Arm()
		case middle.Feed(b):
			middle.Disarm()
			end.Arm()
		case end.Feed(b):
			c.rewind(cut)
			end.Disarm()
			start.Arm()
		}
	}
	return c.len()
}
