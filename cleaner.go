package wikicorpus

// A Cleaner strips residual markup from one extracted article.
type Cleaner struct {
	// StripApostrophes drops ' characters along with link markup, which
	// removes ''italic'' and '''bold''' quoting at the cost of
	// contractions and possessives.
	StripApostrophes bool
}

// Clean rewrites buf in place and returns its new length.
//
// Links go first because they wrap and sit inside tagged regions.
// Entities go last so a decoded < is never taken for a tag.
func (cl Cleaner) Clean(buf []byte) int {
	n := removeLinks(buf, cl.StripApostrophes)
	n = RemoveTagRegions(buf[:n], "ref", "")
	n = RemoveTagRegions(buf[:n], "!--", "--")
	return DecodeEntities(buf[:n])
}
