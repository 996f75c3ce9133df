package wikicorpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func apply(f func([]byte) int, in string) string {
	buf := []byte(in)
	return string(buf[:f(buf)])
}

func TestDecodeEntities(t *testing.T) {
	tests := []struct {
		in, exp string
	}{
		{"Tom &amp; Jerry", "Tom & Jerry"},
		{"a &lt;b&gt; c", "a <b> c"},
		{"&quot;q&quot;", "'q'"},
		{"x&nbsp;y", "x y"},
		{"&amp;lt;", "<"},
		{"old&amp;nbsp;mill", "old mill"},
		{"&amp;amp;", "&"},
		{"&amp; x", "& x"},
		{"&&lt;", "&<"},
		{"AT&T", "AT&T"},
		{"&AMP;", "&AMP;"},
		{"&lt no", "&lt no"},
		{"end &", "end &"},
		{"  lead", "lead"},
		{"", ""},
	}

	for _, test := range tests {
		assert.Equal(t, test.exp, apply(DecodeEntities, test.in), "input %q", test.in)
	}
}

func TestDecodeEntitiesIdempotent(t *testing.T) {
	once := apply(DecodeEntities, "Tom & Jerry <3 'quoted' &amp;amp;lt;")
	assert.Equal(t, once, apply(DecodeEntities, once))
}

func TestRemoveLinks(t *testing.T) {
	tests := []struct {
		in, exp string
	}{
		{"[[Paris]]", ""},
		{"[[Paris|the capital]]", "the capital"},
		{"text [[A|B]] more", "text B more"},
		{"[[File:x.jpg|thumb|A [[cat]] here]]", "A  here"},
		{"see [1] cite", "see  cite"},
		{"[[unclosed link", "unclosed link"},
		{"a | b", "a | b"},
		{"x]y", "xy"},
		{"''bold''", "''bold''"},
		{"  [[a|b]]c", "bc"},
	}

	for _, test := range tests {
		assert.Equal(t, test.exp, apply(RemoveLinks, test.in), "input %q", test.in)
	}
}

func TestRemoveLinksStripApostrophes(t *testing.T) {
	buf := []byte("'''Sponges''' are [[animal|animals]]")
	n := removeLinks(buf, true)
	assert.Equal(t, "Sponges are animals", string(buf[:n]))
}

func TestRemoveTagRegions(t *testing.T) {
	refs := func(buf []byte) int { return RemoveTagRegions(buf, "ref", "") }
	tests := []struct {
		in, exp string
	}{
		{"See&lt;ref&gt;footnote&lt;/ref&gt; also", "See also"},
		{"A&lt;ref&gt;x&lt;/ref&gt; B&lt;ref name=y&gt;z&lt;/ref&gt; C", "A B C"},
		{"A&lt;ref&gt;never closed", "A&lt;ref&gt;never closed"},
		{"nothing here", "nothing here"},
		// Self-closing refs run on to the next close.
		{"A&lt;ref name=n/&gt; B&lt;ref&gt;x&lt;/ref&gt; C", "A C"},
	}

	for _, test := range tests {
		assert.Equal(t, test.exp, apply(refs, test.in), "input %q", test.in)
	}
}

func TestRemoveComments(t *testing.T) {
	buf := []byte("a&lt;!-- hidden --&gt;b")
	n := RemoveTagRegions(buf, "!--", "--")
	assert.Equal(t, "ab", string(buf[:n]))
}

func TestClean(t *testing.T) {
	in := `The [[Cell (biology)|cell]]s are small&lt;ref name="a"&gt;[[Foo|bar]]&lt;/ref&gt; &amp; round.&lt;!-- note --&gt;`
	assert.Equal(t, "The cells are small & round.", apply(Cleaner{}.Clean, in))
}

func TestCleanDecodesAfterTags(t *testing.T) {
	// Decoded brackets must not start a region.
	in := "x &amp;lt;ref&amp;gt;kept&amp;lt;/ref&amp;gt; y"
	assert.Equal(t, "x <ref>kept</ref> y", apply(Cleaner{}.Clean, in))
}

func TestCleanDoublyEscapedSpace(t *testing.T) {
	buf := []byte("The river flows past the old&amp;nbsp;mill every single day. It is long.")
	n := Cleaner{}.Clean(buf)
	assert.Equal(t, []string{"The river flows past the old mill every single day"},
		SplitSentences(string(buf[:n])))
}
