package wikicorpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func feedAll(m *Matcher, s string) []int {
	var rv []int
	for i := 0; i < len(s); i++ {
		if m.Feed(s[i]) {
			rv = append(rv, i)
		}
	}
	return rv
}

func TestMatcher(t *testing.T) {
	m := NewMatcher("<text")
	assert.Equal(t, []int{4, 17}, feedAll(m, "<text><title><text"))
}

func TestMatcherRestartsAtMismatch(t *testing.T) {
	m := NewMatcher("<text")
	assert.Equal(t, []int{5}, feedAll(m, "<<text"))
}

func TestMatcherDisarmed(t *testing.T) {
	m := NewMatcher("--")
	m.Disarm()
	assert.False(t, m.Armed())
	assert.Empty(t, feedAll(m, "----"))

	m.Arm()
	assert.Equal(t, []int{1, 3}, feedAll(m, "----"))
}

func TestFirstNonSpace(t *testing.T) {
	assert.Equal(t, 0, firstNonSpace([]byte("x")))
	assert.Equal(t, 3, firstNonSpace([]byte(" \n\tx")))
	assert.Equal(t, 2, firstNonSpace([]byte("  ")))
	assert.Equal(t, 0, firstNonSpace(nil))
}
