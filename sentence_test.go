package wikicorpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		in  string
		exp []string
	}{
		{"This is a valid test. Next line starts here.",
			[]string{"This is a valid test", "Next line starts here"}},
		{"No. 5 bus", nil},
		{"Short", nil},
		{"In 1990 the band played well. They toured Europe twice.",
			[]string{"They toured Europe twice"}},
		{"First sentence has five words.Second one also has enough words.",
			[]string{"First sentence has five words", "Second one also has enough words"}},
		{"He left at noon. and returned late in the day.",
			[]string{"He left at noon. and returned late in the day"}},
		{"Too short. This one is long enough.",
			[]string{"This one is long enough"}},
		{"the rest is lowercase here today.", nil},
		{"This has no final period at all", nil},
		{"It's a fine day for a walk.", nil},
		{"Trailing spaces count as the end.   ",
			[]string{"Trailing spaces count as the end"}},
		{"Émile Zola wrote many long novels. Ça va bien merci beaucoup ici.",
			[]string{"Émile Zola wrote many long novels", "Ça va bien merci beaucoup ici"}},
	}

	for _, test := range tests {
		assert.Equal(t, test.exp, SplitSentences(test.in), "input %q", test.in)
	}
}

func TestSegmentShortLines(t *testing.T) {
	s := &Segmenter{MinWords: 1, MinLineLength: 6}
	assert.Empty(t, s.Split("A b."))
	assert.Equal(t, []string{"A bcd"}, s.Split("A bcd."))
}

func TestSegmentRejects(t *testing.T) {
	obs := &recordingObserver{}
	s := NewSegmenter()
	s.Observer = obs

	got := s.Split("No digits 42 here at all. Fine sentence with many words.")
	assert.Equal(t, []string{"Fine sentence with many words"}, got)
	assert.Equal(t, []string{"No digits 42 here at all"}, obs.rejected)
}

func TestSegmentEmitError(t *testing.T) {
	s := NewSegmenter()
	calls := 0
	err := s.Segment("This is a valid test. Next line starts here.", func(string) error {
		calls++
		return assert.AnError
	})
	require.Equal(t, assert.AnError, err)
	assert.Equal(t, 1, calls)
}

func TestSegmenterZeroValue(t *testing.T) {
	// A bare Segmenter still works; it just accepts any word count.
	var s Segmenter
	assert.Equal(t, []string{"Hi there"}, s.Split("Hi there."))
}
