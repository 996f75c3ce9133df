package wikicorpus

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWordList(t *testing.T) {
	out := &bytes.Buffer{}
	kept, dropped, err := BuildWordList(strings.NewReader("apple\nisn't\nBob's\nbanana\n"), out)
	require.NoError(t, err)

	assert.Equal(t, 2, kept)
	assert.Equal(t, 2, dropped)
	assert.Equal(t, "apple\nbanana\n", out.String())
}

func TestLexicon(t *testing.T) {
	lex, err := LoadLexicon(strings.NewReader("the\ncat\n  sat \n\non\nmat\nParis\n"))
	require.NoError(t, err)

	assert.Len(t, lex, 6)
	assert.True(t, lex.Known("The"))
	assert.True(t, lex.Known("sat"))
	assert.True(t, lex.Known("Paris"))
	assert.False(t, lex.Known("paris"))
	assert.False(t, lex.Known("dog"))
}

func TestKnownSentence(t *testing.T) {
	lex := Lexicon{"the": {}, "cat": {}, "sat": {}, "on": {}, "mat": {}, "well-fed": {}}

	assert.True(t, KnownSentence("The cat sat on the mat", lex))
	assert.True(t, KnownSentence("The well-fed cat sat, on the mat", lex))
	assert.False(t, KnownSentence("The dog sat on the mat", lex))
	assert.False(t, KnownSentence("", lex))
	assert.True(t, KnownSentence("The cat "+strings.Repeat("x", maxWordLength), lex))
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "phase2.txt")
	words := filepath.Join(dir, "words.txt")
	out := filepath.Join(dir, "phase3.txt")

	require.NoError(t, os.WriteFile(in,
		[]byte("The cat sat on the mat\nThe dog sat on the mat\nOn the mat sat the cat\n"), 0644))
	require.NoError(t, os.WriteFile(words, []byte("the\ncat\nsat\non\nmat\n"), 0644))

	obs := &recordingObserver{}
	stats, err := ValidateFile(in, words, out, Options{Observer: obs})
	require.NoError(t, err)

	assert.Equal(t, "The cat sat on the mat\nOn the mat sat the cat\n", readFile(t, out))
	assert.Equal(t, int64(3), stats.Sentences)
	assert.Equal(t, int64(2), stats.Kept)
	assert.Equal(t, []string{"The dog sat on the mat"}, obs.rejected)
}

func TestWordListFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "words")
	out := filepath.Join(dir, "wordlist.txt")
	require.NoError(t, os.WriteFile(in, []byte("a\nain't\nzebra\n"), 0644))

	kept, dropped, err := WordListFile(in, out)
	require.NoError(t, err)
	assert.Equal(t, 2, kept)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, "a\nzebra\n", readFile(t, out))
}
