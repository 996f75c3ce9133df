package wikicorpus

import (
	"bufio"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Words this long are not looked up.
const maxWordLength = 1024

// A WordChecker knows which words are real.
type WordChecker interface {
	Known(word string) bool
}

// A Lexicon is a set of known words.
type Lexicon map[string]struct{}

// Known reports whether word, or its lower case form, is in the set.
func (l Lexicon) Known(word string) bool {
	if _, ok := l[word]; ok {
		return true
	}
	_, ok := l[strings.ToLower(word)]
	return ok
}

// LoadLexicon reads one word per line.
func LoadLexicon(r io.Reader) (Lexicon, error) {
	rv := Lexicon{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			rv[w] = struct{}{}
		}
	}
	return rv, errors.Wrap(sc.Err(), "reading word list")
}

// BuildWordList copies a system word list (e.g. /usr/share/dict/words)
// to w, dropping entries with an apostrophe.  The validator splits
// words at ', so those entries could never match.
func BuildWordList(r io.Reader, w io.Writer) (kept, dropped int, err error) {
	bw := bufio.NewWriter(w)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		word := sc.Text()
		if strings.ContainsRune(word, '\'') {
			dropped++
			continue
		}
		if _, err := bw.WriteString(word + "\n"); err != nil {
			return kept, dropped, errors.Wrap(err, "writing word list")
		}
		kept++
	}
	if err := sc.Err(); err != nil {
		return kept, dropped, errors.Wrap(err, "reading word list")
	}
	return kept, dropped, errors.Wrap(bw.Flush(), "writing word list")
}

// ValidateStats summarizes a validation pass.
type ValidateStats struct {
	Sentences int64
	Kept      int64
}

// KnownSentence reports whether every word in sentence passes wc.
// Words are runs of letters and hyphens.
func KnownSentence(sentence string, wc WordChecker) bool {
	words := 0
	for _, word := range strings.FieldsFunc(sentence, notWordRune) {
		if utf8.RuneCountInString(word) >= maxWordLength {
			continue
		}
		if !wc.Known(word) {
			return false
		}
		words++
	}
	return words > 0
}

func notWordRune(r rune) bool {
	return !unicode.IsLetter(r) && r != '-'
}

// ValidateSentences copies the sentences from r whose words are all
// known to w.  Rejected sentences go to the observer.
func ValidateSentences(r io.Reader, w io.Writer, wc WordChecker, opts Options) (ValidateStats, error) {
	opts = opts.withDefaults()
	stats := ValidateStats{}
	bw := bufio.NewWriter(w)

	sc := newLineScanner(r, opts.ArticleCapacity)
	for sc.Scan() {
		sentence := sc.Text()
		stats.Sentences++
		if stats.Sentences%opts.ProgressLines == 0 {
			opts.Observer.LinesScanned(stats.Sentences)
		}
		if !KnownSentence(sentence, wc) {
			opts.Observer.SentenceRejected(sentence)
			continue
		}
		if _, err := bw.WriteString(sentence + "\n"); err != nil {
			return stats, errors.Wrap(err, "writing sentence")
		}
		stats.Kept++
	}
	if err := sc.Err(); err != nil {
		bw.Flush()
		return stats, errors.Wrapf(err, "reading sentence %d", stats.Sentences+1)
	}
	return stats, errors.Wrap(bw.Flush(), "writing sentence")
}

// ValidateFile checks the sentences in in against the word list at
// words and writes the survivors to out.
func ValidateFile(in, words, out string, opts Options) (stats ValidateStats, err error) {
	wr, closeWords, err := openInput(words)
	if err != nil {
		return stats, err
	}
	lex, err := LoadLexicon(wr)
	closeWords()
	if err != nil {
		return stats, errors.Wrapf(err, "loading %v", words)
	}

	r, closeIn, err := openInput(in)
	if err != nil {
		return stats, err
	}
	defer closeIn()

	w, closeOut, err := createOutput(out)
	if err != nil {
		return stats, err
	}
	defer func() {
		if cerr := closeOut(); err == nil {
			err = cerr
		}
	}()

	stats, err = ValidateSentences(r, w, lex, opts)
	return stats, errors.Wrapf(err, "validating %v", in)
}

// WordListFile runs BuildWordList between two files.
func WordListFile(in, out string) (kept, dropped int, err error) {
	r, closeIn, err := openInput(in)
	if err != nil {
		return 0, 0, err
	}
	defer closeIn()

	w, closeOut, err := createOutput(out)
	if err != nil {
		return 0, 0, err
	}
	defer func() {
		if cerr := closeOut(); err == nil {
			err = cerr
		}
	}()

	return BuildWordList(r, w)
}
