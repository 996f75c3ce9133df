package wikicorpus

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultMinWords is the fewest word delimiters a sentence needs.
	DefaultMinWords = 5
	// DefaultMinLineLength is the shortest line, in characters, worth
	// scanning.
	DefaultMinLineLength = 6

	terminalPunctuation = "!,.;?"
)

// A Segmenter splits cleaned paragraphs into sentences.
//
// A sentence starts at the first capital letter after a boundary and
// ends before a period that is followed by a capital, by whitespace and
// a capital, or by the end of the line.  It is kept when it contains
// only letters, hyphens, whitespace and !,.;? and has at least MinWords
// delimiters (whitespace and punctuation both count).
type Segmenter struct {
	MinWords      int
	MinLineLength int
	Observer      Observer
}

// NewSegmenter gets a segmenter with the default thresholds.
func NewSegmenter() *Segmenter {
	return &Segmenter{
		MinWords:      DefaultMinWords,
		MinLineLength: DefaultMinLineLength,
		Observer:      NopObserver{},
	}
}

// Segment calls emit for each sentence in line, left to right, and
// stops at the first error emit returns.
func (s *Segmenter) Segment(line string, emit func(string) error) error {
	if utf8.RuneCountInString(line) < s.MinLineLength {
		return nil
	}

	words := 0
	start := -1
	valid := false
	from := 0

	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		next := i + size

		switch {
		case unicode.IsLetter(r) || r == '-':
			if start < 0 && unicode.IsUpper(r) {
				valid = true
				start = i
			}
		case strings.ContainsRune(terminalPunctuation, r) || unicode.IsSpace(r):
			words++
		default:
			valid = false
		}

		if r == '.' {
			boundary := false
			r1, s1 := utf8.DecodeRuneInString(line[next:])
			switch {
			case unicode.IsUpper(r1):
				boundary = true
			case isBlank(line[next:]):
				// The line terminator delimits the last word.
				boundary = true
				words++
			case unicode.IsSpace(r1):
				r2, _ := utf8.DecodeRuneInString(line[next+s1:])
				if unicode.IsUpper(r2) {
					boundary = true
					next += s1
				}
			}

			if boundary {
				if valid && start >= 0 && words >= s.MinWords {
					if err := emit(line[start:i]); err != nil {
						return err
					}
				} else if i > from {
					s.observer().SentenceRejected(line[from:i])
				}
				words = 0
				start = -1
				valid = false
				from = next
			}
		}
		i = next
	}
	return nil
}

// Split returns the sentences in line.
func (s *Segmenter) Split(line string) []string {
	var rv []string
	s.Segment(line, func(sentence string) error {
		rv = append(rv, sentence)
		return nil
	})
	return rv
}

func (s *Segmenter) observer() Observer {
	if s.Observer == nil {
		return NopObserver{}
	}
	return s.Observer
}

// SplitSentences splits line with the default thresholds.
func SplitSentences(line string) []string {
	return NewSegmenter().Split(line)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
