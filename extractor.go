package wikicorpus

import (
	"io"

	"github.com/pkg/errors"
)

type scanState int

const (
	seekingOpenTag scanState = iota
	insideOpenTag
	insideTextBlock
)

var newline = []byte{'\n'}

// ExtractStats summarizes an extraction.
type ExtractStats struct {
	Bytes     int64
	Blocks    int64
	Articles  int64
	Redirects int64
	Empty     int64
}

// An Extractor pulls article text out of a dump and writes each
// cleaned article to its sink, one paragraph per line.
//
// The dump is scanned a byte at a time: <text opens a block, > ends
// the open tag, and the next < closes the block.  Inside a block,
// bytes within {...} are skipped.  The dump escapes < inside article
// text as &lt;, so the first raw < is always the closing tag.
type Extractor struct {
	w       io.Writer
	cleaner Cleaner
	opts    Options

	state   scanState
	open    *Matcher
	depth   int
	article []byte
	n       int

	stats ExtractStats
}

// NewExtractor gets an extractor writing cleaned articles to w.
func NewExtractor(w io.Writer, opts Options) *Extractor {
	opts = opts.withDefaults()
	return &Extractor{
		w:       w,
		cleaner: Cleaner{StripApostrophes: opts.StripApostrophes},
		opts:    opts,
		open:    NewMatcher("<text"),
		article: make([]byte, opts.ArticleCapacity),
	}
}

// Extract scans r to the end.
//
// A block still open when r ends is dropped.  An oversized block stops
// the scan with ErrCapacityExceeded.
func (e *Extractor) Extract(r io.Reader) error {
	buf := make([]byte, e.opts.ReadBufferSize)
	report := e.stats.Bytes + e.opts.ProgressBytes
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			if serr := e.scan(b); serr != nil {
				return serr
			}
			e.stats.Bytes++
		}
		for e.stats.Bytes >= report {
			e.opts.Observer.BytesScanned(report)
			report += e.opts.ProgressBytes
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "reading dump at byte %d", e.stats.Bytes)
		}
	}
}

// Stats returns the counts so far.
func (e *Extractor) Stats() ExtractStats {
	return e.stats
}

func (e *Extractor) scan(b byte) error {
	switch e.state {
	case seekingOpenTag:
		if e.open.Feed(b) {
			e.state = insideOpenTag
		}
	case insideOpenTag:
		if b == '>' {
			e.state = insideTextBlock
			e.depth = 0
		}
	case insideTextBlock:
		switch b {
		case '{':
			e.depth++
		case '}':
			e.depth--
		case '<':
			err := e.flush()
			e.state = seekingOpenTag
			e.depth = 0
			e.n = 0
			return err
		default:
			if e.depth == 0 {
				if e.n == len(e.article) {
					return errors.Wrapf(ErrCapacityExceeded,
						"text region at byte %d exceeds %d bytes",
						e.stats.Bytes, len(e.article))
				}
				e.article[e.n] = b
				e.n++
			}
		}
	}
	return nil
}

// flush writes the accumulated block, unless it is blank or a
// #REDIRECT.
func (e *Extractor) flush() error {
	e.stats.Blocks++
	block := e.article[:e.n]

	i := firstNonSpace(block)
	switch {
	case i == len(block):
		e.stats.Empty++
		return nil
	case block[i] == '#':
		e.stats.Redirects++
		return nil
	}

	n := e.cleaner.Clean(block)
	if n == 0 {
		e.stats.Empty++
		return nil
	}
	if _, err := e.w.Write(block[:n]); err != nil {
		return errors.Wrap(err, "writing article")
	}
	if _, err := e.w.Write(newline); err != nil {
		return errors.Wrap(err, "writing article")
	}
	e.stats.Articles++
	return nil
}
