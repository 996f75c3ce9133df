package wikicorpus

import (
	"bufio"
	"compress/bzip2"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// SegmentStats summarizes a sentence pass.
type SegmentStats struct {
	Lines     int64
	Scanned   int64
	Sentences int64
	Rejected  int64
}

type countingObserver struct {
	Observer
	rejected *int64
}

func (c countingObserver) SentenceRejected(candidate string) {
	*c.rejected++
	c.Observer.SentenceRejected(candidate)
}

// SegmentLines reads cleaned paragraphs from r and writes one sentence
// per line to w.
func SegmentLines(r io.Reader, w io.Writer, opts Options) (SegmentStats, error) {
	opts = opts.withDefaults()
	stats := SegmentStats{}
	seg := &Segmenter{
		MinWords:      opts.MinWords,
		MinLineLength: opts.MinLineLength,
		Observer:      countingObserver{opts.Observer, &stats.Rejected},
	}

	bw := bufio.NewWriter(w)
	emit := func(sentence string) error {
		if _, err := bw.WriteString(sentence); err != nil {
			return err
		}
		stats.Sentences++
		return bw.WriteByte('\n')
	}

	sc := newLineScanner(r, opts.ArticleCapacity)
	for sc.Scan() {
		line := sc.Text()
		stats.Lines++
		if utf8.RuneCountInString(line) >= opts.MinLineLength {
			stats.Scanned++
		}
		if err := seg.Segment(line, emit); err != nil {
			bw.Flush()
			return stats, errors.Wrap(err, "writing sentence")
		}
		if stats.Lines%opts.ProgressLines == 0 {
			opts.Observer.LinesScanned(stats.Lines)
		}
	}
	if err := sc.Err(); err != nil {
		bw.Flush()
		return stats, errors.Wrapf(err, "reading line %d", stats.Lines+1)
	}
	return stats, errors.Wrap(bw.Flush(), "writing sentence")
}

func newLineScanner(r io.Reader, maxLine int) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, min(64*1024, maxLine+1)), maxLine+1)
	return sc
}

// ExtractFile runs the extraction phase from the dump at in to the
// file at out.  Dumps named *.bz2 are decompressed on the fly.
func ExtractFile(in, out string, opts Options) (stats ExtractStats, err error) {
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

	x := NewExtractor(w, opts)
	err = x.Extract(r)
	stats = x.Stats()
	return stats, errors.Wrapf(err, "extracting %v", in)
}

// SegmentFile runs the sentence phase from in to out.
func SegmentFile(in, out string, opts Options) (stats SegmentStats, err error) {
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

	stats, err = SegmentLines(r, w, opts)
	return stats, errors.Wrapf(err, "segmenting %v", in)
}

func openInput(fn string) (io.Reader, func() error, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening %v", fn)
	}
	var r io.Reader = f
	if strings.HasSuffix(fn, ".bz2") {
		r = bzip2.NewReader(f)
	}
	return r, f.Close, nil
}

// createOutput returns a buffered writer on a new file.  The returned
// close func flushes and closes, reporting the first error.
func createOutput(fn string) (io.Writer, func() error, error) {
	f, err := os.Create(fn)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "creating %v", fn)
	}
	bw := bufio.NewWriter(f)
	closer := func() error {
		ferr := bw.Flush()
		cerr := f.Close()
		if ferr != nil {
			return errors.Wrapf(ferr, "writing %v", fn)
		}
		return errors.Wrapf(cerr, "closing %v", fn)
	}
	return bw, closer, nil
}
