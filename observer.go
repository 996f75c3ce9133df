package wikicorpus

import (
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
)

// An Observer is told about progress while a phase runs.  Calls come
// from the scanning goroutine at fixed intervals, so implementations
// should be quick.
type Observer interface {
	// BytesScanned reports the running total of input bytes.
	BytesScanned(total int64)
	// LinesScanned reports the running total of input lines.
	LinesScanned(total int64)
	// SentenceRejected receives a candidate that failed the sentence
	// heuristic.
	SentenceRejected(candidate string)
}

// NopObserver ignores everything.
type NopObserver struct{}

func (NopObserver) BytesScanned(int64)      {}
func (NopObserver) LinesScanned(int64)      {}
func (NopObserver) SentenceRejected(string) {}

// LogObserver logs progress at info level and rejected sentences at
// debug level.
type LogObserver struct {
	Logger zerolog.Logger
}

func (o LogObserver) BytesScanned(total int64) {
	o.Logger.Info().
		Str("read", humanize.IBytes(uint64(total))).
		Msg("scanning dump")
}

func (o LogObserver) LinesScanned(total int64) {
	o.Logger.Info().
		Str("lines", humanize.Comma(total)).
		Msg("segmenting")
}

func (o LogObserver) SentenceRejected(candidate string) {
	o.Logger.Debug().Str("candidate", candidate).Msg("rejected")
}
