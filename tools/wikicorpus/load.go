package main

import (
	"bufio"
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dustin/go-wikicorpus"
)

// A sentence as stored by the loaders.
type sentence struct {
	ID     string `json:"id" bson:"_id"`
	Seq    int64  `json:"seq" bson:"seq"`
	Text   string `json:"text" bson:"text"`
	Words  int    `json:"words" bson:"words"`
	Source string `json:"source" bson:"source"`
}

// sentenceID is stable across reloads of the same corpus, so a reload
// overwrites or collides instead of duplicating.
func sentenceID(text string) string {
	h := md5.Sum([]byte(text))
	return hex.EncodeToString(h[:])
}

func newSentence(source string, seq int64, text string) *sentence {
	return &sentence{
		ID:     sentenceID(text),
		Seq:    seq,
		Text:   text,
		Words:  len(strings.Fields(text)),
		Source: source,
	}
}

// A sentenceStore is one worker's connection to a backend.
type sentenceStore interface {
	Store(s *sentence) error
	Close() error
}

type storeOpener func() (sentenceStore, error)

type loadStats struct {
	Lines  int64
	Stored int64
	Failed int64
}

const reportfreq = int64(1000)

// loadSentences feeds every non-empty line of r to workers stores.
// Lines may be up to maxLine bytes.  Store failures are logged and
// counted, not fatal.
func loadSentences(r io.Reader, source string, workers, maxLine int, open storeOpener) (loadStats, error) {
	if workers < 1 {
		workers = 1
	}
	if maxLine <= 0 {
		maxLine = wikicorpus.DefaultArticleCapacity
	}
	stats := loadStats{}

	stores := make([]sentenceStore, 0, workers)
	closeAll := func() error {
		var rv error
		for _, st := range stores {
			if err := st.Close(); err != nil && rv == nil {
				rv = err
			}
		}
		return rv
	}
	for i := 0; i < workers; i++ {
		st, err := open()
		if err != nil {
			closeAll()
			return stats, errors.Wrap(err, "opening store")
		}
		stores = append(stores, st)
	}

	ch := make(chan *sentence, 1000)
	wg := sync.WaitGroup{}
	for _, st := range stores {
		wg.Add(1)
		go func(st sentenceStore) {
			defer wg.Done()
			for s := range ch {
				if err := st.Store(s); err != nil {
					log.Warn().Err(err).Int64("seq", s.Seq).Msg("store failed")
					atomic.AddInt64(&stats.Failed, 1)
				}
			}
		}(st)
	}

	start := time.Now()
	prev := start
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, min(64*1024, maxLine+1)), maxLine+1)
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		stats.Lines++
		ch <- newSentence(source, stats.Lines, text)

		if stats.Lines%reportfreq == 0 {
			now := time.Now()
			d := now.Sub(prev)
			log.Info().
				Str("sentences", humanize.Comma(stats.Lines)).
				Float64("rate", float64(reportfreq)/d.Seconds()).
				Msg("loading")
			prev = now
		}
	}
	close(ch)
	wg.Wait()

	stats.Stored = stats.Lines - stats.Failed
	err := sc.Err()
	if cerr := closeAll(); err == nil {
		err = cerr
	}
	d := time.Since(start)
	log.Info().
		Str("stored", humanize.Comma(stats.Stored)).
		Int64("failed", stats.Failed).
		Dur("took", d).
		Msg("load done")
	return stats, errors.Wrap(err, "loading sentences")
}

func loadFile(fn string, open storeOpener) error {
	f, err := os.Open(fn)
	if err != nil {
		return errors.Wrapf(err, "opening %v", fn)
	}
	defer f.Close()

	_, err = loadSentences(f, fn, viper.GetInt("workers"),
		viper.GetInt("article_capacity"), open)
	return err
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Store a sentence file in a document database",
}

func init() {
	loadCmd.PersistentFlags().Int("workers", 8, "Number of store workers")
	_ = viper.BindPFlag("workers", loadCmd.PersistentFlags().Lookup("workers"))

	rootCmd.AddCommand(loadCmd)
}
