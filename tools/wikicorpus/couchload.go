package main

import (
	"github.com/dustin/go-couch"
	"github.com/dustin/httputil"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type couchSentence struct {
	ID string `json:"_id"`
	sentence
}

type couchStore struct {
	db couch.Database
}

func openCouch(dburl string) storeOpener {
	return func() (sentenceStore, error) {
		db, err := couch.Connect(dburl)
		if err != nil {
			return nil, errors.Wrap(err, "connecting to couchdb")
		}
		return &couchStore{db: db}, nil
	}
}

// Store inserts s. A conflict means the same text was already stored.
func (c *couchStore) Store(s *sentence) error {
	doc := couchSentence{ID: s.ID, sentence: *s}
	_, _, err := c.db.Insert(&doc)
	switch {
	case err == nil:
	case httputil.IsHTTPStatus(err, 409):
		log.Debug().Str("id", s.ID).Int64("seq", s.Seq).Msg("duplicate sentence")
	default:
		return errors.Wrapf(err, "inserting %v", s.ID)
	}
	return nil
}

func (c *couchStore) Close() error { return nil }

var couchCmd = &cobra.Command{
	Use:   "couchdb <sentences.txt>",
	Short: "Load sentences into CouchDB",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return loadFile(args[0], openCouch(viper.GetString("couchdb.url")))
	},
}

func init() {
	couchCmd.Flags().String("couchdb.url", "http://localhost:5984/wikicorpus",
		"CouchDB database URL")
	_ = viper.BindPFlag("couchdb.url", couchCmd.Flags().Lookup("couchdb.url"))

	loadCmd.AddCommand(couchCmd)
}
