package main

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/mgo.v2"
)

var seqIndex = mgo.Index{
	Key:        []string{"seq"},
	Background: true,
}

type mongoStore struct {
	session *mgo.Session
	c       *mgo.Collection
}

// openMongo dials once and hands each worker a copy of the session.
func openMongo(dburl, dbname, collection string) storeOpener {
	var (
		once    sync.Once
		root    *mgo.Session
		rootErr error
	)
	return func() (sentenceStore, error) {
		once.Do(func() {
			root, rootErr = mgo.Dial(dburl)
			if rootErr != nil {
				rootErr = errors.Wrap(rootErr, "dialing mongo")
				return
			}
			rootErr = errors.Wrap(root.DB(dbname).C(collection).EnsureIndex(seqIndex),
				"creating seq index")
		})
		if rootErr != nil {
			return nil, rootErr
		}
		s := root.Copy()
		return &mongoStore{session: s, c: s.DB(dbname).C(collection)}, nil
	}
}

func (m *mongoStore) Store(s *sentence) error {
	err := m.c.Insert(s)
	if mgo.IsDup(err) {
		log.Debug().Str("id", s.ID).Int64("seq", s.Seq).Msg("duplicate sentence")
		return nil
	}
	return errors.Wrapf(err, "inserting %v", s.ID)
}

func (m *mongoStore) Close() error {
	m.session.Close()
	return nil
}

var mongoCmd = &cobra.Command{
	Use:   "mongo <sentences.txt>",
	Short: "Load sentences into MongoDB",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return loadFile(args[0], openMongo(viper.GetString("mongo.url"),
			viper.GetString("mongo.db"), viper.GetString("mongo.collection")))
	},
}

func init() {
	f := mongoCmd.Flags()
	f.String("mongo.url", "localhost", "The mongo dburl(s)")
	f.String("mongo.db", "wp", "The database name to use")
	f.String("mongo.collection", "sentences", "The collection to store sentences in")
	for _, k := range []string{"mongo.url", "mongo.db", "mongo.collection"} {
		_ = viper.BindPFlag(k, f.Lookup(k))
	}

	loadCmd.AddCommand(mongoCmd)
}
