package main

import (
	"github.com/couchbase/go-couchbase"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type couchbaseStore struct {
	b *couchbase.Bucket
}

func openCouchbase(u, bucket string) storeOpener {
	return func() (sentenceStore, error) {
		b, err := couchbase.GetBucket(u, "default", bucket)
		if err != nil {
			return nil, errors.Wrap(err, "connecting to couchbase")
		}
		return &couchbaseStore{b: b}, nil
	}
}

func (c *couchbaseStore) Store(s *sentence) error {
	return errors.Wrapf(c.b.Set(s.ID, 0, s), "setting %v", s.ID)
}

func (c *couchbaseStore) Close() error {
	c.b.Close()
	return nil
}

var couchbaseCmd = &cobra.Command{
	Use:   "couchbase <sentences.txt>",
	Short: "Load sentences into a Couchbase bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return loadFile(args[0], openCouchbase(viper.GetString("couchbase.url"),
			viper.GetString("couchbase.bucket")))
	},
}

func init() {
	couchbaseCmd.Flags().String("couchbase.url", "http://localhost:8091/", "Couchbase URL")
	couchbaseCmd.Flags().String("couchbase.bucket", "default", "Couchbase bucket")
	_ = viper.BindPFlag("couchbase.url", couchbaseCmd.Flags().Lookup("couchbase.url"))
	_ = viper.BindPFlag("couchbase.bucket", couchbaseCmd.Flags().Lookup("couchbase.bucket"))

	loadCmd.AddCommand(couchbaseCmd)
}
