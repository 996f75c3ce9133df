package main

import (
	"github.com/dustin/go-elasticsearch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const esBatchSize = 1000

// Each worker gets its own bulk loader.
type esStore struct {
	update  func(*elasticsearch.UpdateInstruction)
	flush   func()
	quit    func()
	index   string
	pending int
}

func openES(u, index string) storeOpener {
	return func() (sentenceStore, error) {
		es := elasticsearch.ElasticSearch{URL: u}
		bulkLoader := es.Bulk()
		return &esStore{
			update: func(ui *elasticsearch.UpdateInstruction) { bulkLoader.Update(ui) },
			flush:  func() { bulkLoader.SendBatch() },
			quit:   func() { bulkLoader.Quit() },
			index:  index,
		}, nil
	}
}

func (s *esStore) Store(st *sentence) error {
	s.pending++
	if s.pending > esBatchSize {
		s.flush()
		s.pending = 0
	}
	s.update(&elasticsearch.UpdateInstruction{
		Id:    st.ID,
		Index: s.index,
		Type:  "sentence",
		Body: map[string]interface{}{
			"seq":    st.Seq,
			"text":   st.Text,
			"words":  st.Words,
			"source": st.Source,
		},
	})
	return nil
}

func (s *esStore) Close() error {
	s.quit()
	return nil
}

var esCmd = &cobra.Command{
	Use:   "es <sentences.txt>",
	Short: "Load sentences into ElasticSearch",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return loadFile(args[0],
			openES(viper.GetString("es.url"), viper.GetString("es.index")))
	},
}

func init() {
	esCmd.Flags().String("es.url", "http://localhost:9200/", "ElasticSearch URL")
	esCmd.Flags().String("es.index", "wikicorpus", "Index to load into")
	_ = viper.BindPFlag("es.url", esCmd.Flags().Lookup("es.url"))
	_ = viper.BindPFlag("es.index", esCmd.Flags().Lookup("es.index"))

	loadCmd.AddCommand(esCmd)
}
