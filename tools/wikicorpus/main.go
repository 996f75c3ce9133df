// Build a sentence corpus from a wikipedia dump.
package main

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dustin/go-wikicorpus"
)

var rootCmd = &cobra.Command{
	Use:   "wikicorpus",
	Short: "Build a sentence corpus from a wikipedia dump",
	Long: `wikicorpus extracts article text from a wikipedia xml dump, strips
links, templates, footnotes, comments and entities, and splits what is
left into one sentence per line.

Examples:
  # Both phases in one go
  wikicorpus run enwiki-latest-pages-articles.xml.bz2 phase1.txt phase2.txt

  # Keep only sentences made of dictionary words
  wikicorpus wordlist /usr/share/dict/words words.txt
  wikicorpus validate phase2.txt words.txt phase3.txt

  # Push the corpus into elasticsearch
  wikicorpus load es phase2.txt --es.url http://localhost:9200/`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default $HOME/.wikicorpus.yaml)")
	pf.Bool("debug", false, "log rejected sentences")
	pf.BoolP("quiet", "q", false, "only log warnings and errors")
	pf.Int("article-capacity", wikicorpus.DefaultArticleCapacity,
		"Largest text region, in bytes")
	pf.Int("read-buffer", wikicorpus.DefaultReadBufferSize,
		"Dump read size, in bytes")
	pf.Int64("progress-bytes", wikicorpus.DefaultProgressBytes,
		"Log progress every this many dump bytes")
	pf.Int64("progress-lines", wikicorpus.DefaultProgressLines,
		"Log progress every this many lines")
	pf.Bool("strip-apostrophes", false, "Drop ' along with link markup")
	pf.Int("min-words", wikicorpus.DefaultMinWords,
		"Fewest word delimiters in a sentence")
	pf.Int("min-line-length", wikicorpus.DefaultMinLineLength,
		"Shortest line worth segmenting")

	for key, flag := range map[string]string{
		"config":            "config",
		"debug":             "debug",
		"quiet":             "quiet",
		"article_capacity":  "article-capacity",
		"read_buffer":       "read-buffer",
		"progress_bytes":    "progress-bytes",
		"progress_lines":    "progress-lines",
		"strip_apostrophes": "strip-apostrophes",
		"min_words":         "min-words",
		"min_line_length":   "min-line-length",
	} {
		_ = viper.BindPFlag(key, pf.Lookup(flag))
	}
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".wikicorpus")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("WIKICORPUS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

func setupLogging() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	switch {
	case viper.GetBool("debug"):
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case viper.GetBool("quiet"):
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if f := viper.ConfigFileUsed(); f != "" {
		log.Debug().Str("file", f).Msg("using config")
	}
}

// pipelineOptions gathers the phase settings from flags, env and config.
func pipelineOptions() wikicorpus.Options {
	return wikicorpus.Options{
		ArticleCapacity:  viper.GetInt("article_capacity"),
		ReadBufferSize:   viper.GetInt("read_buffer"),
		ProgressBytes:    viper.GetInt64("progress_bytes"),
		ProgressLines:    viper.GetInt64("progress_lines"),
		StripApostrophes: viper.GetBool("strip_apostrophes"),
		MinWords:         viper.GetInt("min_words"),
		MinLineLength:    viper.GetInt("min_line_length"),
		Observer:         wikicorpus.LogObserver{Logger: log.Logger},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("wikicorpus failed")
	}
}
