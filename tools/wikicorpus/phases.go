package main

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dustin/go-wikicorpus"
)

var extractCmd = &cobra.Command{
	Use:   "extract <dump.xml[.bz2]> <phase1.txt>",
	Short: "Write the cleaned text of every article, one paragraph per line",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(args[0], args[1])
	},
}

var sentencesCmd = &cobra.Command{
	Use:   "sentences <phase1.txt> <phase2.txt>",
	Short: "Split cleaned paragraphs into one sentence per line",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSentences(args[0], args[1])
	},
}

var runCmd = &cobra.Command{
	Use:   "run <dump.xml[.bz2]> <phase1.txt> <phase2.txt>",
	Short: "Extract, then segment",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runExtract(args[0], args[1]); err != nil {
			return err
		}
		return runSentences(args[1], args[2])
	},
}

var wordlistCmd = &cobra.Command{
	Use:   "wordlist <system-words> <wordlist.txt>",
	Short: "Copy a system word list, dropping words with apostrophes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kept, dropped, err := wikicorpus.WordListFile(args[0], args[1])
		if err != nil {
			return err
		}
		log.Info().
			Str("out", args[1]).
			Str("kept", humanize.Comma(int64(kept))).
			Str("dropped", humanize.Comma(int64(dropped))).
			Msg("word list done")
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <phase2.txt> <wordlist.txt> <phase3.txt>",
	Short: "Keep only sentences whose words are all in the word list",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		stats, err := wikicorpus.ValidateFile(args[0], args[1], args[2], pipelineOptions())
		if err != nil {
			return err
		}
		log.Info().
			Str("out", args[2]).
			Str("sentences", humanize.Comma(stats.Sentences)).
			Str("kept", humanize.Comma(stats.Kept)).
			Dur("took", time.Since(start)).
			Msg("validation done")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd, sentencesCmd, runCmd, wordlistCmd, validateCmd)
}

func runExtract(in, out string) error {
	start := time.Now()
	stats, err := wikicorpus.ExtractFile(in, out, pipelineOptions())
	if err != nil {
		return err
	}
	d := time.Since(start)
	log.Info().
		Str("out", out).
		Str("read", humanize.IBytes(uint64(stats.Bytes))).
		Str("articles", humanize.Comma(stats.Articles)).
		Int64("redirects", stats.Redirects).
		Int64("empty", stats.Empty).
		Dur("took", d).
		Str("rate", humanize.IBytes(uint64(float64(stats.Bytes)/d.Seconds()))+"/s").
		Msg("extraction done")
	return nil
}

func runSentences(in, out string) error {
	start := time.Now()
	stats, err := wikicorpus.SegmentFile(in, out, pipelineOptions())
	if err != nil {
		return err
	}
	log.Info().
		Str("out", out).
		Str("lines", humanize.Comma(stats.Lines)).
		Str("sentences", humanize.Comma(stats.Sentences)).
		Str("rejected", humanize.Comma(stats.Rejected)).
		Dur("took", time.Since(start)).
		Msg("segmentation done")
	return nil
}
