package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlcrypt/ngram"
)

func newNGramsCmd(a *app) *cobra.Command {
	var (
		n      int
		output string
	)
	cmd := &cobra.Command{
		Use:   "ngrams CORPUS",
		Short: "Count the n-grams of a corpus",
		Long: `Write the n-gram table of CORPUS ("-" for stdin) in the format the other
commands load with --ngrams: one "<gram> <count>" line per n-gram, most
frequent first.

  lvlcrypt ngrams -n 3 -o english_trigrams.txt corpus.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			m, err := ngram.Build(strings.NewReader(text), n)
			if err != nil {
				return err
			}

			if err = writeTable(cmd.OutOrStdout(), output, m); err != nil {
				return err
			}
			a.log.Info("n-grams counted",
				zap.Int("n", m.N()),
				zap.Int("grams", m.Len()),
				zap.Int64("total", m.Total()),
			)
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "size", "n", 3, "n-gram width")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

// writeTable writes m to path, or to stdout when path is empty.
func writeTable(stdout io.Writer, path string, m *ngram.Model) (err error) {
	if path == "" {
		_, err = m.WriteTo(stdout)
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	if _, err = m.WriteTo(f); err != nil {
		return fmt.Errorf("write n-grams: %w", err)
	}
	return nil
}
