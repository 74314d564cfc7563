// Command lvlcrypt cracks Caesar, monoalphabetic substitution and Vigenère
// ciphertexts with an n-gram model of English.
//
// Usage:
//
//	lvlcrypt ngrams corpus.txt > english_trigrams.txt
//	lvlcrypt caesar secret.txt
//	lvlcrypt substitution --epochs 20000 secret.txt
//	lvlcrypt vigenere --max-key 12 secret.txt
//	lvlcrypt vigenere --encrypt --key LEMON plain.txt
//
// Recovered plaintext goes to stdout. Keys, scores and search progress are
// logged to stderr; -v adds one line per improvement.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvlcrypt/ngram"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries state shared by every subcommand. It is filled in by the root
// command's PersistentPreRunE.
type app struct {
	cfg    config
	log    *zap.Logger
	errOut io.Writer

	configPath string
	verbose    bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{errOut: errOut}

	root := &cobra.Command{
		Use:   "lvlcrypt",
		Short: "Statistical cryptanalysis of classical ciphers",
		Long: `lvlcrypt recovers plaintext from Caesar, substitution and Vigenère
ciphertexts without the key. Candidates are ranked by an n-gram model built
from an English corpus (see "lvlcrypt ngrams").

CONFIG FILE:
  Every search parameter may also be set in a YAML file passed with --config.
  Flags given on the command line take precedence over the file.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.String("ngrams", defaultNGramFile, "n-gram table (\"<gram> <count>\" per line)")
	pf.String("floor", "total", "log-probability floor for unseen n-grams (total, width)")
	pf.Int64("seed", 0, "random seed for the stochastic searches (0: time based)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log every improvement of the best candidate")

	root.AddCommand(
		newCaesarCmd(a),
		newSubstitutionCmd(a),
		newVigenereCmd(a),
		newNGramsCmd(a),
	)
	return root
}

// setup loads the config file, lets explicit persistent flags override it and
// builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("ngrams") {
		cfg.NGrams, _ = flags.GetString("ngrams")
	}
	if flags.Changed("floor") {
		cfg.Floor, _ = flags.GetString("floor")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if _, err = ngram.ParseFloorPolicy(cfg.Floor); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = newLogger(a.errOut, a.verbose)
	return nil
}

// newLogger writes console-encoded entries to w. Info and above by default,
// Debug as well when verbose.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core)
}

// model loads the configured n-gram table.
func (a *app) model() (*ngram.Model, error) {
	policy, err := ngram.ParseFloorPolicy(a.cfg.Floor)
	if err != nil {
		return nil, err
	}
	m, err := ngram.LoadFile(a.cfg.NGrams, ngram.WithFloorPolicy(policy))
	if err != nil {
		return nil, fmt.Errorf("load n-grams: %w", err)
	}
	a.log.Info("n-gram model loaded",
		zap.String("path", a.cfg.NGrams),
		zap.Int("n", m.N()),
		zap.Int("grams", m.Len()),
		zap.Stringer("floor", m.FloorPolicy()),
	)
	return m, nil
}

// seed returns the configured seed, or a time-based one when unset. The value
// is logged so a run can be reproduced.
func (a *app) seed() int64 {
	s := a.cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	a.log.Info("search seed", zap.Int64("seed", s))
	return s
}

// readInput returns the contents of path, or of stdin when path is "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// writeText prints s on the command's stdout, newline-terminated.
func writeText(cmd *cobra.Command, s string) error {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		s += "\n"
	}
	_, err := io.WriteString(cmd.OutOrStdout(), s)
	return err
}
