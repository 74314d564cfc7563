package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlcrypt/vigenere"
)

var errKeyRequired = errors.New("lvlcrypt: --encrypt needs --key")

func newVigenereCmd(a *app) *cobra.Command {
	var (
		key       string
		encrypt   bool
		keyLength int
	)
	cmd := &cobra.Command{
		Use:   "vigenere FILE",
		Short: "Encrypt, decrypt or crack a Vigenère cipher",
		Long: `With --key, encrypt (--encrypt) or decrypt FILE ("-" for stdin).
Without it, estimate the key length from the index of coincidence and search
the key one position at a time.

The period estimate may land on a multiple of the true key length; the key
found is then the true key repeated. --key-length skips the estimate.
When --max-key is given without --iterations the budget is 5 × max-key.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			if key != "" {
				k, err := vigenere.ParseKey(key)
				if err != nil {
					return err
				}
				if encrypt {
					return writeText(cmd, vigenere.Encrypt(text, k))
				}
				return writeText(cmd, vigenere.Decrypt(text, k))
			}
			if encrypt {
				return errKeyRequired
			}

			opts := a.vigenereOptions(cmd)
			opts.KeyLength = keyLength

			model, err := a.model()
			if err != nil {
				return err
			}
			opts.Seed = a.seed()
			opts.Logger = a.log

			res, err := vigenere.Solve(text, model, opts)
			if err != nil {
				return err
			}
			a.log.Info("vigenere: result",
				zap.Stringer("key", res.Key),
				zap.Int("period", res.Period.Length),
				zap.Float64("ioc", res.Period.IOC),
				zap.Float64("score", res.Score),
				zap.Int("iterations", res.Iterations),
			)
			return writeText(cmd, res.Text)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&key, "key", "k", "", "known key; skips the search")
	f.BoolVarP(&encrypt, "encrypt", "e", false, "encrypt with --key instead of decrypting")
	f.IntVar(&keyLength, "key-length", 0, "search keys of exactly this length")
	f.Int("max-key", vigenere.DefaultMaxKeyLength, "exclusive upper bound of the period scan")
	f.Int("iterations", 0, "outer iteration budget (default 5 × max-key)")
	f.Int("stall", vigenere.DefaultStallLimit, "stop after this many non-improving iterations")
	return cmd
}

// vigenereOptions merges the config file with explicit flags.
func (a *app) vigenereOptions(cmd *cobra.Command) vigenere.Options {
	var (
		f    = cmd.Flags()
		opts = vigenere.DefaultOptions()
	)
	opts.MaxKeyLength = a.cfg.Vigenere.MaxKey
	opts.Iterations = a.cfg.Vigenere.Iterations
	opts.StallLimit = a.cfg.Vigenere.Stall

	if f.Changed("max-key") {
		opts.MaxKeyLength, _ = f.GetInt("max-key")
		opts.Iterations = vigenere.IterationsFor(opts.MaxKeyLength)
	}
	if f.Changed("iterations") {
		opts.Iterations, _ = f.GetInt("iterations")
	}
	if f.Changed("stall") {
		opts.StallLimit, _ = f.GetInt("stall")
	}
	return opts
}
