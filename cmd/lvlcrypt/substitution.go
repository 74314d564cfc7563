package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlcrypt/substitution"
)

func newSubstitutionCmd(a *app) *cobra.Command {
	var (
		key  string
		best bool
	)
	cmd := &cobra.Command{
		Use:   "substitution FILE",
		Short: "Decrypt or crack a monoalphabetic substitution cipher",
		Long: `Decrypt FILE ("-" for stdin) with a known decode alphabet (--key, the
plaintext letter for each of A..Z), or hill-climb over letter permutations.

The climb is stochastic: run it several times, or with more --epochs, when the
result is not readable yet. --best reports the best state visited instead of
the state left when the budget runs out.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			if key != "" {
				k, err := substitution.ParseKey(key)
				if err != nil {
					return err
				}
				return writeText(cmd, substitution.Decrypt(text, k))
			}

			opts := substitution.DefaultOptions()
			opts.Epochs = a.cfg.Substitution.Epochs
			if cmd.Flags().Changed("epochs") {
				opts.Epochs, _ = cmd.Flags().GetInt("epochs")
			}
			if opts.Selection, err = parseSelection(a.cfg.Substitution.Select); err != nil {
				return err
			}
			if best {
				opts.Selection = substitution.SelectBest
			}

			model, err := a.model()
			if err != nil {
				return err
			}
			opts.Seed = a.seed()
			opts.Logger = a.log

			res, err := substitution.Solve(text, model, opts)
			if err != nil {
				return err
			}
			a.log.Info("substitution: result",
				zap.Stringer("key", res.Key),
				zap.Stringer("cipher", res.Cipher),
				zap.Float64("score", res.Score),
				zap.Float64("best_score", res.BestScore),
				zap.Int("accepted", res.Accepted),
			)
			return writeText(cmd, res.Text)
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "known decode alphabet; skips the search")
	cmd.Flags().Int("epochs", substitution.DefaultEpochs, "number of swap proposals")
	cmd.Flags().BoolVar(&best, "best", false, "report the best state visited")
	return cmd
}
