package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlcrypt/caesar"
	"github.com/katalvlaran/lvlcrypt/score"
)

func newCaesarCmd(a *app) *cobra.Command {
	var (
		shift int
		chi   bool
	)
	cmd := &cobra.Command{
		Use:   "caesar FILE",
		Short: "Decrypt or crack a Caesar shift cipher",
		Long: `Decrypt FILE ("-" for stdin) with a known --shift, or try all 26 shifts
and print the most English-like result. Candidates are ranked by the n-gram
model unless --chi selects the letter-frequency chi-squared scorer.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("shift") {
				return writeText(cmd, caesar.Decrypt(text, shift))
			}

			var scorer score.Scorer = score.English()
			if !chi {
				if scorer, err = a.model(); err != nil {
					return err
				}
			}
			res, err := caesar.Solve(text, scorer, caesar.Options{Logger: a.log})
			if err != nil {
				return err
			}
			a.log.Info("caesar: best shift",
				zap.Int("shift", res.Shift),
				zap.Float64("score", res.Score),
			)
			return writeText(cmd, res.Text)
		},
	}
	cmd.Flags().IntVarP(&shift, "shift", "s", 0, "known encryption shift; skips the search")
	cmd.Flags().BoolVar(&chi, "chi", false, "rank candidates by chi-squared letter frequency")
	return cmd
}
