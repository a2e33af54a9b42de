package cli

import (
	"fmt"

	"github.com/ArowuTest/fakelotto-backend/internal/config"
	"github.com/ArowuTest/fakelotto-backend/internal/models"
	"github.com/ArowuTest/fakelotto-backend/internal/services"
	"github.com/ArowuTest/fakelotto-backend/internal/utils"
	"github.com/spf13/cobra"
)

type lineReport struct {
	Slot    string `json:"slot" yaml:"slot"`
	Numbers []int  `json:"numbers" yaml:"numbers"`
	Prize   string `json:"prize" yaml:"prize"`
}

type drawReport struct {
	Round          int          `json:"round" yaml:"round"`
	DrawDate       string       `json:"draw_date" yaml:"draw_date"`
	TotalPrize     string       `json:"total_prize" yaml:"total_prize"`
	WinningNumbers []int        `json:"winning_numbers" yaml:"winning_numbers"`
	BonusNumber    int          `json:"bonus_number" yaml:"bonus_number"`
	Lines          []lineReport `json:"lines" yaml:"lines"`
	Query          string       `json:"query" yaml:"query"`
}

func newDrawReport(b *models.DrawBundle) (drawReport, error) {
	query, err := utils.EncodeResultQuery(b.Round, b.Result)
	if err != nil {
		return drawReport{}, err
	}

	lines := make([]lineReport, 0, len(b.Result.Lines))
	for i, l := range b.Result.Lines {
		lines = append(lines, lineReport{
			Slot:    utils.LineSlot(i),
			Numbers: append([]int(nil), l.Numbers[:]...),
			Prize:   string(l.Prize),
		})
	}

	return drawReport{
		Round:          b.Round,
		DrawDate:       b.DrawDate,
		TotalPrize:     b.TotalPrizeDisplay,
		WinningNumbers: b.Result.WinningNumbers,
		BonusNumber:    b.Result.BonusNumber,
		Lines:          lines,
		Query:          query.Encode(),
	}, nil
}

func synthesizeCmd(opts *options) *cobra.Command {
	var line int
	var tier int
	var seed int64

	c := &cobra.Command{
		Use:   "synthesize <payload>",
		Short: "Fabricate a draw in which one ticket line wins the chosen prize",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Draw.Seed = seed
			}

			svc, err := services.NewTicketService(cfg)
			if err != nil {
				return err
			}

			bundle, err := svc.SynthesizeDraw(cmd.Context(), models.SynthesisRequest{
				Raw:       args[0],
				LineIndex: line,
				Tier:      models.PrizeTier(tier),
			})
			if err != nil {
				return err
			}

			report, err := newDrawReport(bundle)
			if err != nil {
				return fmt.Errorf("build result query: %w", err)
			}
			return render(cmd.OutOrStdout(), opts.output, report)
		},
	}

	c.Flags().IntVarP(&line, "line", "l", 0, "Zero-based index of the line that wins")
	c.Flags().IntVarP(&tier, "tier", "t", 0, "Prize tier to award: 1, 2 or 3 (required)")
	c.Flags().Int64Var(&seed, "seed", 0, "Seed for a reproducible draw (0 seeds from the clock)")

	_ = c.MarkFlagRequired("tier")
	return c
}
