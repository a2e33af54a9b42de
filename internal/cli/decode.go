package cli

import (
	"github.com/ArowuTest/fakelotto-backend/internal/models"
	"github.com/ArowuTest/fakelotto-backend/internal/ticket"
	"github.com/spf13/cobra"
)

type decodeReport struct {
	Round     int     `json:"round" yaml:"round"`
	LineCount int     `json:"line_count" yaml:"line_count"`
	Lines     [][]int `json:"lines" yaml:"lines"`
}

func newDecodeReport(p models.DecodedPayload) decodeReport {
	lines := make([][]int, 0, len(p.Lines))
	for _, l := range p.Lines {
		lines = append(lines, append([]int(nil), l[:]...))
	}
	return decodeReport{Round: p.Round, LineCount: p.LineCount(), Lines: lines}
}

func decodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <payload>",
		Short: "Decode a ticket QR payload into its round and lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := ticket.Decode(args[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, newDecodeReport(payload))
		},
	}
}
