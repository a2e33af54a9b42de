package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ArowuTest/fakelotto-backend/internal/models"
	"github.com/ArowuTest/fakelotto-backend/internal/ticket"
	"github.com/spf13/cobra"
)

const maxEncodedLines = 5

type encodeReport struct {
	Raw string `json:"raw" yaml:"raw"`
}

func encodeCmd(opts *options) *cobra.Command {
	var round int
	var base string
	var lines []string

	c := &cobra.Command{
		Use:   "encode",
		Short: "Build a ticket QR payload from a round and its lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if round < 0 || round > 9999 {
				return fmt.Errorf("round %d does not fit in four digits", round)
			}
			if len(lines) > maxEncodedLines {
				return fmt.Errorf("a ticket holds at most %d lines, got %d", maxEncodedLines, len(lines))
			}

			payload := models.DecodedPayload{Round: round, Lines: make([]models.TicketLine, 0, len(lines))}
			for i, spec := range lines {
				line, err := parseLine(spec)
				if err != nil {
					return fmt.Errorf("line %d: %w", i+1, err)
				}
				payload.Lines = append(payload.Lines, line)
			}

			return render(cmd.OutOrStdout(), opts.output, encodeReport{Raw: ticket.Encode(base, payload)})
		},
	}

	c.Flags().IntVarP(&round, "round", "r", 0, "Draw round number (required)")
	c.Flags().StringArrayVarP(&lines, "line", "l", nil, "Six comma-separated numbers; repeat for each line")
	c.Flags().StringVar(&base, "base", "", "URL prefix written before the payload marker")

	_ = c.MarkFlagRequired("round")
	return c
}

// parseLine reads "3,11,22,33,41,45" into a TicketLine.
func parseLine(s string) (models.TicketLine, error) {
	var line models.TicketLine
	parts := strings.Split(s, ",")
	if len(parts) != len(line) {
		return line, fmt.Errorf("expected %d numbers, got %d", len(line), len(parts))
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return line, fmt.Errorf("invalid number %q", p)
		}
		if n < 0 || n > 99 {
			return line, fmt.Errorf("number %d does not fit in two digits", n)
		}
		line[i] = n
	}
	return line, nil
}
