package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ArowuTest/fakelotto-backend/internal/ticket"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

type batchEntry struct {
	Line      int    `json:"line" yaml:"line"`
	Round     int    `json:"round" yaml:"round"`
	LineCount int    `json:"line_count" yaml:"line_count"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

type batchReport struct {
	Payloads   int          `json:"payloads" yaml:"payloads"`
	Decoded    int          `json:"decoded" yaml:"decoded"`
	Failed     int          `json:"failed" yaml:"failed"`
	TotalLines int          `json:"total_lines" yaml:"total_lines"`
	Entries    []batchEntry `json:"entries" yaml:"entries"`
}

func batchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file>",
		Short: "Decode one payload per line of a file and report line counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open payload file: %w", err)
			}
			defer file.Close()

			report, err := decodeBatch(file)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, report)
		},
	}
}

// decodeBatch decodes every non-blank line of r. Lines starting with '#' are
// comments. Failures are recorded per entry and never abort the batch.
func decodeBatch(r io.Reader) (batchReport, error) {
	report := batchReport{Entries: []batchEntry{}}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}

		report.Payloads++
		payload, err := ticket.Decode(raw)
		if err != nil {
			slog.Warn("Skipping undecodable payload", "line", lineNo, "error", err)
			report.Failed++
			report.Entries = append(report.Entries, batchEntry{Line: lineNo, Error: err.Error()})
			continue
		}

		report.Decoded++
		report.TotalLines += payload.LineCount()
		report.Entries = append(report.Entries, batchEntry{
			Line:      lineNo,
			Round:     payload.Round,
			LineCount: payload.LineCount(),
		})
	}
	if err := scanner.Err(); err != nil {
		return batchReport{}, fmt.Errorf("failed to read payload file: %w", err)
	}
	return report, nil
}
