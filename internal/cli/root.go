package cli

import (
	"fmt"
	"os"

	"github.com/ArowuTest/fakelotto-backend/internal/config"
	"github.com/ArowuTest/fakelotto-backend/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

// options are the persistent flags shared by every command
type options struct {
	output     string
	configPath string
	debug      bool
}

// Execute runs ticketctl and exits non-zero on failure
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "ticketctl",
		Short:        "Decode lottery ticket payloads and fabricate winning draws",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			boot := config.ReadBootstrap()
			if !boot.SkipDotenv {
				_ = godotenv.Load()
			}
			if f := cmd.Flag("config"); f == nil || !f.Changed {
				opts.configPath = boot.ConfigPath
			}

			level := "warn"
			if opts.debug {
				level = "debug"
			}
			slog.SetDefault(logger.New(cmd.ErrOrStderr(), logger.Config{Level: level, Format: "text"}))

			switch opts.output {
			case outputJSON, outputYAML:
				return nil
			default:
				return fmt.Errorf("unsupported output %q (use %s or %s)", opts.output, outputJSON, outputYAML)
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputJSON, "Output format: json or yaml")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", ".", "Directory holding config.yaml (defaults to LOTTO_CONFIG_PATH or .)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to stderr")

	cmd.AddCommand(decodeCmd(opts))
	cmd.AddCommand(synthesizeCmd(opts))
	cmd.AddCommand(batchCmd(opts))
	cmd.AddCommand(encodeCmd(opts))
	return cmd
}
