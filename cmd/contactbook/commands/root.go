package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"contactbook/internal/app"
	"contactbook/internal/session"
)

var (
	configPath string
	verbose    bool
	logFile    string
	blankLine  string
	noColor    bool

	appCtx *app.App
	logger *zap.Logger
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "contactbook",
		Short: "Line-oriented contact manager",
		Long: `contactbook keeps names, phone numbers and birthdays in memory for one session.

Run without arguments to start an interactive session; type 'help' there
for the list of commands and 'exit' to leave.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("blank-line") {
				policy, err := session.ParseBlankLinePolicy(blankLine)
				if err != nil {
					return err
				}
				cfg.BlankLine = policy
			}
			if logFile != "" {
				cfg.Logging.File = logFile
			}
			if noColor {
				cfg.Color = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err = app.NewLogger(cfg.Logging, verbose)
			if err != nil {
				return err
			}
			appCtx = app.New(cfg, logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.RunSession(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), true); err != nil {
				return fmt.Errorf("session: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	root.PersistentFlags().StringVar(&blankLine, "blank-line", string(session.BlankLineIgnore), "what an empty line does: ignore or exit")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	root.AddCommand(runCmd(), execCmd())
	return root
}
