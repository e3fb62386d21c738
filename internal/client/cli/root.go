package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sachink160/multitool-client/internal/client/config"
	"github.com/sachink160/multitool-client/internal/logging"
)

// NewRootCommand builds the multitool command. Without arguments it starts
// the REPL; otherwise the first argument names a command from the table.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multitool [command] [args...]",
		Short: "Command-line client for the multitool AI platform",
		Long: "multitool talks to the multitool backend: document and HR Q&A, chat,\n" +
			"video-to-audio, dynamic prompts, resume matching, image generation\n" +
			"and subscriptions. Run without arguments for an interactive shell,\n" +
			"or pass a command and its arguments to run it once.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx := cmd.Context()
			app, err := NewApp(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer func() {
				if err := app.Close(); err != nil {
					logger.Error(ctx, "failed to close app", "error", err)
				}
			}()

			return app.Run(ctx, args)
		},
	}
	config.BindFlags(cmd.PersistentFlags())
	return cmd
}

// Execute runs the root command with os.Args and returns the process exit
// code. Errors are printed to errOut.
func Execute(ctx context.Context, errOut io.Writer) int {
	return execute(ctx, NewRootCommand(), os.Args[1:], errOut)
}

func execute(ctx context.Context, cmd *cobra.Command, args []string, errOut io.Writer) int {
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		printError(errOut, err)
		return 1
	}
	return 0
}
