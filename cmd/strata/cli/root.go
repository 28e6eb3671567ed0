// Package cli implements the strata command-line interface.
package cli

import (
	"os"

	"github.com/ib-77/strata/internal/config"
	"github.com/ib-77/strata/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configFile string
	logLevel   string
}

// NewRootCmd creates the top-level "strata" command with all subcommands
// registered. The returned func flushes the logger and restores the zap
// globals; call it once Execute returns, whether or not the command failed.
func NewRootCmd() (*cobra.Command, func()) {
	var (
		flags rootFlags
		undo  = func() {}
	)
	closeLogger := func() {
		_ = zap.L().Sync()
		undo()
		undo = func() {}
	}

	root := &cobra.Command{
		Use:   "strata",
		Short: "Queues, stacks and workers built on option and result values",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.InitConfiguration(cmd, flags.configFile); err != nil {
				return err
			}

			logger, err := newLogger(cmd, config.GetLogLevel())
			if err != nil {
				return err
			}
			undo = logging.Install(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			closeLogger()
		},
	}

	root.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "configuration file")
	root.PersistentFlags().StringVar(&flags.logLevel, config.LogLevel, "info", "log level")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newQueueCmd())
	root.AddCommand(newStackCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newServeCmd())

	return root, closeLogger
}

// newLogger logs to stderr unless the command output was redirected.
func newLogger(cmd *cobra.Command, level string) (*zap.Logger, error) {
	if w := cmd.ErrOrStderr(); w != os.Stderr {
		return logging.NewWriter(w, level), nil
	}
	return logging.New(level)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root, closeLogger := NewRootCmd()
	defer closeLogger()

	if err := root.Execute(); err != nil {
		return exitUserError
	}
	return exitSuccess
}
