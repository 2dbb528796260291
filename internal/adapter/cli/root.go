package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stockroom/internal/config"
	"stockroom/internal/logging"
)

// RootOptions holds the global flags and the objects built from them,
// shared by every subcommand.
type RootOptions struct {
	ConfigPath string
	Snapshot   string
	Journal    string
	Verbose    bool

	Config config.Config
	Logger *zap.Logger
}

// NewRootCommand creates the stockroom root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "stockroom",
		Short: "Inventory bookkeeping over a plain-text snapshot",
		Long: "Stockroom keeps an item -> quantity inventory in a line-oriented\n" +
			"snapshot file and records every operation in an append-only journal.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("snapshot") {
				cfg.SnapshotPath = opts.Snapshot
			}
			if cmd.Flags().Changed("journal") {
				cfg.JournalPath = opts.Journal
			}
			if opts.Verbose {
				cfg.Log.Level = "debug"
			}
			// Flag overrides land after Load has validated; check again.
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := logging.New(logging.Config{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
			})
			if err != nil {
				return err
			}

			opts.Config = cfg
			opts.Logger = logger.With(zap.String("run_id", uuid.NewString()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.Logger != nil {
				logging.Sync(opts.Logger)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", config.DefaultPath, "path to the settings file")
	cmd.PersistentFlags().StringVar(&opts.Snapshot, "snapshot", "", "override the snapshot file path")
	cmd.PersistentFlags().StringVar(&opts.Journal, "journal", "", "override the journal file path")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewQueryCommand(opts))
	cmd.AddCommand(NewLowCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))

	return cmd
}
