package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"focusboard/internal/config"
	"focusboard/internal/logging"
	"focusboard/internal/ui"
)

const Version = "0.1.0"

var (
	dbFlag  string
	verbose bool

	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "focus",
	Short:         "FocusBoard: routine, quizzes, inspiration and notes with XP",
	Long:          "FocusBoard is a local-first personal productivity board with gamified progression.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.LogLevel
		if level == "" {
			// quiet unless asked for
			level = "warn"
		}
		if verbose {
			level = "debug"
		}
		l, err := logging.New(level, true)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "Path to the SQLite database (default $FOCUSBOARD_DB or ~/.focusboard.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newStatusCmd(),
		newPseudoCmd(),
		newRoutineCmd(),
		newQuizCmd(),
		newInspirationCmd(),
		newJournalCmd(),
		newNoteCmd(),
		newBadgesCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
