package cmd

import (
	"github.com/spf13/cobra"

	mlog "github.com/msto63/mLog/core/log"
)

var (
	emitCategory string
	emitSeverity string
)

var emitCmd = &cobra.Command{
	Use:   "emit [nachricht]",
	Short: "Gibt eine Testnachricht über die Fassade aus",
	Long: `Gibt eine Nachricht mit der gewählten Kategorie und Schwere über
das konfigurierte Backend aus. Ohne --severity werden alle Schweregrade
einmal durchlaufen.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := configure(cmd); err != nil {
			printError("Konfiguration", err)
			return err
		}

		message := "mLog Testnachricht"
		if len(args) == 1 {
			message = args[0]
		}

		logger := mlog.New(emitCategory, nil)

		if emitSeverity == "" {
			emitAll(logger, message)
			return nil
		}

		severity, err := mlog.ParseSeverity(emitSeverity)
		if err != nil {
			printError("Schweregrad", err)
			return err
		}

		emitAt(logger, severity, message)
		return nil
	},
}

func emitAll(logger *mlog.Logger, message string) {
	for _, severity := range mlog.AllSeverities() {
		emitAt(logger, severity, message)
	}
}

func emitAt(logger *mlog.Logger, severity mlog.Severity, message string) {
	switch severity {
	case mlog.SeverityDebug:
		if logger.IsDebugEnabled() {
			logger.Debug(message)
		}
	case mlog.SeverityInfo:
		logger.Info(message)
	case mlog.SeverityWarn:
		logger.Warn(message)
	case mlog.SeverityError:
		logger.Error(message, "", 0)
	case mlog.SeverityFault:
		logger.Fault(message)
	}
}

func init() {
	emitCmd.Flags().StringVar(&emitCategory, "category", "Demo", "Logger-Kategorie")
	emitCmd.Flags().StringVar(&emitSeverity, "severity", "", "Nur diesen Schweregrad ausgeben (debug|info|warn|error|fault)")
	rootCmd.AddCommand(emitCmd)
}
