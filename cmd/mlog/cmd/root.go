package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/mLog/core/config"
	mlog "github.com/msto63/mLog/core/log"
)

var (
	cfgFile    string
	useJournal bool
	timestamps bool
	absolute   bool
	stacks     bool
	subsystem  string
)

var rootCmd = &cobra.Command{
	Use:   "mlog",
	Short: "mLog - Kategorie-Logging mit Konsole und Journal",
	Long: `mLog ist die Logging-Bibliothek mit Kategorie-Loggern und zwei
Backends: Konsole (mit optionalen Zeitstempeln, Ortsangaben und
Stack-Traces) und systemd-Journal.

Dieses Werkzeug demonstriert die Fassade und prüft Konfigurationen.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (TOML oder YAML)")
	rootCmd.PersistentFlags().BoolVar(&useJournal, "journal", false, "Journal-Backend statt Konsole")
	rootCmd.PersistentFlags().BoolVar(&timestamps, "timestamps", false, "Zeitstempel ausgeben")
	rootCmd.PersistentFlags().BoolVar(&absolute, "absolute", false, "Absolute statt relative Zeitstempel")
	rootCmd.PersistentFlags().BoolVar(&stacks, "stacks", false, "Stack-Traces für Error/Fault")
	rootCmd.PersistentFlags().StringVar(&subsystem, "subsystem", "", "Journal-Subsystem-Kennung")
}

// loadOptions derives the effective options from config file, environment,
// and flags, in that order of increasing precedence.
func loadOptions(cmd *cobra.Command) (config.Options, error) {
	var opts config.Options
	var err error

	if cfgFile != "" {
		opts, err = config.Load(cfgFile)
	} else {
		opts, err = config.FromEnv()
	}
	if err != nil {
		return opts, err
	}

	if cmd.Flags().Changed("journal") {
		opts.Console = !useJournal
	}
	if cmd.Flags().Changed("timestamps") {
		opts.Timestamps = timestamps
	}
	if cmd.Flags().Changed("absolute") {
		opts.AbsoluteTimestamps = absolute
	}
	if cmd.Flags().Changed("stacks") {
		opts.StackTraces = stacks
	}
	if cmd.Flags().Changed("subsystem") {
		opts.Subsystem = subsystem
	}

	return opts, nil
}

// configure applies the effective options to the default settings.
func configure(cmd *cobra.Command) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	if !opts.Console && opts.Subsystem == "" {
		return fmt.Errorf("Journal-Backend ohne --subsystem")
	}

	opts.Apply(mlog.Default())
	return nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}
