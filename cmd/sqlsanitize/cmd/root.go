package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tracewell/sqlsanitize"
)

var (
	rootCmd = &cobra.Command{
		Use:          "sqlsanitize",
		Short:        "sqlsanitize",
		SilenceUsage: true,
		Long:         `CLI for exercising the sqlsanitize statement sanitizer/summarizer from the command line.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configFile)
			if err != nil {
				return err
			}
			if cfg.CacheCapacity != 0 {
				sqlsanitize.SetCacheCapacity(cfg.CacheCapacity)
			}
			if cfg.LogLevel != "" {
				lvl, err := logrus.ParseLevel(cfg.LogLevel)
				if err != nil {
					return fmt.Errorf("log_level in %s: %w", configFile, err)
				}
				log.SetLevel(lvl)
			}
			return nil
		},
	}

	configFile string
	jsonOutput bool
	trace      bool

	log = logrus.New()
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "sqlsanitize.yaml", "path to config file (databases, cache_capacity, log_level); optional")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit machine-readable JSON instead of plain text")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "dump every token the scanner consumes")
	return rootCmd.Execute()
}

// logLevel returns the level sqltrace's per-statement logging should run
// at: Debug (visible) when --trace is set, Info (the statement log line is
// suppressed) otherwise.
func logLevel() logrus.Level {
	if trace {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}
