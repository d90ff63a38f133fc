package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tracewell/sqlsanitize/internal/identfmt"
)

var queryCmd = &cobra.Command{
	Use:   "query database sql",
	Short: "Run a statement against a configured database through a tracing wrapper",
	Long: `Opens the named database entry from the config file (see --config),
wraps it with sqltrace.Wrap so the statement is logged sanitized (at debug
level, which is shown only with --trace), runs the given statement through
it, and prints the result's column names.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbName, stmt := args[0], args[1]

		cfg, err := LoadConfig(configFile)
		if err != nil {
			return err
		}
		dbcfg, err := cfg.database(dbName)
		if err != nil {
			return err
		}

		ctx := context.Background()
		log.SetLevel(logLevel())

		db, err := dbcfg.Open(ctx, log)
		if err != nil {
			return fmt.Errorf("opening %s: %w", dbName, err)
		}

		rows, err := db.QueryContext(ctx, stmt)
		if err != nil {
			return err
		}
		defer rows.Close()

		cols, err := rows.Columns()
		if err != nil {
			return err
		}
		for _, c := range cols {
			fmt.Print(identfmt.Quote(c), " ")
		}
		fmt.Println()
		return rows.Err()
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
