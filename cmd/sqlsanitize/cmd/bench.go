package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/gofrs/uuid"
	"github.com/spf13/cobra"

	"github.com/tracewell/sqlsanitize"
)

var benchIterations int

var benchCmd = &cobra.Command{
	Use:   "bench [file]",
	Short: "Time repeated sanitization of a statement",
	Long: `Reads a SQL statement the same way run does, then sanitizes it
benchIterations times in a tight loop and reports elapsed time. Each run is
tagged with a random run ID so output from concurrent bench invocations
in a shared log can be told apart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sql, err := readStatement(args)
		if err != nil {
			return err
		}
		return runBench(sql)
	},
}

func init() {
	benchCmd.Flags().IntVarP(&benchIterations, "iterations", "n", 100000, "number of sanitize calls to time")
	rootCmd.AddCommand(benchCmd)
}

func runBench(sql string) error {
	runID, err := uuid.NewV4()
	if err != nil {
		return err
	}

	start := time.Now()
	for i := 0; i < benchIterations; i++ {
		sqlsanitize.SanitizeString(sql)
	}
	elapsed := time.Since(start)

	fmt.Fprintf(os.Stdout, "run %s: %d iterations in %s (%.0f ns/op)\n",
		runID, benchIterations, elapsed, float64(elapsed.Nanoseconds())/float64(benchIterations))
	return nil
}
