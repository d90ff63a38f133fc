package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/tracewell/sqlsanitize"
	"github.com/tracewell/sqlsanitize/sqlparser"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Sanitize and summarize a single SQL statement",
	Long: `Reads a SQL statement from the given file, from stdin (if no file is
given and stdin is not a terminal), or fails with an error otherwise, and
prints its sanitized form and summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sql, err := readStatement(args)
		if err != nil {
			return err
		}
		return runOne(sql)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func readStatement(args []string) (string, error) {
	if len(args) == 1 {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	stat, _ := os.Stdin.Stat()
	if stat.Mode()&os.ModeCharDevice != 0 {
		return "", errors.New("need a file argument or piped stdin")
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func runOne(sql string) error {
	if trace {
		dumpTrace(sql)
	}

	info := sqlsanitize.SanitizeString(sql)

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Println("sanitized:", info.SanitizedSQL)
	fmt.Println("summary:  ", info.Summary)
	return nil
}

// dumpTrace prints every token the scanner consumes for sql, in the order
// it consumed them. It runs the scanner a second time against its own
// throwaway buffers - tracing is a debug path, not the hot path the package
// doc promises zero extra allocations on.
func dumpTrace(sql string) {
	san := make([]byte, 0, len(sql))
	sum := make([]byte, 0, len(sql))
	s := sqlparser.NewScanner(sql, san, sum)
	s.OnToken = func(tt sqlparser.TokenType, text string) {
		repr.Println(struct {
			Kind string
			Text string
		}{tt.String(), text})
	}
	s.OnKeywordMatch = func(kw *sqlparser.Keyword) {
		repr.Println(struct {
			Keyword  string
			Category string
		}{kw.Text, kw.Category.String()})
	}
	s.Run()
}
