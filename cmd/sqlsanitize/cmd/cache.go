package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tracewell/sqlsanitize"
)

var cacheCmd = &cobra.Command{
	Use:   "cache [capacity]",
	Short: "Get or set the process-wide sanitize result cache capacity",
	Long: `With no argument, prints the current cache capacity and entry count.
With an argument, sets the capacity (0 disables the cache, the default).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("capacity must be an integer: %w", err)
			}
			sqlsanitize.SetCacheCapacity(n)
		}
		fmt.Printf("capacity=%d entries=%d\n", sqlsanitize.CacheCapacity(), sqlsanitize.CacheLen())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
}
