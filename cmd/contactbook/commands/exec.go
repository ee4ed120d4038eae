package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// exec <command> [args...]: dispatch one command against an empty book.
func execCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command> [args...]",
		Short: "Run a single command and print its reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply := appCtx.Exec(args[0], args[1:])
			if reply != "" {
				fmt.Fprintln(cmd.OutOrStdout(), reply)
			}
			return nil
		},
	}
}
