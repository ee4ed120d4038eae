package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// run <file>: feed each line of file through one session, without a prompt.
func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Run a file of commands through one session ('-' for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			if err := appCtx.RunSession(cmd.Context(), in, cmd.OutOrStdout(), false); err != nil {
				return fmt.Errorf("running %q: %w", args[0], err)
			}
			return nil
		},
	}
}
