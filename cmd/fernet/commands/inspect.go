package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	fernet "github.com/cryptofernet/fernet-go"
)

func inspectCmd(a *app) *cobra.Command {
	var inFile string

	cmd := &cobra.Command{
		Use:   "inspect [token]",
		Short: "Verify a Fernet token and print its version and creation time",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.requireKey()
			if err != nil {
				return err
			}
			token, err := readInput(cmd, args, inFile)
			if err != nil {
				return err
			}

			ts, err := fernet.ExtractTimestamp(trimToken(token), key, fernet.WithLogger(a.logger))
			if err != nil {
				return err
			}

			out := fmt.Sprintf("version:   %#x\ncreated:   %s", fernet.Version, ts.Format(time.RFC3339))
			return a.emit(cmd, out, ts.Format(time.RFC3339))
		},
	}

	cmd.Flags().StringVarP(&inFile, "in", "i", "", "read the token from file (- for stdin)")
	return cmd
}

// trimToken removes whitespace that copy and paste tends to add.
func trimToken(s string) string {
	return strings.TrimSpace(s)
}
