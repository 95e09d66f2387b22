package commands

import (
	"bytes"

	"github.com/spf13/cobra"

	fernet "github.com/cryptofernet/fernet-go"
	"github.com/cryptofernet/fernet-go/internal/render"
)

func decryptCmd(a *app) *cobra.Command {
	var (
		inFile string
		raw    bool
	)

	cmd := &cobra.Command{
		Use:   "decrypt [token]",
		Short: "Verify a Fernet token and print its plaintext",
		Long: "Verify a Fernet token and print its plaintext. Plaintext that is JSON is\n" +
			"indented, and highlighted when --color allows it, unless --raw is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.requireKey()
			if err != nil {
				return err
			}
			token, err := readInput(cmd, args, inFile)
			if err != nil {
				return err
			}

			plaintext, err := fernet.Decrypt(trimToken(token), key, fernet.WithLogger(a.logger))
			if err != nil {
				return err
			}

			display := plaintext
			if !raw {
				display = a.format(cmd, plaintext)
			}
			return a.emit(cmd, display, plaintext)
		},
	}

	cmd.Flags().StringVarP(&inFile, "in", "i", "", "read the token from file (- for stdin)")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the plaintext exactly as decrypted")
	return cmd
}

// format indents JSON plaintext and highlights it if colour is enabled.
// Non-JSON plaintext is returned unchanged.
func (a *app) format(cmd *cobra.Command, plaintext string) string {
	pretty, ok := render.PrettyJSON(plaintext)
	if !ok {
		return plaintext
	}
	if !a.useColor(cmd) {
		return pretty
	}

	var buf bytes.Buffer
	if err := render.Highlight(&buf, pretty); err != nil {
		a.logger.Debug("highlight failed", "error", err)
		return pretty
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

func (a *app) useColor(cmd *cobra.Command) bool {
	switch a.color {
	case "always":
		return true
	case "never":
		return false
	}
	return isTerminal(cmd.OutOrStdout())
}
