package commands

import (
	"github.com/spf13/cobra"

	fernet "github.com/cryptofernet/fernet-go"
)

func encryptCmd(a *app) *cobra.Command {
	var inFile string

	cmd := &cobra.Command{
		Use:   "encrypt [text...]",
		Short: "Encrypt text into a Fernet token",
		Long: "Encrypt text into a Fernet token. The text is taken from the arguments,\n" +
			"--in, or stdin; one trailing newline is dropped from file and stdin input.",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.requireKey()
			if err != nil {
				return err
			}
			plaintext, err := readInput(cmd, args, inFile)
			if err != nil {
				return err
			}

			token, err := fernet.Encrypt(plaintext, key, fernet.WithLogger(a.logger))
			if err != nil {
				return err
			}
			return a.emit(cmd, token, token)
		},
	}

	cmd.Flags().StringVarP(&inFile, "in", "i", "", "read plaintext from file (- for stdin)")
	return cmd
}
