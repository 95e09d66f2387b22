package commands

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	fernet "github.com/cryptofernet/fernet-go"
	"github.com/cryptofernet/fernet-go/internal/crypto"
)

func keygenCmd(a *app) *cobra.Command {
	var (
		passphrase string
		salt       string
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Print a new key",
		Long: "Print a new random key, or derive one from --passphrase with scrypt.\n" +
			"Use --passphrase - to be prompted. Without --salt a random salt is\n" +
			"generated and printed to stderr; keep it to derive the same key again.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("passphrase") {
				key, err := fernet.GenerateKey(fernet.WithLogger(a.logger))
				if err != nil {
					return err
				}
				return a.emit(cmd, key, key)
			}

			if passphrase == "-" {
				p, err := readPassphrase(cmd)
				if err != nil {
					return err
				}
				passphrase = p
			}
			if passphrase == "" {
				return fmt.Errorf("passphrase must not be empty")
			}

			saltBytes, err := resolveSalt(cmd, salt)
			if err != nil {
				return err
			}

			key, err := fernet.KeyFromPassphrase(passphrase, saltBytes)
			if err != nil {
				return err
			}
			return a.emit(cmd, key, key)
		},
	}

	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "derive the key from a passphrase (- to prompt)")
	cmd.Flags().StringVar(&salt, "salt", "", "base64url salt for --passphrase, at least 16 bytes")
	return cmd
}

// resolveSalt decodes the given salt, or generates and reports a new one.
func resolveSalt(cmd *cobra.Command, salt string) ([]byte, error) {
	if salt != "" {
		b, err := crypto.DecodeBase64URL(salt)
		if err != nil {
			return nil, fmt.Errorf("invalid --salt: %w", err)
		}
		return b, nil
	}

	b := make([]byte, crypto.MinSaltSize)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "salt: %s\n", crypto.EncodeBase64URL(b))
	return b, nil
}
