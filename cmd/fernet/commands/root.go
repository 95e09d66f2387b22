package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const (
	keyEnv         = "FERNET_KEY"
	defaultEnvFile = ".env"

	// keyTextLength is the length of a padded base64url 32-byte key.
	keyTextLength = 44
)

// app carries flag values and collaborators shared by all subcommands.
type app struct {
	key     string
	envFile string
	copy    bool
	color   string
	verbose bool

	logger    *slog.Logger
	clipboard func(string) error
}

// Execute runs the CLI against os.Args.
func Execute() error {
	return newRootCommand(clipboard.WriteAll).Execute()
}

func newRootCommand(copyFn func(string) error) *cobra.Command {
	a := &app{clipboard: copyFn}

	root := &cobra.Command{
		Use:           "fernet",
		Short:         "Encrypt and decrypt Fernet tokens",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.key, "key", "k", "", "base64url key, 32 bytes (default $"+keyEnv+")")
	flags.StringVar(&a.envFile, "env-file", defaultEnvFile, "env file to load before reading "+keyEnv)
	flags.BoolVar(&a.copy, "copy", false, "also copy the result to the clipboard")
	flags.StringVar(&a.color, "color", "auto", "highlight JSON output: auto, always or never")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(encryptCmd(a), decryptCmd(a), inspectCmd(a), keygenCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	switch a.color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid --color %q (want auto, always or never)", a.color)
	}

	if err := godotenv.Load(a.envFile); err != nil {
		// A missing default file is normal; a missing explicit one is not.
		if !errors.Is(err, fs.ErrNotExist) || cmd.Flags().Changed("env-file") {
			return fmt.Errorf("load env file: %w", err)
		}
	} else {
		a.logger.Debug("loaded env file", "path", a.envFile)
	}

	if a.key == "" {
		a.key = os.Getenv(keyEnv)
	}
	return nil
}

// requireKey returns the configured key. A key that is not 44 characters is
// only warned about; the library checks the decoded length itself.
func (a *app) requireKey() (string, error) {
	key := strings.TrimSpace(a.key)
	if key == "" {
		return "", fmt.Errorf("key required (--key or %s)", keyEnv)
	}
	if len(key) != keyTextLength {
		a.logger.Warn("key should be 32 bytes as padded base64url", "length", len(key), "want", keyTextLength)
	}
	return key, nil
}

// emit prints the result and copies it to the clipboard when asked.
// Clipboard failures are logged, not returned.
func (a *app) emit(cmd *cobra.Command, display, copyText string) error {
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), display); err != nil {
		return err
	}
	if a.copy {
		if err := a.clipboard(copyText); err != nil {
			a.logger.Warn("copy to clipboard failed", "error", err)
		} else {
			a.logger.Debug("copied result to clipboard")
		}
	}
	return nil
}
