// Package commands defines the fernet CLI.
//
// Commands
//
//   - encrypt   Seal plaintext into a token
//   - decrypt   Verify a token and print its plaintext
//   - inspect   Verify a token and print its version and creation time
//   - keygen    Print a new random or passphrase-derived key
//
// # Configuration
//
// The key comes from --key or the FERNET_KEY environment variable. Before
// any command runs, the root command loads the env file named by --env-file
// (default .env) if it exists; variables already set in the environment win.
package commands
