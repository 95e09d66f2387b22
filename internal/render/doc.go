// Package render formats decrypted plaintext for display.
//
// Plaintext that parses as JSON is re-indented and, on terminals, syntax
// highlighted. Anything else is shown as-is; callers must not assume the
// plaintext is JSON.
package render
