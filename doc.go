// Package envseek resolves a single named string value, such as an API token,
// from a .env file in the working directory, the process environment or the terminal.
//
// Seek with ModeAll tries those sources in that order and returns the first value found:
//
//	token, err := envseek.Seek(envseek.ModeAll, "API_TOKEN")
//
// ModeFile, ModeSystem and ModeInput consult a single source and report its error.
// Every successful resolution yields a non-empty string.
package envseek
