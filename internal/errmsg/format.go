// Package errmsg turns errors into the one-line messages shown to the user.
package errmsg

import "fmt"

// Op names what the player was doing when something failed.
type Op string

const (
	OpLoadConfig   Op = "load configuration"
	OpOpenLog      Op = "open log file"
	OpInitAudio    Op = "initialize audio output"
	OpOpenTerminal Op = "prepare terminal"
	OpOpenState    Op = "open settings store"

	OpResolvePath   Op = "resolve path"
	OpScanDirectory Op = "scan directory"

	OpOpenTrack Op = "open track"
	OpSeek      Op = "seek"
	OpPlayback  Op = "play"
)

// Format returns "Failed to <op>: <err>", or "" for a nil error.
func Format(op Op, err error) string {
	return FormatWith(op, "", err)
}

// FormatWith is Format with the subject of the operation quoted after it,
// usually a file name.
func FormatWith(op Op, subject string, err error) string {
	switch {
	case err == nil:
		return ""
	case subject == "":
		return fmt.Sprintf("Failed to %s: %v", op, err)
	default:
		return fmt.Sprintf("Failed to %s '%s': %v", op, subject, err)
	}
}
