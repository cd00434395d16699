//go:build windows

// Package stderr is a pass-through on Windows, where the audio backend
// does not write to fd 2.
package stderr

import (
	"io"
	"os"

	"go.uber.org/zap"
)

func Start(*zap.Logger) error { return nil }

func Stop() {}

// WriteOriginal writes msg to the process stderr.
func WriteOriginal(msg string) {
	_, _ = io.WriteString(os.Stderr, msg)
}
