//go:build windows

package stderr

import (
	"os"

	"go.uber.org/zap"
)

// Start is a no-op on Windows; its audio backends do not write to fd 2.
func Start(*zap.Logger) error {
	return nil
}

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop is a no-op on Windows.
func Stop() {}
