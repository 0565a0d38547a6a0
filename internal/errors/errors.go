package errors

import (
	"fmt"
	"os"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/logger"
)

// Format renders an error for the terminal, prefixed with the program name
// in the usual CLI convention.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %v", constants.AppName, err)
}

// Formatf renders a formatted error message for the terminal.
func Formatf(format string, args ...any) string {
	return Format(fmt.Errorf(format, args...))
}

// Fatal logs the error, prints it to stderr, and exits with code 1. A nil
// error is a no-op so callers can pass the result of a command through
// unconditionally.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("command failed", "error", err)
	fmt.Fprintln(os.Stderr, Format(err))
	os.Exit(1)
}

// Fatalf is Fatal over a formatted message.
func Fatalf(format string, args ...any) {
	Fatal(fmt.Errorf(format, args...))
}
