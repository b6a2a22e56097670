// Package util provides common utilities including logging helpers and
// clock-string parsing.
package util

import "log"

// Warnf logs a formatted warning. Used for recoverable misuse such as
// starting an already-running countdown.
func Warnf(format string, args ...any) {
	log.Printf("warning: "+format, args...)
}

// Errorf logs a formatted error message.
func Errorf(format string, args ...any) {
	log.Printf("error: "+format, args...)
}
