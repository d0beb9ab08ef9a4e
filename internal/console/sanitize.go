package console

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxInputSize is 4KB (conservative default).
	DefaultMaxInputSize = 4096
	// EnvMaxInputSize is the environment variable to override the default.
	EnvMaxInputSize = "SYSDRILL_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// Sanitize validates a line typed at the game prompt. It enforces a
// size limit, rejects invalid UTF-8 and strips terminal control
// characters so pasted escape sequences cannot corrupt the display.
func Sanitize(line string) (string, error) {
	limit := maxInputSize()
	if len(line) > limit {
		// Reject rather than truncate so the interpreter never sees
		// half a command.
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(line), limit)
	}

	if !utf8.ValidString(line) {
		return "", ErrInvalidUTF8
	}

	// Newline, tab and carriage return pass through. Everything else
	// in the control range (ESC, NUL, BEL, ...) is dropped.
	if !strings.ContainsFunc(line, isUnsafeControl) {
		return line, nil
	}

	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		if !isUnsafeControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

func isUnsafeControl(r rune) bool {
	if r == '\n' || r == '\t' || r == '\r' {
		return false
	}
	return unicode.IsControl(r)
}

func maxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
