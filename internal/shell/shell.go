// Package shell interprets player command lines against a simulated world.
//
// Parse turns one raw line into a typed Command; Simulate runs it against a
// world.State and returns a Result. Eval does both. Commands that repair
// the world report what they changed so callers can tell recon from fixes.
package shell

import (
	"errors"
	"strings"

	"sysdrill/pkg/world"
)

// Result is the outcome of simulating one command line.
type Result struct {
	// Verb is the dispatched command verb, lowercased.
	Verb string
	// Output is what the simulated shell printed.
	Output string
	// Success is false for usage errors, unknown verbs, and missing targets.
	Success bool
	// Message is an out-of-band feedback line, distinct from shell output.
	Message string
	// Changes lists the world mutations this command committed.
	Changes []world.Change
}

// Command is a parsed, executable command line.
type Command interface {
	// Verb returns the command's dispatch verb.
	Verb() string
	// Simulate runs the command against the world.
	Simulate(st *world.State) Result
}

// ParseError is a user-facing parse failure: unknown verb, missing
// operand, or malformed arguments. Output holds the shell-style error
// line, Message the optional feedback line.
type ParseError struct {
	Output  string
	Message string
}

func (e *ParseError) Error() string {
	return e.Output
}

// ErrEmpty is returned by Parse for blank input.
var ErrEmpty = errors.New("empty command line")

// Eval parses and simulates one raw line. Parse failures are folded into
// the Result; blank input yields the zero Result.
func Eval(st *world.State, line string) Result {
	cmd, err := Parse(line)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return Result{Verb: firstToken(line), Output: pe.Output, Message: pe.Message}
		}
		return Result{}
	}
	res := cmd.Simulate(st)
	res.Verb = cmd.Verb()
	return res
}

func firstToken(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

func success(output string) Result {
	return Result{Output: output, Success: true}
}

func failure(output, message string) Result {
	return Result{Output: output, Message: message}
}

// splitLines splits file content into lines the way the simulated tools
// consume it: no trailing empty line for newline-terminated content.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
