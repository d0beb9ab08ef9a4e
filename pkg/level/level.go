package level

import (
	"fmt"
	"regexp"
	"strings"

	"sysdrill/pkg/world"
)

// MatchKind selects how an expected command is compared with raw input.
type MatchKind string

const (
	// MatchExact compares the whole trimmed line, case-insensitively.
	MatchExact MatchKind = "exact"
	// MatchContains looks for the expected text anywhere in the line.
	MatchContains MatchKind = "contains"
	// MatchRegex matches the line against a regular expression.
	MatchRegex MatchKind = "regex"
)

// DefaultHint is shown when a step has no authored hint.
const DefaultHint = "That's not the right command for this task. Try again."

// Expectation is one acceptable command for a step.
type Expectation struct {
	// Command is the literal text or pattern to match.
	Command string
	// Match picks the comparison strategy.
	Match MatchKind
	// OutputContains, when set, additionally requires the simulated output
	// to contain this substring.
	OutputContains string
	// Feedback is shown when the command matched but the step's fix has
	// not happened yet, as with recon commands on a repair step.
	Feedback string

	re *regexp.Regexp
}

// Matches reports whether a raw command line satisfies this expectation.
// The line is trimmed and lowercased first, so authored commands and
// patterns should be lowercase.
func (e *Expectation) Matches(raw string) bool {
	in := strings.ToLower(strings.TrimSpace(raw))
	switch e.Match {
	case MatchExact:
		return in == strings.ToLower(e.Command)
	case MatchContains:
		return strings.Contains(in, strings.ToLower(e.Command))
	case MatchRegex:
		re := e.re
		if re == nil {
			var err error
			re, err = regexp.Compile(e.Command)
			if err != nil {
				return false
			}
		}
		return re.MatchString(in)
	}
	return false
}

// Outcome is a step's reward: the message and XP granted on success, plus
// the world changes that must hold afterwards. Changes are re-applied
// idempotently when the step completes, so a step stays satisfiable even
// if the player reached the goal state through an alternative command.
type Outcome struct {
	Message string
	XP      int
	Changes []world.Change

	// OutputOverrides maps an authored expectation command to the output
	// shown when the interpreter produced none for it. The interpreter's
	// own output always wins when non-empty.
	OutputOverrides map[string]string
}

// Step is one task within a level.
type Step struct {
	Task    string
	Expect  []Expectation
	Success Outcome
	Hint    string
}

// RequiresFix reports whether completing this step demands an actual
// world mutation rather than just a matching command.
func (s *Step) RequiresFix() bool {
	return len(s.Success.Changes) > 0
}

// HintOrDefault returns the authored hint, or DefaultHint when there is
// none.
func (s *Step) HintOrDefault() string {
	if s.Hint != "" {
		return s.Hint
	}
	return DefaultHint
}

// Level is one scenario: a briefing plus an ordered list of steps.
type Level struct {
	ID          string
	Title       string
	Description string
	Steps       []Step
}

// TotalXP sums the step rewards of the level.
func (l *Level) TotalXP() int {
	total := 0
	for i := range l.Steps {
		total += l.Steps[i].Success.XP
	}
	return total
}

// Catalog is an ordered set of levels. Load or build one once, validate
// it, and treat it as read-only afterwards; games never mutate it.
type Catalog struct {
	Levels []Level
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.Levels)
}

// Index returns the position of the level with the given ID, or -1.
func (c *Catalog) Index(id string) int {
	for i := range c.Levels {
		if c.Levels[i].ID == id {
			return i
		}
	}
	return -1
}

// Level returns the level with the given ID.
func (c *Catalog) Level(id string) (*Level, bool) {
	if i := c.Index(id); i >= 0 {
		return &c.Levels[i], true
	}
	return nil, false
}

// TotalXP sums the rewards across all levels.
func (c *Catalog) TotalXP() int {
	total := 0
	for i := range c.Levels {
		total += c.Levels[i].TotalXP()
	}
	return total
}

// Validate checks catalog consistency and compiles regex expectations.
// A catalog that fails validation must not be played.
func (c *Catalog) Validate() error {
	if len(c.Levels) == 0 {
		return fmt.Errorf("catalog has no levels")
	}
	seen := make(map[string]bool, len(c.Levels))
	for li := range c.Levels {
		lvl := &c.Levels[li]
		if lvl.ID == "" {
			return fmt.Errorf("level %d: missing id", li+1)
		}
		if seen[lvl.ID] {
			return fmt.Errorf("level %q: duplicate id", lvl.ID)
		}
		seen[lvl.ID] = true
		if len(lvl.Steps) == 0 {
			return fmt.Errorf("level %q: no steps", lvl.ID)
		}
		for si := range lvl.Steps {
			step := &lvl.Steps[si]
			if len(step.Expect) == 0 {
				return fmt.Errorf("level %q step %d: no expectations", lvl.ID, si+1)
			}
			if step.Success.XP < 0 {
				return fmt.Errorf("level %q step %d: negative xp", lvl.ID, si+1)
			}
			for ei := range step.Expect {
				exp := &step.Expect[ei]
				if exp.Command == "" {
					return fmt.Errorf("level %q step %d: empty expected command", lvl.ID, si+1)
				}
				switch exp.Match {
				case MatchExact, MatchContains:
				case MatchRegex:
					re, err := regexp.Compile(exp.Command)
					if err != nil {
						return fmt.Errorf("level %q step %d: bad pattern %q: %w", lvl.ID, si+1, exp.Command, err)
					}
					exp.re = re
				default:
					return fmt.Errorf("level %q step %d: unknown match kind %q", lvl.ID, si+1, exp.Match)
				}
			}
		}
	}
	return nil
}
