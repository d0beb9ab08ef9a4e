package level

import (
	"sysdrill/pkg/world"
)

// Builder assembles a Catalog in code, mirroring the YAML catalog format.
// Calls chain level by level and step by step; Build validates the result.
//
//	b := level.NewBuilder()
//	b.Level("reboot_drill", "Reboot Drill", "The box is misbehaving.").
//		Step("Check the process table.").
//		Expect("ps aux", level.MatchContains).
//		Reward("Nice recon.", 10)
//	catalog, err := b.Build()
type Builder struct {
	levels []*Level
}

// NewBuilder returns an empty catalog builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Level starts a new level and returns its builder.
func (b *Builder) Level(id, title, description string) *LevelBuilder {
	lvl := &Level{ID: id, Title: title, Description: description}
	b.levels = append(b.levels, lvl)
	return &LevelBuilder{builder: b, level: lvl}
}

// Build assembles and validates the catalog.
func (b *Builder) Build() (*Catalog, error) {
	c := &Catalog{Levels: make([]Level, 0, len(b.levels))}
	for _, lvl := range b.levels {
		c.Levels = append(c.Levels, *lvl)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LevelBuilder adds steps to one level.
type LevelBuilder struct {
	builder *Builder
	level   *Level
}

// Step starts a new step with the given task text.
func (lb *LevelBuilder) Step(task string) *StepBuilder {
	lb.level.Steps = append(lb.level.Steps, Step{Task: task})
	return &StepBuilder{
		levelBuilder: lb,
		level:        lb.level,
		index:        len(lb.level.Steps) - 1,
	}
}

// StepBuilder fills in one step's expectations and reward.
type StepBuilder struct {
	levelBuilder *LevelBuilder
	level        *Level
	index        int
}

func (sb *StepBuilder) step() *Step {
	return &sb.level.Steps[sb.index]
}

// Expect adds an acceptable command for this step.
func (sb *StepBuilder) Expect(command string, match MatchKind) *StepBuilder {
	sb.step().Expect = append(sb.step().Expect, Expectation{Command: command, Match: match})
	return sb
}

// ExpectFeedback adds an acceptable command with progress feedback,
// typically a recon command on a step whose reward requires a fix.
func (sb *StepBuilder) ExpectFeedback(command string, match MatchKind, feedback string) *StepBuilder {
	sb.step().Expect = append(sb.step().Expect, Expectation{Command: command, Match: match, Feedback: feedback})
	return sb
}

// Hint sets the fallback shown on non-matching commands.
func (sb *StepBuilder) Hint(hint string) *StepBuilder {
	sb.step().Hint = hint
	return sb
}

// Reward sets the step's success message, XP, and required world changes.
func (sb *StepBuilder) Reward(message string, xp int, changes ...world.Change) *StepBuilder {
	s := sb.step()
	s.Success.Message = message
	s.Success.XP = xp
	s.Success.Changes = changes
	return sb
}

// Output sets the output shown when the interpreter produced none for
// the given accepted command.
func (sb *StepBuilder) Output(command, text string) *StepBuilder {
	s := sb.step()
	if s.Success.OutputOverrides == nil {
		s.Success.OutputOverrides = map[string]string{}
	}
	s.Success.OutputOverrides[command] = text
	return sb
}

// Step starts a sibling step in the same level.
func (sb *StepBuilder) Step(task string) *StepBuilder {
	return sb.levelBuilder.Step(task)
}

// Level starts the next level in the catalog.
func (sb *StepBuilder) Level(id, title, description string) *LevelBuilder {
	return sb.levelBuilder.builder.Level(id, title, description)
}

// Build assembles and validates the catalog, ending the chain.
func (sb *StepBuilder) Build() (*Catalog, error) {
	return sb.levelBuilder.builder.Build()
}
