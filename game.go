package sysdrill

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"sysdrill/internal/shell"
	"sysdrill/pkg/level"
	"sysdrill/pkg/world"
)

// Game binds a simulated world to a level catalog and drives progression:
// it interprets submitted commands, matches them against the current step,
// and applies rewards. All methods are safe for concurrent use, so
// diagnostics can read a session while the play loop drives it.
type Game struct {
	mu sync.RWMutex

	world    *world.State
	catalog  *level.Catalog
	levelIdx int
	stepIdx  int
	complete bool

	hooks  Hooks
	logger *slog.Logger

	startLevel string
}

// Option configures a Game.
type Option func(*Game)

// WithWorld replaces the default seeded world.
func WithWorld(st *world.State) Option {
	return func(g *Game) {
		g.world = st
	}
}

// WithCatalog replaces the built-in campaign.
func WithCatalog(c *level.Catalog) Option {
	return func(g *Game) {
		g.catalog = c
	}
}

// WithLogger sets the logger for internal progress events.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithHooks registers observability callbacks.
func WithHooks(hooks Hooks) Option {
	return func(g *Game) {
		g.hooks = hooks
	}
}

// WithStartLevel begins the session at the named level instead of the
// first one.
func WithStartLevel(id string) Option {
	return func(g *Game) {
		g.startLevel = id
	}
}

// New creates a game session. Without options it plays the built-in
// campaign on a freshly seeded world and stays silent.
func New(opts ...Option) (*Game, error) {
	g := &Game{}
	for _, opt := range opts {
		opt(g)
	}
	if g.world == nil {
		g.world = world.NewState()
	}
	if g.catalog == nil {
		g.catalog = level.Default()
	}
	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := g.catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	if g.startLevel != "" {
		idx := g.catalog.Index(g.startLevel)
		if idx < 0 {
			return nil, fmt.Errorf("unknown start level %q", g.startLevel)
		}
		g.levelIdx = idx
	}
	g.world.CurrentLevel = g.catalog.Levels[g.levelIdx].ID
	g.logger.Debug("game created",
		"levels", g.catalog.Len(),
		"start", g.world.CurrentLevel,
	)
	return g, nil
}

// Submit interprets one raw command line against the world and checks it
// against the current step. Every outcome, including unknown commands, is
// folded into the Report; Submit never returns an error.
func (g *Game) Submit(line string) Report {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.complete {
		return Report{Kind: KindError, Message: "No active level."}
	}

	res := shell.Eval(g.world, line)
	g.logger.Debug("command interpreted",
		"verb", res.Verb,
		"success", res.Success,
		"changes", len(res.Changes),
	)
	if g.hooks.OnCommand != nil {
		g.hooks.OnCommand(&CommandEvent{
			Line:    line,
			Verb:    res.Verb,
			Success: res.Success,
			Changes: res.Changes,
		})
	}

	lvl := &g.catalog.Levels[g.levelIdx]
	step := &lvl.Steps[g.stepIdx]

	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = "Command failed."
		}
		return Report{Kind: KindError, Output: res.Output, Message: msg}
	}

	exp := matchExpectation(step, line, res.Output)
	if exp == nil {
		return Report{Kind: KindHint, Output: res.Output, Message: step.HintOrDefault()}
	}
	if res.Output == "" {
		res.Output = step.Success.OutputOverrides[exp.Command]
	}

	if step.RequiresFix() && len(res.Changes) == 0 {
		msg := exp.Feedback
		if msg == "" {
			msg = "You're on the right track, but the problem isn't fixed yet."
		}
		return Report{Kind: KindProgress, Output: res.Output, Message: msg}
	}

	return g.completeStep(lvl, step, res)
}

// matchExpectation returns the first expectation satisfied by both the
// raw line and, where required, the simulated output.
func matchExpectation(step *level.Step, line, output string) *level.Expectation {
	for i := range step.Expect {
		e := &step.Expect[i]
		if !e.Matches(line) {
			continue
		}
		if e.OutputContains != "" && !strings.Contains(output, e.OutputContains) {
			continue
		}
		return e
	}
	return nil
}

// completeStep applies the step's reward and advances the cursor. The
// declared changes are re-applied so the world ends up in the authored
// goal state no matter which accepted command got it there.
func (g *Game) completeStep(lvl *level.Level, step *level.Step, res shell.Result) Report {
	for _, ch := range step.Success.Changes {
		applied := ch.Apply(g.world)
		g.logger.Debug("outcome change applied", "kind", ch.Kind(), "applied", applied)
	}
	g.world.AddXP(step.Success.XP)

	message := step.Success.Message
	if message == "" {
		message = res.Message
	}
	rep := Report{
		Kind:         KindSuccess,
		Output:       res.Output,
		Message:      message,
		XPAwarded:    step.Success.XP,
		StepComplete: true,
	}

	g.stepIdx++
	if g.hooks.OnStep != nil {
		g.hooks.OnStep(&StepEvent{
			LevelID:   lvl.ID,
			StepIndex: g.stepIdx,
			XPAwarded: step.Success.XP,
			TotalXP:   g.world.XP,
		})
	}
	g.logger.Info("step completed",
		"level", lvl.ID,
		"step", g.stepIdx,
		"xp", g.world.XP,
	)
	if g.stepIdx < len(lvl.Steps) {
		return rep
	}

	rep.LevelComplete = true
	g.stepIdx = 0
	g.levelIdx++
	if g.hooks.OnLevel != nil {
		g.hooks.OnLevel(&LevelEvent{
			LevelID:     lvl.ID,
			LevelNumber: g.levelIdx,
			TotalXP:     g.world.XP,
		})
	}
	if g.levelIdx >= g.catalog.Len() {
		rep.GameComplete = true
		g.complete = true
		g.logger.Info("campaign completed", "xp", g.world.XP)
		if g.hooks.OnComplete != nil {
			g.hooks.OnComplete(g.world.XP)
		}
		return rep
	}

	g.world.CurrentLevel = g.catalog.Levels[g.levelIdx].ID
	g.logger.Info("level started", "level", g.world.CurrentLevel)
	return rep
}

// XP returns the experience earned so far.
func (g *Game) XP() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.world.XP
}

// Complete reports whether every level has been solved.
func (g *Game) Complete() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.complete
}

// CurrentLevel returns the level in play. The returned value is shared
// catalog data and must not be mutated.
func (g *Game) CurrentLevel() (*level.Level, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.complete {
		return nil, false
	}
	return &g.catalog.Levels[g.levelIdx], true
}

// CurrentStep returns the step the player must solve next.
func (g *Game) CurrentStep() (*level.Step, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.complete {
		return nil, false
	}
	return &g.catalog.Levels[g.levelIdx].Steps[g.stepIdx], true
}

// LevelNumber returns the 1-based position of the current level; after
// completion it stays at the last level.
func (g *Game) LevelNumber() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.levelIdx >= g.catalog.Len() {
		return g.catalog.Len()
	}
	return g.levelIdx + 1
}

// Catalog returns the catalog this game plays.
func (g *Game) Catalog() *level.Catalog {
	return g.catalog
}
