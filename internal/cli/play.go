// Package cli implements the interactive commands behind the sysdrill
// binary. The play loop owns pacing and attempt budgets; everything the
// player sees goes through a console.Console so sessions can be
// scripted in tests.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"sysdrill"
	"sysdrill/internal/console"
	"sysdrill/internal/diag"
	"sysdrill/internal/logging"
	"sysdrill/pkg/level"
)

// PlayOptions contains all the configuration for the play command.
type PlayOptions struct {
	Attempts    int           // wrong submissions allowed per step
	NoColor     bool          // disable styling and effects
	TypingDelay time.Duration // per-rune delay of the typing effect
	Debug       bool          // structured logs on stderr
	DiagAddr    string        // serve diagnostics here when non-empty
	LevelsPath  string        // catalog override, empty uses the built-in campaign
	StartLevel  string        // level id to start at

	// In and Out default to Stdin and Stdout. Tests script sessions
	// by replacing them.
	In  io.Reader
	Out io.Writer
}

// RunPlay executes one interactive session from briefing to game over.
func RunPlay(opts PlayOptions) error {
	logger := createLogger(opts.Debug)

	if opts.Attempts <= 0 {
		opts.Attempts = 5
	}

	catalog, err := loadCatalog(opts.LevelsPath)
	if err != nil {
		return err
	}

	metrics := diag.NewMetrics()

	gameOpts := []sysdrill.Option{
		sysdrill.WithCatalog(catalog),
		sysdrill.WithLogger(logger),
		sysdrill.WithHooks(buildHooks(logger, metrics)),
	}
	if opts.StartLevel != "" {
		gameOpts = append(gameOpts, sysdrill.WithStartLevel(opts.StartLevel))
	}
	game, err := sysdrill.New(gameOpts...)
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	if opts.DiagAddr != "" {
		go func() {
			if err := diag.NewServer(game, metrics, logger).Run(sigCtx, opts.DiagAddr); err != nil {
				logger.Error("diagnostics server failed", "err", err)
			}
		}()
	}

	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	cons := console.New(
		console.WithInput(NewInterruptibleReader(in, sigCtx.Done())),
		console.WithOutput(opts.Out),
		console.WithNoColor(opts.NoColor),
		console.WithTypingDelay(opts.TypingDelay),
	)

	cons.Banner(sysdrill.Version)
	if err := cons.WaitEnter("Press Enter to start your sysadmin journey..."); err != nil {
		return nil
	}

	if err := runLoop(game, cons, opts.Attempts); err != nil && !isInterrupted(err) {
		return err
	}

	if sigCtx.Signal() != nil {
		// Mirror the ^C the terminal swallowed so the transcript
		// reads naturally.
		cons.Muted("[CTRL+C]")
	}
	cons.Rule("Game Over")
	cons.Highlight(fmt.Sprintf("Final XP: %d", game.XP()))
	cons.Muted("Thanks for playing SysDrill!")
	return nil
}

// runLoop drives levels and steps until the campaign ends, the player
// runs out of attempts, or input closes.
func runLoop(game *sysdrill.Game, cons *console.Console, attempts int) error {
	for {
		lvl, ok := game.CurrentLevel()
		if !ok {
			break
		}
		cons.Briefing(game.LevelNumber(), lvl.Title, lvl.Description)

		levelDone := false
		for !levelDone {
			step, ok := game.CurrentStep()
			if !ok {
				break
			}
			cons.Task(step.Task)

			solved := false
			for remaining := attempts; remaining > 0; {
				line, err := cons.ReadCommand()
				if err != nil {
					return err
				}

				rep := game.Submit(line)
				cons.ShowOutput(rep.Output)

				if rep.Kind == sysdrill.KindSuccess {
					cons.Success(rep.Message)
					cons.Highlight(fmt.Sprintf("Current XP: %d", game.XP()))
					solved = true
					levelDone = rep.LevelComplete
					break
				}

				remaining--
				cons.Error(fmt.Sprintf("%s (%d attempts left)", rep.Message, remaining))
			}
			if !solved {
				cons.Error("You ran out of attempts for this task. Game Over!")
				cons.Info("Consider reviewing the task description and hint.")
				return nil
			}
		}
	}

	cons.Success("Congratulations! You've completed all available levels!")
	return nil
}

// buildHooks feeds game events into logs and metrics.
func buildHooks(logger *slog.Logger, metrics *diag.Metrics) sysdrill.Hooks {
	logHooks := sysdrill.Hooks{
		OnCommand: func(e *sysdrill.CommandEvent) {
			logger.Debug("command submitted", "verb", e.Verb, "success", e.Success)
		},
		OnStep: func(e *sysdrill.StepEvent) {
			logger.Info("step completed", "level", e.LevelID, "step", e.StepIndex, "xp", e.XPAwarded)
		},
		OnLevel: func(e *sysdrill.LevelEvent) {
			logger.Info("level completed", "level", e.LevelID, "total_xp", e.TotalXP)
		},
		OnComplete: func(totalXP int) {
			logger.Info("campaign completed", "total_xp", totalXP)
		},
	}
	metricHooks := sysdrill.Hooks{
		OnCommand: func(e *sysdrill.CommandEvent) {
			metrics.ObserveCommand(e.Verb, e.Success)
		},
		OnStep: func(e *sysdrill.StepEvent) {
			metrics.ObserveStep(e.XPAwarded)
		},
	}
	return sysdrill.CombineHooks(logHooks, metricHooks)
}

// createLogger configures the session logger. In debug mode it writes
// to Stderr (to keep Stdout clean for the game UI).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

func loadCatalog(path string) (*level.Catalog, error) {
	if path == "" {
		return level.Default(), nil
	}
	return level.LoadFile(path)
}

func isInterrupted(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, io.EOF) ||
		err.Error() == "interrupted"
}
