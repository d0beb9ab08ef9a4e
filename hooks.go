package sysdrill

import "sysdrill/pkg/world"

// CommandEvent describes one interpreted command line.
type CommandEvent struct {
	Line    string
	Verb    string
	Success bool
	Changes []world.Change
}

// StepEvent describes a satisfied step. StepIndex is 1-based.
type StepEvent struct {
	LevelID   string
	StepIndex int
	XPAwarded int
	TotalXP   int
}

// LevelEvent describes a completed level. LevelNumber is 1-based.
type LevelEvent struct {
	LevelID     string
	LevelNumber int
	TotalXP     int
}

// Hooks are optional callbacks for observing a session, invoked
// synchronously from Submit while the game lock is held. Keep them fast
// and do not call back into the Game; nil members are skipped.
type Hooks struct {
	OnCommand  func(*CommandEvent)
	OnStep     func(*StepEvent)
	OnLevel    func(*LevelEvent)
	OnComplete func(totalXP int)
}

// CombineHooks merges multiple hook sets into a single view. Each event
// is dispatched to every set in order; nil members are skipped.
func CombineHooks(hooks ...Hooks) Hooks {
	return Hooks{
		OnCommand: func(e *CommandEvent) {
			for i := range hooks {
				if fn := hooks[i].OnCommand; fn != nil {
					fn(e)
				}
			}
		},
		OnStep: func(e *StepEvent) {
			for i := range hooks {
				if fn := hooks[i].OnStep; fn != nil {
					fn(e)
				}
			}
		},
		OnLevel: func(e *LevelEvent) {
			for i := range hooks {
				if fn := hooks[i].OnLevel; fn != nil {
					fn(e)
				}
			}
		},
		OnComplete: func(totalXP int) {
			for i := range hooks {
				if fn := hooks[i].OnComplete; fn != nil {
					fn(totalXP)
				}
			}
		},
	}
}
