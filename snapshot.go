package sysdrill

import "sysdrill/pkg/world"

// Snapshot is a point-in-time view of a session for diagnostics.
// Everything is copied, so holding a Snapshot never blocks play.
type Snapshot struct {
	XP          int    `json:"xp"`
	LevelID     string `json:"level_id"`
	LevelTitle  string `json:"level_title"`
	LevelNumber int    `json:"level_number"`
	StepNumber  int    `json:"step_number"`
	Complete    bool   `json:"complete"`

	Processes   []world.Process    `json:"processes"`
	Containers  []world.Container  `json:"containers"`
	Pods        []world.Pod        `json:"pods"`
	Deployments []world.Deployment `json:"deployments"`
}

// Snapshot captures the current world and progress.
func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snap := Snapshot{
		XP:       g.world.XP,
		LevelID:  g.world.CurrentLevel,
		Complete: g.complete,
	}
	if g.levelIdx < g.catalog.Len() {
		snap.LevelTitle = g.catalog.Levels[g.levelIdx].Title
		snap.LevelNumber = g.levelIdx + 1
		snap.StepNumber = g.stepIdx + 1
	} else {
		snap.LevelNumber = g.catalog.Len()
	}

	for _, pid := range g.world.SortedPIDs() {
		snap.Processes = append(snap.Processes, *g.world.Processes[pid])
	}
	for _, c := range g.world.Containers {
		snap.Containers = append(snap.Containers, *c)
	}
	for _, p := range g.world.Pods {
		snap.Pods = append(snap.Pods, *p)
	}
	for _, d := range g.world.Deployments {
		snap.Deployments = append(snap.Deployments, *d)
	}
	return snap
}
