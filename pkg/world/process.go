package world

import "sort"

// ProcState is the lifecycle state of a simulated process.
type ProcState string

const (
	ProcRunning ProcState = "running"
	ProcStopped ProcState = "stopped"
	ProcKilled  ProcState = "killed"
)

// Process is one row of the simulated process table. Processes are seeded
// at construction and never removed; kill and service restarts only flip
// State.
type Process struct {
	PID     int       `json:"pid"`
	Name    string    `json:"name"`
	State   ProcState `json:"state"`
	Command string    `json:"command"`
}

// Process returns the process with the given PID.
func (s *State) Process(pid int) (*Process, bool) {
	p, ok := s.Processes[pid]
	return p, ok
}

// SortedPIDs returns all PIDs in ascending order.
func (s *State) SortedPIDs() []int {
	pids := make([]int, 0, len(s.Processes))
	for pid := range s.Processes {
		pids = append(pids, pid)
	}
	sort.Ints(pids)
	return pids
}
