/*
Package world models the simulated server a game session runs against: a
filesystem tree, a process table, a container runtime, and a small
Kubernetes cluster, plus the player's progress counters.

The model is deliberately plain. Entries and tables are exported structs
so the interpreter and the diagnostics endpoints can read them directly;
edits to the environment are described by the Change interface, whose
implementations are idempotent and report whether they modified
anything.

	st := world.NewState()
	ch := world.ProcessStateChange{PID: 1234, State: world.ProcRunning}
	if ch.Apply(st) {
		// the apache2 worker was stopped and is now running
	}

NewState always seeds the same scenario, so a fresh session is
reproducible without fixtures.
*/
package world
