/*
Package level defines the scenario content a game plays through: levels,
steps, expected commands, and the rewards granted when a step is solved.

Catalogs come from three places. Default returns the embedded campaign,
Load and LoadFile decode the same YAML format from elsewhere, and Builder
assembles catalogs in code:

	b := level.NewBuilder()
	b.Level("drill", "Process Drill", "One process is down.").
		Step("Restart the apache2 service.").
		Expect("systemctl restart apache2", level.MatchExact).
		Reward("Fixed!", 25, world.ProcessStateChange{PID: 1234, State: world.ProcRunning})
	catalog, err := b.Build()

A catalog must pass Validate before play; Parse, Load, LoadFile, and
Build all validate on your behalf.
*/
package level
