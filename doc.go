/*
Package sysdrill is a terminal troubleshooting game engine: it simulates a
misbehaving Linux server and scores the shell commands a player submits
against scenario levels.

# How a session works

A Game owns two things: a world (filesystem, process table, containers, a
small cluster) and a catalog of levels. Each level has steps, each step a
set of acceptable commands. Submit runs one raw command line through the
interpreter, reports the simulated output, and checks whether the step is
solved. Recon commands earn feedback, repair commands earn XP and advance
the session.

# Basic usage

	game, err := sysdrill.New()
	if err != nil {
		log.Fatal(err)
	}

	rep := game.Submit("ps aux")
	fmt.Println(rep.Output) // the simulated process table

	rep = game.Submit("sudo systemctl restart apache2")
	if rep.Kind == sysdrill.KindSuccess {
		fmt.Println(rep.Message, "XP:", game.XP())
	}

# Custom content

Levels are data. Load a YAML catalog with the level package, or assemble
one in code with level.NewBuilder, and pass it in:

	game, err := sysdrill.New(sysdrill.WithCatalog(catalog))

# Observability

Hooks expose command, step, level, and completion events for logging or
metrics, and Snapshot returns a copied view of the world for read-only
diagnostics surfaces.
*/
package sysdrill
