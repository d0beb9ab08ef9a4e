package shell

import (
	"fmt"
	"strings"

	"sysdrill/pkg/world"
)

// apachePID is the seeded apache2 worker; systemctl only models that unit.
const apachePID = 1234

const psHeader = "USER       PID %CPU %MEM    VSZ   RSS TTY      STAT START   TIME COMMAND"

const apacheStatusActive = `● apache2.service - The Apache HTTP Server
     Loaded: loaded (/lib/systemd/system/apache2.service; enabled; vendor preset: enabled)
     Active: active (running) since Thu 2024-05-23 10:00:00 UTC; 10min ago
   Main PID: 1234 (apache2)
      Tasks: 6 (limit: 4579)
     Memory: 16.0M
        CPU: 1.250s
     CGroup: /system.slice/apache2.service
             ├─1234 /usr/sbin/apache2 -k start`

const apacheStatusInactive = `● apache2.service - The Apache HTTP Server
     Loaded: loaded (/lib/systemd/system/apache2.service; enabled; vendor preset: enabled)
     Active: inactive (dead) since Thu 2024-05-23 10:05:13 UTC; 5min ago
       Docs: https://httpd.apache.org/docs/2.4/
    Process: 1234 ExecStart=/usr/sbin/apache2 -k start (code=exited, status=1/FAILURE)
   Main PID: 1234 (code=exited, status=1/FAILURE)
      Tasks: 0 (limit: 4579)
     Memory: 0B
        CPU: 0
     CGroup: /system.slice/apache2.service`

// ProcList prints the process table in ps aux layout, rows sorted by PID.
type ProcList struct{}

func (ProcList) Verb() string { return "ps" }

func (ProcList) Simulate(st *world.State) Result {
	lines := []string{psHeader}
	for _, pid := range st.SortedPIDs() {
		p := st.Processes[pid]
		stateChar := "?"
		if p.State != "" {
			stateChar = strings.ToUpper(string(p.State[0]))
		}
		lines = append(lines, fmt.Sprintf(
			"root       %-5d  0.0  0.0 100000  5000 ?        %s    10:00   0:00 %s",
			p.PID, stateChar, p.Command,
		))
	}
	return success(strings.Join(lines, "\n"))
}

// Kill marks a process as killed. Processes stay in the table so ps keeps
// showing them.
type Kill struct {
	PID int
}

func (Kill) Verb() string { return "kill" }

func (c Kill) Simulate(st *world.State) Result {
	if _, ok := st.Process(c.PID); !ok {
		return failure(
			fmt.Sprintf("kill: (%d) - No such process", c.PID),
			fmt.Sprintf("Process %d not found.", c.PID),
		)
	}
	res := Result{Success: true, Message: fmt.Sprintf("Process %d killed.", c.PID)}
	ch := world.ProcessStateChange{PID: c.PID, State: world.ProcKilled}
	if ch.Apply(st) {
		res.Changes = []world.Change{ch}
	}
	return res
}

// Systemctl models service control for the apache2 unit: restart brings a
// stopped worker back up, status prints the matching systemd report.
type Systemctl struct {
	Action string
	Unit   string
}

func (Systemctl) Verb() string { return "systemctl" }

func (c Systemctl) Simulate(st *world.State) Result {
	switch c.Action {
	case "restart":
		if c.Unit != "apache2" {
			return failure(fmt.Sprintf("systemctl: Unit %s.service not found or not supported in simulation.", c.Unit), "")
		}
		p, ok := st.Process(apachePID)
		if ok && p.State == world.ProcStopped {
			ch := world.ProcessStateChange{PID: apachePID, State: world.ProcRunning}
			ch.Apply(st)
			return Result{
				Output:  "apache2.service restarted successfully.",
				Success: true,
				Changes: []world.Change{ch},
			}
		}
		return success("apache2.service is already running or not in a stopped state.")
	case "status":
		if c.Unit != "apache2" {
			return failure(fmt.Sprintf("systemctl: Unit %s.service not found or not supported in simulation.", c.Unit), "")
		}
		status := world.ProcState("unknown")
		if p, ok := st.Process(apachePID); ok {
			status = p.State
		}
		switch status {
		case world.ProcRunning:
			return success(apacheStatusActive)
		case world.ProcStopped:
			return success(apacheStatusInactive)
		default:
			return success(fmt.Sprintf("systemctl: Unit %s.service status is %s.", c.Unit, status))
		}
	}
	return failure(fmt.Sprintf("systemctl: Unsupported verb '%s' or unit '%s'.", c.Action, c.Unit), "")
}
