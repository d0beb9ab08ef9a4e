package diag

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks gameplay counters on a private registry so embedders
// never collide with the global one.
type Metrics struct {
	registry *prometheus.Registry

	commands *prometheus.CounterVec
	steps    prometheus.Counter
	xp       prometheus.Counter
}

// NewMetrics builds and registers the gameplay collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sysdrill_commands_total",
				Help: "Total number of commands submitted, by verb and outcome",
			},
			[]string{"verb", "outcome"},
		),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sysdrill_steps_completed_total",
			Help: "Total number of troubleshooting steps completed",
		}),
		xp: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sysdrill_xp_awarded_total",
			Help: "Total XP awarded across the session",
		}),
	}
	m.registry.MustRegister(m.commands, m.steps, m.xp)
	return m
}

// Registry exposes the underlying registry for the diagnostics server.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveCommand records one submitted command.
func (m *Metrics) ObserveCommand(verb string, success bool) {
	if verb == "" {
		verb = "unknown"
	}
	outcome := "error"
	if success {
		outcome = "ok"
	}
	m.commands.WithLabelValues(verb, outcome).Inc()
}

// ObserveStep records a completed step and the XP it awarded.
func (m *Metrics) ObserveStep(xp int) {
	m.steps.Inc()
	m.xp.Add(float64(xp))
}
