// Package metrics exposes Prometheus counters for the simulator.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"uf2status/ui/screen"
	"uf2status/ui/status"
)

var (
	stateTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "uf2status",
		Subsystem: "status",
		Name:      "transitions_total",
		Help:      "Bootloader state transitions applied",
	}, []string{"state"})

	currentState = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "uf2status",
		Subsystem: "status",
		Name:      "state",
		Help:      "Numeric value of the current bootloader state",
	})

	redraws = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "uf2status",
		Subsystem: "screen",
		Name:      "redraws_total",
		Help:      "Full-screen redraws by layout",
	}, []string{"layout"})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "uf2status",
		Name:      "errors_total",
		Help:      "Errors reported while applying a state",
	}, []string{"stage"})
)

// RecordState counts a state transition.
func RecordState(st status.State) {
	stateTransitions.WithLabelValues(st.String()).Inc()
	currentState.Set(float64(st))
}

// RecordRedraw counts a redraw of l.
func RecordRedraw(l screen.Layout) {
	redraws.WithLabelValues(l.String()).Inc()
}

// RecordError counts an error at stage ("apply", "config", ...).
func RecordError(stage string) {
	errorsTotal.WithLabelValues(stage).Inc()
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
