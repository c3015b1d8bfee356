// Package telemetry counts interaction activity with Prometheus collectors
// registered on a private registry.
package telemetry

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"spatial-interactor/internal/interactor"
)

const namespace = "interactor"

// Metrics holds the collectors fed by controller hooks.
type Metrics struct {
	registry *prometheus.Registry

	sessions     *prometheus.CounterVec
	interactions *prometheus.CounterVec
	gestures     *prometheus.CounterVec
	rejected     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_total",
			Help:      "Completed interaction sessions by mode.",
		}, []string{"mode"}),
		interactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interactions_total",
			Help:      "Moves handled inside a session, by state.",
		}, []string{"state"}),
		gestures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gestures_total",
			Help:      "Pinch and pan gesture updates applied.",
		}, []string{"gesture"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_presses_total",
			Help:      "Button presses ignored because of an active session or a failed guard.",
		}, []string{"button"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "session_duration_seconds",
			Help:      "Wall time between a session's press and release.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}, []string{"mode"}),
	}
	m.registry.MustRegister(m.sessions, m.interactions, m.gestures, m.rejected, m.duration)
	return m
}

// Registry exposes the private registry, e.g. for an HTTP handler.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Hooks returns controller hooks that feed the collectors.
func (m *Metrics) Hooks() interactor.Hooks {
	return interactor.Hooks{
		OnInteraction: func(ev interactor.InteractionEvent) {
			m.interactions.WithLabelValues(ev.State.String()).Inc()
		},
		OnGesture: func(g interactor.Gesture) {
			m.gestures.WithLabelValues(string(g)).Inc()
		},
		OnSessionEnd: func(s interactor.SessionSummary) {
			mode := s.Mode.String()
			m.sessions.WithLabelValues(mode).Inc()
			m.duration.WithLabelValues(mode).Observe(s.Duration.Seconds())
		},
		OnRejected: func(b interactor.Button, _ interactor.State) {
			m.rejected.WithLabelValues(b.String()).Inc()
		},
	}
}

// WriteSummary prints one line per counter series, sorted, followed by
// histogram sample counts.
func (m *Metrics) WriteSummary(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("telemetry: gather: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			var labels []string
			for _, lp := range metric.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			series := mf.GetName() + "{" + strings.Join(labels, ",") + "}"
			switch {
			case metric.GetCounter() != nil:
				lines = append(lines, fmt.Sprintf("%s %g", series, metric.GetCounter().GetValue()))
			case metric.GetHistogram() != nil:
				h := metric.GetHistogram()
				lines = append(lines, fmt.Sprintf("%s count=%d sum=%.3fs", series, h.GetSampleCount(), h.GetSampleSum()))
			}
		}
	}
	sort.Strings(lines)

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
