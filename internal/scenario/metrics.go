// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ringtale Contributors

package scenario

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ringtale/ringtale/internal/narrative"
)

// Metrics counts what happens during runs.
type Metrics struct {
	RunsTotal     prometheus.Counter
	EntriesTotal  *prometheus.CounterVec
	LivingPersons prometheus.Gauge
}

// NewMetrics creates and registers the scenario metrics.
// If reg is nil, the metrics are created but not registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RunsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ringtale_scenario_runs_total",
			Help: "Total number of scenario runs",
		}),
		EntriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ringtale_narrative_entries_total",
				Help: "Total number of narrated lines by kind",
			},
			[]string{"kind"},
		),
		LivingPersons: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ringtale_living_persons",
			Help: "Number of living persons after the last step",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.RunsTotal, m.EntriesTotal, m.LivingPersons)
	}
	return m
}

// Observe implements narrative.Observer.
func (m *Metrics) Observe(entry narrative.Entry) {
	m.EntriesTotal.WithLabelValues(entry.Kind.String()).Inc()
}
