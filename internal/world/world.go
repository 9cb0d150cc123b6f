// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ringtale Contributors

package world

import (
	"github.com/ringtale/ringtale/internal/narrative"
)

// Recorder receives every trace line the world produces.
type Recorder interface {
	Record(kind narrative.Kind, subject, text string)
}

// Option configures a World.
type Option func(*World)

// WithFarewell makes Die also record the farewell line after the death line.
func WithFarewell(enabled bool) Option {
	return func(w *World) {
		w.farewell = enabled
	}
}

// World is the shared state of one story run: the living-person registry and
// the recorder every operation narrates to.
type World struct {
	rec      Recorder
	registry Registry
	farewell bool
}

// New creates an empty world that narrates to rec.
func New(rec Recorder, opts ...Option) *World {
	w := &World{rec: rec}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Registry returns the living-person registry.
func (w *World) Registry() *Registry {
	return &w.registry
}

// NewPerson creates a person at location and registers it as living.
func (w *World) NewPerson(name string, location Place) *Person {
	p := &Person{
		id:       narrative.NewID(),
		name:     name,
		location: location,
		world:    w,
	}
	w.registry.Add(p)
	return p
}

// NewAntagonist creates an antagonist at location and registers it as living.
func (w *World) NewAntagonist(name string, location Place) *Antagonist {
	return &Antagonist{Person: w.NewPerson(name, location)}
}

func (w *World) record(kind narrative.Kind, subject, text string) {
	if w.rec == nil {
		return
	}
	w.rec.Record(kind, subject, text)
}
