// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ringtale Contributors

package world

import (
	"github.com/samber/lo"
)

// Registry is the ordered collection of living persons.
// It is not safe for concurrent use.
type Registry struct {
	living []*Person
}

// Add appends p in insertion order.
func (r *Registry) Add(p *Person) {
	r.living = append(r.living, p)
}

// Remove drops p from the registry. Removing an absent person is a no-op.
// It reports whether p was present.
func (r *Registry) Remove(p *Person) bool {
	i := lo.IndexOf(r.living, p)
	if i < 0 {
		return false
	}
	r.living = append(r.living[:i], r.living[i+1:]...)
	return true
}

// Contains reports whether p is alive.
func (r *Registry) Contains(p *Person) bool {
	return lo.Contains(r.living, p)
}

// Len returns the number of living persons.
func (r *Registry) Len() int {
	return len(r.living)
}

// Living returns a copy of the living persons in insertion order.
func (r *Registry) Living() []*Person {
	out := make([]*Person, len(r.living))
	copy(out, r.living)
	return out
}

// Names returns the names of the living persons in insertion order.
func (r *Registry) Names() []string {
	return lo.Map(r.living, func(p *Person, _ int) string {
		return p.Name()
	})
}
