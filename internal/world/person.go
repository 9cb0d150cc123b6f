// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ringtale Contributors

package world

import (
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/ringtale/ringtale/internal/narrative"
)

// Person is a member of the cast.
// A person is created through World.NewPerson and stays in one place at a time.
type Person struct {
	id       ulid.ULID
	name     string
	location Place
	world    *World
}

// ID returns the person's identity.
func (p *Person) ID() ulid.ULID {
	return p.id
}

// Name returns the person's name.
func (p *Person) Name() string {
	return p.name
}

// Location returns where the person currently is.
func (p *Person) Location() Place {
	return p.location
}

// Relocate moves the person to location.
// Moving to the current location is still narrated.
func (p *Person) Relocate(location Place) {
	p.location = location
	p.world.record(narrative.KindMove, p.subject(), fmt.Sprintf("%s moves to: %s", p.name, location))
}

// Die narrates the person's death and removes it from the living registry.
// Calling Die on a person already removed narrates the death again but leaves
// the registry untouched and skips the farewell.
func (p *Person) Die() {
	p.world.record(narrative.KindDeath, p.subject(), p.name+" dies!")
	removed := p.world.registry.Remove(p)
	if removed && p.world.farewell {
		p.world.record(narrative.KindFarewell, p.subject(), p.name+" joins the great cosmic void.")
	}
}

func (p *Person) subject() string {
	return "person:" + p.name
}
