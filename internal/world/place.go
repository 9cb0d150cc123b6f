// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ringtale Contributors

// Package world contains the story's cast, places, and artifacts.
package world

// Place is one of the fixed locations of the story.
// The zero value is not a valid place.
type Place uint8

// Places of the story.
const (
	Homeland Place = iota + 1
	MountOfDoom
)

var placeLabels = map[Place]string{
	Homeland:    "La Comté",
	MountOfDoom: "Le Mont du Destin",
}

// String returns the display label of the place.
func (p Place) String() string {
	if label, ok := placeLabels[p]; ok {
		return label
	}
	return "unknown"
}

// Valid reports whether p is one of the declared places.
func (p Place) Valid() bool {
	_, ok := placeLabels[p]
	return ok
}

// Places returns every place in declaration order.
func Places() []Place {
	return []Place{Homeland, MountOfDoom}
}
