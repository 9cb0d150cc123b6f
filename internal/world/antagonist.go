// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ringtale Contributors

package world

// Antagonist is a person able to forge a unique ring.
type Antagonist struct {
	*Person
	ring *UniqueRing
}

// UniqueArtifact returns the antagonist's unique ring, forging it at the
// antagonist's current location on first call. Later calls return the same
// ring whatever happened since.
func (a *Antagonist) UniqueArtifact() *UniqueRing {
	if a.ring == nil {
		a.ring = newUniqueRing(a)
	}
	return a.ring
}
