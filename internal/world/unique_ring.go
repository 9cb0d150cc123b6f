// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ringtale Contributors

package world

import (
	"fmt"

	"github.com/ringtale/ringtale/internal/narrative"
)

// UniqueRingName is the name of every antagonist's unique ring.
const UniqueRingName = "unique"

// UniqueRing is the artifact an antagonist forges for itself. It empowers
// only its creator and can only be destroyed where it was forged.
type UniqueRing struct {
	ArtifactBase
	creator  *Antagonist
	creation Place
}

// Compile-time check that UniqueRing implements Artifact.
var _ Artifact = (*UniqueRing)(nil)

func newUniqueRing(creator *Antagonist) *UniqueRing {
	return &UniqueRing{
		ArtifactBase: NewArtifactBase(UniqueRingName, creator.Person),
		creator:      creator,
		creation:     creator.Location(),
	}
}

// Creator returns the antagonist that forged the ring.
func (r *UniqueRing) Creator() *Antagonist {
	return r.creator
}

// CreationLocation returns where the ring was forged.
func (r *UniqueRing) CreationLocation() Place {
	return r.creation
}

// Use makes the creator all-powerful and anyone else invisible.
func (r *UniqueRing) Use() {
	owner := r.Owner()
	if owner != r.creator.Person {
		r.record(narrative.KindUse, owner.Name()+" becomes invisible!")
		return
	}
	r.record(narrative.KindUse, owner.Name()+" is all-powerful!")
}

// Destroy destroys the ring when its owner stands where it was forged, which
// kills its creator. Anywhere else the attempt is refused and nothing changes.
func (r *UniqueRing) Destroy() {
	owner := r.Owner()
	r.record(narrative.KindDestroyAttempt,
		fmt.Sprintf("%s: %s attempts to destroy the unique artifact...", owner.Location(), owner.Name()))
	if owner.Location() != r.creation {
		r.record(narrative.KindDestroyRefused, "The unique artifact can only be destroyed where it was created.")
		return
	}
	r.ArtifactBase.Destroy()
	r.creator.Die()
}

func (r *UniqueRing) record(kind narrative.Kind, text string) {
	r.Owner().world.record(kind, r.subject(), text)
}
