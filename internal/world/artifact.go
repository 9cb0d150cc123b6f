// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ringtale Contributors

package world

import (
	"fmt"

	"github.com/ringtale/ringtale/internal/narrative"
)

// Artifact is an owned object whose effect depends on its kind.
type Artifact interface {
	// Name returns the artifact's name.
	Name() string

	// Owner returns the current owner. Never nil.
	Owner() *Person

	// TransferOwnership makes p the owner. p must not be nil.
	TransferOwnership(p *Person)

	// Use applies the artifact's effect for its current owner.
	Use()

	// Destroy attempts to destroy the artifact.
	Destroy()
}

// ArtifactBase carries the name and owner shared by every artifact kind.
// Kinds embed it and supply Use; they may override Destroy.
type ArtifactBase struct {
	name  string
	owner *Person
}

// NewArtifactBase narrates the creation of an artifact by owner and then
// hands it to owner, which narrates the ownership as well.
func NewArtifactBase(name string, owner *Person) ArtifactBase {
	b := ArtifactBase{name: name}
	owner.world.record(narrative.KindCreation, b.subject(),
		fmt.Sprintf("%s: creation of the artifact %s by %s!", owner.Location(), name, owner.Name()))
	b.TransferOwnership(owner)
	return b
}

// Name returns the artifact's name.
func (b *ArtifactBase) Name() string {
	return b.name
}

// Owner returns the current owner.
func (b *ArtifactBase) Owner() *Person {
	return b.owner
}

// TransferOwnership makes p the owner.
func (b *ArtifactBase) TransferOwnership(p *Person) {
	b.owner = p
	p.world.record(narrative.KindOwnership, b.subject(),
		fmt.Sprintf("%s owns the artifact %s.", p.Name(), b.name))
}

// Destroy narrates the destruction. It has no other effect.
func (b *ArtifactBase) Destroy() {
	b.owner.world.record(narrative.KindDestroyed, b.subject(),
		fmt.Sprintf("The artifact %s is destroyed.", b.name))
}

func (b *ArtifactBase) subject() string {
	return "artifact:" + b.name
}
