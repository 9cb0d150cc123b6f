// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ringtale Contributors

// Package narrative records the ordered trace of a story run.
package narrative

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Kind identifies what a trace line narrates.
type Kind string

// Entry kinds.
const (
	KindStep           Kind = "step"
	KindCreation       Kind = "creation"
	KindOwnership      Kind = "ownership"
	KindUse            Kind = "use"
	KindDestroyAttempt Kind = "destroy_attempt"
	KindDestroyRefused Kind = "destroy_refused"
	KindDestroyed      Kind = "destroyed"
	KindMove           Kind = "move"
	KindDeath          Kind = "death"
	KindFarewell       Kind = "farewell"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Entry is one line of the trace.
type Entry struct {
	ID      ulid.ULID `json:"id" yaml:"id"`
	Seq     int       `json:"seq" yaml:"seq"`
	Kind    Kind      `json:"kind" yaml:"kind"`
	Subject string    `json:"subject,omitempty" yaml:"subject,omitempty"` // e.g. "person:Frodo", "artifact:unique"
	Text    string    `json:"text" yaml:"text"`
	Time    time.Time `json:"time" yaml:"time"`
}

var (
	entropy     = ulid.Monotonic(rand.Reader, 0)
	entropyLock sync.Mutex
)

// NewID generates a new monotonic ULID.
func NewID() ulid.ULID {
	entropyLock.Lock()
	defer entropyLock.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
}
