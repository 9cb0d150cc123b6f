// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ringtale Contributors

package narrative

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/samber/oops"
)

// Observer is notified synchronously of every recorded entry, in order.
type Observer interface {
	Observe(entry Entry)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(entry Entry)

// Observe calls f(entry).
func (f ObserverFunc) Observe(entry Entry) {
	f(entry)
}

// Chronicle keeps the ordered transcript of a run and writes each line as it
// is recorded.
type Chronicle struct {
	mu        sync.Mutex
	w         io.Writer
	entries   []Entry
	observers []Observer
	err       error
	now       func() time.Time
}

// New creates a chronicle that writes lines to w.
// If w is nil, lines are only kept in memory.
func New(w io.Writer) *Chronicle {
	if w == nil {
		w = io.Discard
	}
	return &Chronicle{
		w:   w,
		now: time.Now,
	}
}

// Subscribe registers an observer for entries recorded from now on.
func (c *Chronicle) Subscribe(o Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, o)
}

// Record appends an entry and writes its text as one line.
//
// Write failures never interrupt the story. The first one is kept and
// reported by Err; later lines are still appended to the transcript.
func (c *Chronicle) Record(kind Kind, subject, text string) {
	c.mu.Lock()
	entry := Entry{
		ID:      NewID(),
		Seq:     len(c.entries) + 1,
		Kind:    kind,
		Subject: subject,
		Text:    text,
		Time:    c.now(),
	}
	c.entries = append(c.entries, entry)
	if c.err == nil {
		if _, err := fmt.Fprintln(c.w, text); err != nil {
			c.err = oops.Code("TRACE_WRITE_FAILED").
				With("seq", entry.Seq).
				With("kind", kind).
				Wrap(err)
		}
	}
	observers := make([]Observer, len(c.observers))
	copy(observers, c.observers)
	c.mu.Unlock()

	for _, o := range observers {
		o.Observe(entry)
	}
}

// Entries returns a copy of the transcript.
func (c *Chronicle) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lines returns the text of every entry in order.
func (c *Chronicle) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	lines := make([]string, len(c.entries))
	for i, e := range c.entries {
		lines[i] = e.Text
	}
	return lines
}

// Err returns the first write error, if any.
func (c *Chronicle) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}
