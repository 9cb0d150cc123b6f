// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ringtale Contributors

// Package scenario drives the fixed story of the unique ring.
package scenario

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ringtale/ringtale/internal/narrative"
	"github.com/ringtale/ringtale/internal/world"
)

const tracerName = "github.com/ringtale/ringtale/internal/scenario"

// Separator closes the trace.
const Separator = "---"

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithTracer sets the tracer. Defaults to the global provider's tracer.
func WithTracer(t trace.Tracer) Option {
	return func(r *Runner) {
		r.tracer = t
	}
}

// WithMetrics records run metrics.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) {
		r.metrics = m
	}
}

// WithFarewell narrates a farewell after each death.
func WithFarewell(enabled bool) Option {
	return func(r *Runner) {
		r.farewell = enabled
	}
}

// Runner plays the story.
type Runner struct {
	logger   *slog.Logger
	tracer   trace.Tracer
	metrics  *Metrics
	farewell bool
}

// New creates a runner.
func New(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.tracer == nil {
		r.tracer = otel.Tracer(tracerName)
	}
	return r
}

// step is one labelled beat of the story.
type step struct {
	label string
	run   func()
}

// Run plays the story, writing every line to out, and returns the chronicle.
// The returned error is only ever a failure to write to out; the story
// itself always runs to the end.
func (r *Runner) Run(ctx context.Context, out io.Writer) (*narrative.Chronicle, error) {
	ctx, span := r.tracer.Start(ctx, "scenario.run")
	defer span.End()

	chron := narrative.New(out)
	stepCtx := ctx
	chron.Subscribe(narrative.ObserverFunc(func(e narrative.Entry) {
		r.logger.DebugContext(stepCtx, "narrated",
			"seq", e.Seq,
			"kind", e.Kind,
			"subject", e.Subject,
			"text", e.Text,
		)
	}))
	if r.metrics != nil {
		r.metrics.RunsTotal.Inc()
		chron.Subscribe(r.metrics)
	}

	w := world.New(chron, world.WithFarewell(r.farewell))
	frodo := w.NewPerson("Frodo", world.Homeland)
	sauron := w.NewAntagonist("Sauron", world.MountOfDoom)
	r.logger.InfoContext(ctx, "scenario started", "living", w.Registry().Names())

	var ring world.Artifact
	steps := []step{
		{"-1-", func() { ring = sauron.UniqueArtifact() }},
		{"-2-", func() { ring.Use() }},
		{"-3-", func() { ring.TransferOwnership(frodo) }},
		{"-4-", func() { ring.Use() }},
		{"-5-", func() { ring.Destroy() }},
		{"-6-", func() { frodo.Relocate(world.MountOfDoom) }},
		{"-7-", func() { ring.Destroy() }},
	}

	for _, s := range steps {
		var stepSpan trace.Span
		stepCtx, stepSpan = r.tracer.Start(ctx, "scenario.step",
			trace.WithAttributes(attribute.String("step.label", s.label)))
		chron.Record(narrative.KindStep, "", s.label)
		s.run()
		if r.metrics != nil {
			r.metrics.LivingPersons.Set(float64(w.Registry().Len()))
		}
		stepSpan.End()
	}
	stepCtx = ctx
	chron.Record(narrative.KindStep, "", Separator)

	r.logger.InfoContext(ctx, "scenario finished",
		"entries", len(chron.Entries()),
		"living", w.Registry().Names(),
	)

	if err := chron.Err(); err != nil {
		span.RecordError(err)
		return chron, err
	}
	return chron, nil
}
