// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ringtale Contributors

//go:build integration

package scenario_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ringtale/ringtale/internal/config"
	"github.com/ringtale/ringtale/internal/narrative"
	"github.com/ringtale/ringtale/internal/scenario"
	"github.com/ringtale/ringtale/internal/world"
)

var _ = Describe("The story of the unique ring", func() {
	var logger *slog.Logger

	BeforeEach(func() {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	})

	Describe("playing the scripted story", func() {
		var (
			out   bytes.Buffer
			chron *narrative.Chronicle
			m     *scenario.Metrics
		)

		BeforeEach(func() {
			out.Reset()
			m = scenario.NewMetrics(prometheus.NewRegistry())
			var err error
			chron, err = scenario.New(
				scenario.WithLogger(logger),
				scenario.WithMetrics(m),
			).Run(context.Background(), &out)
			Expect(err).NotTo(HaveOccurred())
		})

		It("prints the story line by line", func() {
			Expect(out.String()).To(Equal(`-1-
Le Mont du Destin: creation of the artifact unique by Sauron!
Sauron owns the artifact unique.
-2-
Sauron is all-powerful!
-3-
Frodo owns the artifact unique.
-4-
Frodo becomes invisible!
-5-
La Comté: Frodo attempts to destroy the unique artifact...
The unique artifact can only be destroyed where it was created.
-6-
Frodo moves to: Le Mont du Destin
-7-
Le Mont du Destin: Frodo attempts to destroy the unique artifact...
The artifact unique is destroyed.
Sauron dies!
---
`))
		})

		It("keeps the transcript in record order", func() {
			entries := chron.Entries()
			Expect(entries).To(HaveLen(19))
			for i, e := range entries {
				Expect(e.Seq).To(Equal(i + 1))
			}
		})

		It("leaves only Frodo alive", func() {
			Expect(testutil.ToFloat64(m.LivingPersons)).To(BeNumerically("==", 1))
		})
	})

	Describe("the ring on its own", func() {
		var (
			chron  *narrative.Chronicle
			w      *world.World
			frodo  *world.Person
			sauron *world.Antagonist
			ring   *world.UniqueRing
		)

		BeforeEach(func() {
			chron = narrative.New(nil)
			w = world.New(chron)
			frodo = w.NewPerson("Frodo", world.Homeland)
			sauron = w.NewAntagonist("Sauron", world.MountOfDoom)
			ring = sauron.UniqueArtifact()
		})

		Context("when a failed destroy is repeated", func() {
			It("never touches the living registry", func() {
				ring.TransferOwnership(frodo)
				for range 3 {
					ring.Destroy()
				}
				Expect(w.Registry().Names()).To(Equal([]string{"Frodo", "Sauron"}))
			})
		})

		Context("when the creator walks away after forging", func() {
			It("keeps the original creation place", func() {
				sauron.Relocate(world.Homeland)
				Expect(sauron.UniqueArtifact().CreationLocation()).To(Equal(world.MountOfDoom))
			})
		})

		Context("when destroyed where it was forged", func() {
			It("removes the creator from the registry once even if destroyed again", func() {
				ring.TransferOwnership(frodo)
				frodo.Relocate(world.MountOfDoom)
				ring.Destroy()
				ring.Destroy()

				deaths := 0
				for _, e := range chron.Entries() {
					if e.Kind == narrative.KindDeath {
						deaths++
					}
				}
				Expect(deaths).To(Equal(2), "the death line is narrated per destroy")
				Expect(w.Registry().Names()).To(Equal([]string{"Frodo"}))
			})
		})
	})

	Describe("configuration", func() {
		It("loads a farewell config file and plays accordingly", func() {
			dir := GinkgoT().TempDir()
			GinkgoT().Setenv("XDG_CONFIG_HOME", dir)
			path := filepath.Join(dir, "ringtale", config.FileName)
			Expect(os.MkdirAll(filepath.Dir(path), 0o700)).To(Succeed())
			Expect(os.WriteFile(path, []byte("farewell: true\n"), 0o600)).To(Succeed())

			cfg, err := config.Load("", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Farewell).To(BeTrue())

			chron, err := scenario.New(
				scenario.WithLogger(logger),
				scenario.WithFarewell(cfg.Farewell),
			).Run(context.Background(), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(chron.Lines()).To(ContainElement("Sauron joins the great cosmic void."))
		})
	})
})
