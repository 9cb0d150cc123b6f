// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ringtale Contributors

package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/ringtale/ringtale/internal/config"
	"github.com/ringtale/ringtale/internal/logging"
	"github.com/ringtale/ringtale/internal/narrative"
	"github.com/ringtale/ringtale/internal/scenario"
	"github.com/ringtale/ringtale/internal/xdg"
	"github.com/ringtale/ringtale/pkg/errutil"
)

const serviceName = "ringtale"

// NewRootCmd creates the root command. Running it plays the story.
func NewRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "ringtale",
		Short: "Ringtale - the story of the unique ring",
		Long: `Ringtale plays the fixed story of the unique ring: who forges it,
who bears it, and where it can be destroyed. The story is printed line by
line on standard output.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStory(cmd, configFile)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "config file path (default: XDG_CONFIG_HOME/ringtale/config.yaml)")
	config.RegisterFlags(cmd.Flags())

	cmd.AddCommand(NewSchemaCmd())
	cmd.AddCommand(NewPlacesCmd())

	return cmd
}

func runStory(cmd *cobra.Command, configFile string) error {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		errutil.LogError(logging.Setup(serviceName, version, "text", slog.LevelError, cmd.ErrOrStderr()), "failed to load config", err)
		return err
	}

	// Validate already accepted the level.
	level, _ := logging.ParseLevel(cfg.Log.Level)
	logger := logging.SetDefault(serviceName, version, cfg.Log.Format, level, cmd.ErrOrStderr())

	reg := prometheus.NewRegistry()
	runner := scenario.New(
		scenario.WithLogger(logger),
		scenario.WithMetrics(scenario.NewMetrics(reg)),
		scenario.WithFarewell(cfg.Farewell),
	)

	chron, err := runner.Run(cmd.Context(), cmd.OutOrStdout())
	if err != nil {
		errutil.LogError(logger, "failed to write story", err)
		return err
	}

	if cfg.Transcript.Path != "" {
		if err := writeTranscript(cfg.Transcript.Path, narrative.Format(cfg.Transcript.Format), chron.Entries()); err != nil {
			errutil.LogError(logger, "failed to write transcript", err)
			return err
		}
		logger.Info("transcript written", "path", cfg.Transcript.Path, "format", cfg.Transcript.Format)
	}

	if cfg.Metrics {
		if err := dumpMetrics(cmd.ErrOrStderr(), reg); err != nil {
			errutil.LogError(logger, "failed to dump metrics", err)
			return err
		}
	}
	return nil
}

// writeTranscript exports entries to a temporary file next to path and
// renames it into place, so a failed export never leaves a partial file.
func writeTranscript(path string, format narrative.Format, entries []narrative.Entry) error {
	dir := filepath.Dir(path)
	if err := xdg.EnsureDir(dir); err != nil {
		return oops.Code("TRANSCRIPT_WRITE_FAILED").With("path", path).Wrap(err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return oops.Code("TRANSCRIPT_WRITE_FAILED").With("path", path).Wrap(err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if err := narrative.Export(tmp, entries, format); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return oops.Code("TRANSCRIPT_WRITE_FAILED").With("path", path).Wrap(err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return oops.Code("TRANSCRIPT_WRITE_FAILED").With("path", path).Wrap(err)
	}
	return nil
}

func dumpMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return oops.Code("METRICS_GATHER_FAILED").Wrap(err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return oops.Code("METRICS_GATHER_FAILED").With("metric", mf.GetName()).Wrap(err)
		}
	}
	return nil
}
