// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ringtale Contributors

package narrative

import (
	"encoding/json"
	"io"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

// Format names a transcript export encoding.
type Format string

// Supported export formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// transcript is the exported document.
type transcript struct {
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Export writes entries to w in the given format.
func Export(w io.Writer, entries []Entry, format Format) error {
	doc := transcript{Entries: entries}
	if doc.Entries == nil {
		doc.Entries = []Entry{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return oops.Code("TRANSCRIPT_WRITE_FAILED").With("format", format).Wrap(err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return oops.Code("TRANSCRIPT_WRITE_FAILED").With("format", format).Wrap(err)
		}
		if err := enc.Close(); err != nil {
			return oops.Code("TRANSCRIPT_WRITE_FAILED").With("format", format).Wrap(err)
		}
	default:
		return oops.Code("TRANSCRIPT_FORMAT_UNKNOWN").
			With("format", format).
			Errorf("unknown transcript format %q", format)
	}
	return nil
}

// Decode reads a transcript previously written by Export.
func Decode(r io.Reader, format Format) ([]Entry, error) {
	var doc transcript
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, oops.Code("TRANSCRIPT_READ_FAILED").With("format", format).Wrap(err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, oops.Code("TRANSCRIPT_READ_FAILED").With("format", format).Wrap(err)
		}
	default:
		return nil, oops.Code("TRANSCRIPT_FORMAT_UNKNOWN").
			With("format", format).
			Errorf("unknown transcript format %q", format)
	}
	return doc.Entries, nil
}
