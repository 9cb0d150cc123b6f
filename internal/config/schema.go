// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ringtale Contributors

package config

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"
	jschema "github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// SchemaID is the $id of the config schema.
const SchemaID = "https://ringtale.dev/schemas/config.schema.json"

var (
	schemaOnce  sync.Once
	schemaCache *jschema.Schema
	schemaErr   error
)

// GenerateSchema reflects a JSON Schema from Config.
func GenerateSchema() ([]byte, error) {
	r := jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := r.Reflect(&Config{})
	schema.ID = jsonschema.ID(SchemaID)
	schema.Title = "Ringtale Configuration"
	schema.Description = "Schema for ringtale config.yaml files"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// ValidateSchema validates YAML config data against the config schema.
// An empty document is valid.
func ValidateSchema(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	if doc == nil {
		return nil
	}

	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compiledSchema() (*jschema.Schema, error) {
	schemaOnce.Do(func() {
		var raw []byte
		raw, schemaErr = GenerateSchema()
		if schemaErr != nil {
			return
		}
		var doc any
		if schemaErr = json.Unmarshal(raw, &doc); schemaErr != nil {
			schemaErr = fmt.Errorf("failed to parse schema JSON: %w", schemaErr)
			return
		}
		c := jschema.NewCompiler()
		if schemaErr = c.AddResource("config.schema.json", doc); schemaErr != nil {
			schemaErr = fmt.Errorf("failed to add schema resource: %w", schemaErr)
			return
		}
		schemaCache, schemaErr = c.Compile("config.schema.json")
		if schemaErr != nil {
			schemaErr = fmt.Errorf("failed to compile schema: %w", schemaErr)
		}
	})
	return schemaCache, schemaErr
}
