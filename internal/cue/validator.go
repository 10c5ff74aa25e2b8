// Package cue validates diagnostics snapshots against the embedded CUE
// schema before the error store trusts their contents.
package cue

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	yamlv3 "gopkg.in/yaml.v3"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// ValidationError describes one schema violation in a snapshot file.
type ValidationError struct {
	File    string
	Message string
}

// Validator handles CUE validation of snapshot data.
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}
}

// LoadSchemas compiles all CUE schema files from the embedded filesystem.
func (v *Validator) LoadSchemas() error {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return fmt.Errorf("could not read embedded schemas: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile(filepath.Join("schemas", entry.Name()))
		if err != nil {
			continue
		}

		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if inst.Err() != nil {
			continue
		}

		// snapshot.cue -> snapshot
		schemaName := entry.Name()[:len(entry.Name())-4]
		v.schemas[schemaName] = inst.Value()
	}

	if len(v.schemas) == 0 {
		return fmt.Errorf("no CUE schemas loaded")
	}
	return nil
}

// ValidateSnapshot validates decoded snapshot data against the snapshot
// schema. A nil error with a non-empty slice means the data is malformed;
// a non-nil error means validation itself could not run.
func (v *Validator) ValidateSnapshot(file string, data map[string]any) ([]ValidationError, error) {
	schema, ok := v.schemas["snapshot"]
	if !ok {
		return nil, nil
	}
	return v.validateAgainstSchema(schema, file, data, "snapshot")
}

// validateAgainstSchema unifies data with the named #Definition in the schema
// and checks concreteness so required fields are enforced.
func (v *Validator) validateAgainstSchema(schema cue.Value, file string, data map[string]any, schemaType string) ([]ValidationError, error) {
	dataValue := v.ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return nil, fmt.Errorf("error encoding data: %w", encErr)
	}

	defPath := cue.ParsePath(fmt.Sprintf("#%s", strings.ToUpper(schemaType[:1])+schemaType[1:]))
	def := schema.LookupPath(defPath)
	if !def.Exists() {
		return nil, nil
	}

	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return extractErrorsFromCUE(err, file), nil
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return extractErrorsFromCUE(err, file), nil
	}
	return nil, nil
}

func extractErrorsFromCUE(err error, file string) []ValidationError {
	return []ValidationError{{
		File:    file,
		Message: fmt.Sprintf("schema validation failed: %v", err),
	}}
}

// DecodeYAML decodes a YAML snapshot document into the generic shape the
// validator consumes.
func DecodeYAML(content []byte) (map[string]any, error) {
	var data map[string]any
	if err := yamlv3.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("error parsing snapshot YAML: %w", err)
	}
	if data == nil {
		data = make(map[string]any)
	}
	return data, nil
}
