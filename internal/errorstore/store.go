// Package errorstore loads the per-document diagnostics snapshot a lint
// engine exports and serves read-only views of it. The store never caches
// across commands: each command invocation loads a fresh snapshot, matching
// the lint-pass lifecycle of the data.
package errorstore

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	cueval "lintnav/internal/cue"
	"lintnav/internal/types"
)

// ErrorMap maps a 0-based line number to the diagnostics on that line.
// Producers do not guarantee column order within a line; consumers that need
// it sort.
type ErrorMap map[int][]types.Diagnostic

// Lines returns the map's keys in ascending order.
func (m ErrorMap) Lines() []int {
	lines := make([]int, 0, len(m))
	for line := range m {
		lines = append(lines, line)
	}
	sort.Ints(lines)
	return lines
}

// snapshot mirrors the YAML layout the lint engine writes.
type snapshot struct {
	Version   int `yaml:"version"`
	Documents []struct {
		File        string `yaml:"file"`
		Diagnostics []struct {
			Line     int    `yaml:"line"`
			Column   int    `yaml:"column"`
			Message  string `yaml:"message"`
			Severity string `yaml:"severity"`
		} `yaml:"diagnostics"`
	} `yaml:"documents"`
}

// Store is a read snapshot of every document's diagnostics.
type Store struct {
	docs map[string]ErrorMap
}

// Load reads and validates a snapshot file. Schema violations are load
// errors: a malformed snapshot is never partially trusted.
func Load(path string) (*Store, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading snapshot: %w", err)
	}

	data, err := cueval.DecodeYAML(content)
	if err != nil {
		return nil, err
	}

	validator := cueval.NewValidator()
	if err := validator.LoadSchemas(); err != nil {
		return nil, err
	}
	issues, err := validator.ValidateSnapshot(path, data)
	if err != nil {
		return nil, err
	}
	if len(issues) > 0 {
		return nil, fmt.Errorf("invalid snapshot %s: %s", path, issues[0].Message)
	}

	var snap snapshot
	if err := yaml.Unmarshal(content, &snap); err != nil {
		return nil, fmt.Errorf("error parsing snapshot: %w", err)
	}

	store := &Store{docs: make(map[string]ErrorMap)}
	for _, doc := range snap.Documents {
		m := store.docs[doc.File]
		if m == nil {
			m = make(ErrorMap)
			store.docs[doc.File] = m
		}
		for _, d := range doc.Diagnostics {
			sev := d.Severity
			if sev == "" {
				sev = types.SeverityError
			}
			m[d.Line] = append(m[d.Line], types.Diagnostic{
				Line:     d.Line,
				Column:   d.Column,
				Message:  d.Message,
				Severity: sev,
			})
		}
	}
	return store, nil
}

// Get returns the document's diagnostics, or an empty map if it has none.
func (s *Store) Get(document string) ErrorMap {
	if m, ok := s.docs[document]; ok {
		return m
	}
	return ErrorMap{}
}

// HasDiagnostics is the capability check the navigation commands gate on.
func (s *Store) HasDiagnostics(document string) bool {
	return len(s.docs[document]) > 0
}

// Documents returns every document in the snapshot that has at least one
// diagnostic, in ascending path order.
func (s *Store) Documents() []string {
	docs := make([]string, 0, len(s.docs))
	for doc, m := range s.docs {
		if len(m) > 0 {
			docs = append(docs, doc)
		}
	}
	sort.Strings(docs)
	return docs
}
