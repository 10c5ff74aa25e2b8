// Package report builds the whole-project lint report: one background worker
// formats each document's diagnostics and a shared aggregator appends the
// fragments to the output buffer, fragment-atomic.
package report

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"lintnav/internal/errorstore"
	"lintnav/internal/types"
)

// Scope controls which documents feed the report.
type Scope string

const (
	ScopeFiles   Scope = "files"   // documents present in the snapshot
	ScopeFolders Scope = "folders" // documents found by walking folders
	ScopeBoth    Scope = "both"
)

// ParseScope validates a --on argument.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeFiles, ScopeFolders, ScopeBoth:
		return Scope(s), nil
	}
	return "", fmt.Errorf("unsupported report scope: %s", s)
}

// Aggregator collects per-document report fragments into one buffer. Appends
// are serialized, so fragments from different workers are never interleaved
// mid-fragment; global order across documents is worker-completion order and
// is deliberately not deterministic.
type Aggregator struct {
	mu  sync.Mutex
	buf strings.Builder
}

// Append writes one fragment atomically.
func (a *Aggregator) Append(document, fragment string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.buf.WriteString(fragment)
}

// String returns everything appended so far.
func (a *Aggregator) String() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.buf.String()
}

// FormatDocument renders one document's fragment: a basename header followed
// by one "  line: message" row per diagnostic, lines ascending, columns
// ascending within a line. Documents with no diagnostics yield "".
func FormatDocument(document string, errs errorstore.ErrorMap) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s:\n", filepath.Base(document))

	for _, line := range errs.Lines() {
		for _, d := range sortedByColumn(errs[line]) {
			fmt.Fprintf(&b, "  %d: %s\n", line, d.Message)
		}
	}
	return b.String()
}

func sortedByColumn(diags []types.Diagnostic) []types.Diagnostic {
	sorted := make([]types.Diagnostic, len(diags))
	copy(sorted, diags)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Column < sorted[j].Column
	})
	return sorted
}

// Runner fans document formatting out to background workers so a large
// snapshot does not block the caller's thread, then drains into a shared
// aggregator.
type Runner struct {
	Store       *errorstore.Store
	Concurrency int
	// DiscoverFolder enumerates candidate files under a folder for the
	// folders scope. Wired to discovery.Walker by the command surface.
	DiscoverFolder func(folder string) ([]string, error)
}

// Run produces the report text for the given scope. folders is only
// consulted for ScopeFolders and ScopeBoth.
func (r *Runner) Run(scope Scope, folders []string) (string, error) {
	docs, err := r.collect(scope, folders)
	if err != nil {
		return "", err
	}

	agg := &Aggregator{}
	var g errgroup.Group
	if r.Concurrency > 0 {
		g.SetLimit(r.Concurrency)
	}

	for _, doc := range docs {
		g.Go(func() error {
			fragment := FormatDocument(doc, r.Store.Get(doc))
			if fragment != "" {
				agg.Append(doc, fragment)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	return agg.String(), nil
}

// collect resolves the scope to a deduplicated document list.
func (r *Runner) collect(scope Scope, folders []string) ([]string, error) {
	seen := make(map[string]bool)
	var docs []string
	add := func(doc string) {
		if !seen[doc] {
			seen[doc] = true
			docs = append(docs, doc)
		}
	}

	if scope == ScopeFiles || scope == ScopeBoth {
		for _, doc := range r.Store.Documents() {
			add(doc)
		}
	}

	if scope == ScopeFolders || scope == ScopeBoth {
		if r.DiscoverFolder == nil {
			return docs, nil
		}
		for _, folder := range folders {
			files, err := r.DiscoverFolder(folder)
			if err != nil {
				return nil, fmt.Errorf("error walking %s: %w", folder, err)
			}
			for _, f := range files {
				if r.Store.HasDiagnostics(f) {
					add(f)
				}
			}
		}
	}
	return docs, nil
}
