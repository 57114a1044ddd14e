// Package commonality counts how many distinct machines share the same part,
// either by name or by a branded model fingerprint.
package commonality

import (
	"strings"

	"github.com/you-humble/cimco-parts/internal/model"
	"github.com/you-humble/cimco-parts/internal/normalizer"
)

type Options struct {
	// BrandMarkers gate fingerprint indexing: only descriptions naming one of
	// these vendors are precise enough to match across machines.
	BrandMarkers []string
	// ExcludeCategories are groupings that are not machines, e.g. the spares shelf.
	ExcludeCategories []string
}

func DefaultOptions() Options {
	return Options{
		BrandMarkers:      []string{"DODGE", "TOSHIBA"},
		ExcludeCategories: []string{"WAREHOUSE SPARES"},
	}
}

type Signal string

const (
	SignalNone        Signal = "none"
	SignalName        Signal = "name"
	SignalFingerprint Signal = "fingerprint"
)

type Match struct {
	Count       int
	ByName      int
	BySpec      int
	Fingerprint string
	Signal      Signal
}

type categorySet map[string]struct{}

// Index is built once per run and only read afterwards.
type Index struct {
	byName map[string]categorySet
	bySpec map[string]categorySet
}

func Build(parts []model.NormalizedPart, opts Options) *Index {
	markers := upperAll(opts.BrandMarkers)
	excluded := make(map[string]struct{}, len(opts.ExcludeCategories))
	for _, c := range upperAll(opts.ExcludeCategories) {
		excluded[c] = struct{}{}
	}

	ix := &Index{
		byName: make(map[string]categorySet),
		bySpec: make(map[string]categorySet),
	}

	for _, p := range parts {
		if _, skip := excluded[p.CategoryKey]; skip {
			continue
		}
		add(ix.byName, p.Key, p.CategoryKey)

		if !branded(p.Description, markers) {
			continue
		}
		if fp := normalizer.Fingerprint(p.Description); fp != "" {
			add(ix.bySpec, fp, p.CategoryKey)
		}
	}

	return ix
}

// Count is the number of distinct categories sharing p, at least 1 for an indexed part.
func (ix *Index) Count(p model.NormalizedPart) int {
	return ix.Lookup(p).Count
}

// Lookup looks the fingerprint up for any description; only indexing is brand gated.
func (ix *Index) Lookup(p model.NormalizedPart) Match {
	m := Match{
		ByName:      len(ix.byName[p.Key]),
		Fingerprint: normalizer.Fingerprint(p.Description),
		Signal:      SignalNone,
	}
	if m.Fingerprint != "" {
		m.BySpec = len(ix.bySpec[m.Fingerprint])
	}

	switch {
	case m.BySpec > m.ByName:
		m.Count, m.Signal = m.BySpec, SignalFingerprint
	case m.ByName > 0:
		m.Count, m.Signal = m.ByName, SignalName
	}

	return m
}

func (ix *Index) Names() int { return len(ix.byName) }

func (ix *Index) Fingerprints() int { return len(ix.bySpec) }

func add(idx map[string]categorySet, key, category string) {
	set, ok := idx[key]
	if !ok {
		set = make(categorySet)
		idx[key] = set
	}
	set[category] = struct{}{}
}

func upperAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func branded(desc string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(desc, m) {
			return true
		}
	}
	return false
}
