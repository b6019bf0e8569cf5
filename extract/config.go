package extract

import (
	"fmt"
	"strings"
)

// Parameter is one canonical lab parameter together with its known alias
// spellings. Aliases are matched case-insensitively.
type Parameter struct {
	Name    string
	Aliases []string
}

// Metadata carries the canonical fallback unit and reference range for a
// parameter. It is only used to backfill fields the report did not yield.
type Metadata struct {
	Unit  string
	Range string
}

// UnitFix maps a known OCR corruption to the canonical unit spelling.
// Fixes are applied in order; the first whose Match substring is found wins.
type UnitFix struct {
	Match     string
	Canonical string
}

// ReportConfig parameterizes the extraction engine for one report type.
// Parameters is an ordered slice, not a map: substring and fuzzy tie-breaks
// follow construction order, so iteration order is part of the contract.
type ReportConfig struct {
	Name           string
	Parameters     []Parameter
	Metadata       map[string]Metadata
	HeaderKeywords []string
	ValidUnits     []string
	UnitFixes      []UnitFix

	// FuzzyThreshold is the acceptance score for fuzzy label resolution
	// when the label is longer than three characters. Shorter labels
	// always require shortLabelThreshold.
	FuzzyThreshold int
}

// Fuzzy acceptance thresholds. These are part of the observable contract;
// retune only with regression coverage over a real report corpus.
const (
	shortLabelThreshold = 90
	spanMatchThreshold  = 80
)

// aliasEntry is one (alias, canonical name) pair in table order.
type aliasEntry struct {
	alias string // lowercased
	name  string
}

// aliasEntries returns every (alias, name) pair in construction order.
func (c *ReportConfig) aliasEntries() []aliasEntry {
	entries := make([]aliasEntry, 0, len(c.Parameters)*4)
	for _, p := range c.Parameters {
		for _, a := range p.Aliases {
			entries = append(entries, aliasEntry{alias: strings.ToLower(a), name: p.Name})
		}
	}
	return entries
}

// aliasSet returns the lowercased set of every known alias.
func (c *ReportConfig) aliasSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, p := range c.Parameters {
		for _, a := range p.Aliases {
			set[strings.ToLower(a)] = struct{}{}
		}
	}
	return set
}

// hasParameter reports whether name is a canonical parameter of this report
// type. Recovery heuristics gate on it so the engine stays report-agnostic.
func (c *ReportConfig) hasParameter(name string) bool {
	for _, p := range c.Parameters {
		if p.Name == name {
			return true
		}
	}
	return false
}

// metadataFor returns the canonical fallback metadata for name, or zero
// values when the parameter has no recorded defaults.
func (c *ReportConfig) metadataFor(name string) Metadata {
	return c.Metadata[name]
}

// ConfigFor returns the built-in configuration for a report type.
func ConfigFor(reportType string) (*ReportConfig, error) {
	switch strings.ToLower(reportType) {
	case "cbc":
		return CBCConfig(), nil
	case "lft":
		return LFTConfig(), nil
	default:
		return nil, fmt.Errorf("unknown report type: %s", reportType)
	}
}
