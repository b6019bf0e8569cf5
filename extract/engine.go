// Package extract turns positioned OCR words from a tabular lab report into
// structured {parameter, value, unit, range} records. The engine is
// report-agnostic; everything report-specific lives in a ReportConfig.
package extract

import "strings"

// Record is one extracted lab result. Value preserves the report's original
// numeric formatting; Unit and Range may come from canonical metadata when
// the report did not yield them.
type Record struct {
	Parameter string `json:"parameter"`
	Value     string `json:"value"`
	Unit      string `json:"unit"`
	Range     string `json:"range"`
}

// Engine runs the extraction pipeline for one report type. It is safe for
// concurrent use: the config and derived tables are read-only after New.
type Engine struct {
	cfg     *ReportConfig
	entries []aliasEntry
	triples []aliasTriple
	traceFn TraceFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithTrace installs a hook receiving every match/skip decision.
func WithTrace(fn TraceFunc) Option {
	return func(e *Engine) {
		e.traceFn = fn
	}
}

// New builds an engine for the given report configuration.
func New(cfg *ReportConfig, opts ...Option) *Engine {
	e := &Engine{
		cfg:     cfg,
		entries: cfg.aliasEntries(),
		triples: buildTriples(cfg),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract runs the full pipeline over one document's tokens and returns the
// extracted records in first-seen order, deduplicated by canonical
// parameter name. An empty or unrecognizable document yields an empty list,
// never an error: failure to recognize a label is a skip, not a fault.
func (e *Engine) Extract(tokens []PositionedToken) []Record {
	rows := BuildRows(tokens)
	ClassifySections(rows, e.cfg)
	rows = MergeSplitRows(rows, e.cfg)

	var extracted []Record
	for i := range rows {
		row := rows[i]
		var next *Row
		if i+1 < len(rows) {
			next = &rows[i+1]
		}

		// Protein rows stay data rows even when the keyword set tags
		// them as headers.
		if row.IsHeader && !isProteinRow(row) {
			continue
		}

		if rec := e.bilirubinRecord(row, next); rec != nil {
			extracted = append(extracted, *rec)
			continue
		}
		if rec := e.totalProteinRecord(row, next); rec != nil {
			extracted = append(extracted, *rec)
			continue
		}

		if recs := e.splitRow(row); len(recs) > 0 {
			extracted = append(extracted, recs...)
			continue
		}
		if rec := e.parseRow(row); rec != nil {
			extracted = append(extracted, *rec)
		}
	}

	records, seen := e.dedupe(extracted)

	if rec := e.ggtLookbehind(rows, seen); rec != nil {
		records = append(records, *rec)
		seen["ggt"] = true
		seen["gamma gt"] = true
	}
	if rec := e.totalProteinsLookahead(rows, seen); rec != nil {
		records = append(records, *rec)
		seen["total proteins"] = true
	}

	for i := range records {
		e.backfill(&records[i])
	}

	if records == nil {
		records = []Record{}
	}
	return records
}

// dedupe keeps the first occurrence of each canonical parameter name,
// case-insensitively. Scan order is part of the contract, so later
// duplicates (for example a heuristic re-finding a split result) lose.
func (e *Engine) dedupe(records []Record) ([]Record, map[string]bool) {
	seen := make(map[string]bool, len(records))
	deduped := make([]Record, 0, len(records))
	for _, rec := range records {
		key := strings.ToLower(rec.Parameter)
		if seen[key] {
			e.trace(TraceEvent{Stage: "dedup", Outcome: "duplicate", Parameter: rec.Parameter})
			continue
		}
		seen[key] = true
		deduped = append(deduped, rec)
	}
	return deduped, seen
}

// backfill fills an empty unit or range from canonical parameter metadata.
// Observed values are never overwritten.
func (e *Engine) backfill(rec *Record) {
	meta := e.cfg.metadataFor(rec.Parameter)
	if rec.Unit == "" {
		rec.Unit = meta.Unit
	}
	if rec.Range == "" {
		rec.Range = meta.Range
	}
}
