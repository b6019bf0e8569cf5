package extract

// TraceEvent records one match or skip decision made by the engine.
// Callers enable tracing to audit why a row did or did not yield a record.
type TraceEvent struct {
	Stage     string   // "resolve", "split", "merge", "heuristic", "dedup"
	Outcome   string   // e.g. "exact", "substring", "fuzzy", "accepted", "no-value", "below-threshold", "duplicate"
	Row       []string // tokens of the row under consideration
	Label     string   // label text being resolved, if any
	Alias     string   // alias that matched or scored best, if any
	Parameter string   // canonical parameter involved, if resolved
	Score     int      // similarity score, when a scorer was consulted
	Section   string   // section context of the row
}

// TraceFunc receives engine decisions. A nil TraceFunc disables tracing;
// the hook must not retain or mutate the event's Row slice.
type TraceFunc func(TraceEvent)

func (e *Engine) trace(ev TraceEvent) {
	if e.traceFn != nil {
		e.traceFn(ev)
	}
}
