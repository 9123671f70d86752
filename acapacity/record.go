package acapacity

// Span is a contiguous half-open integer interval [Begin, End) consumed by
// one AllocationRecord, expressed in absolute resolution units from epoch.
type Span struct {
	Begin int64 `json:"begin"`
	End   int64 `json:"end"`
}

// Length returns the span's unit count.
func (s Span) Length() int64 { return s.End - s.Begin }

// AllocationRecord is an immutable description of one allocation's spans on
// one resource. It is self-sufficient for Release: the caller never needs
// to keep anything beyond the record itself.
type AllocationRecord struct {
	OperationID string `json:"operationId"`
	ResourceID  string `json:"resourceId"`
	Start       int64  `json:"start"`      // absolute first occupied unit
	Finish      int64  `json:"finish"`     // one past the last occupied unit
	WorkUnits   int    `json:"workUnits"`
	AllowSplit  bool   `json:"allowSplit"`
	Spans       []Span `json:"spans"` // ordered, non-overlapping, strictly increasing
}

// WallTime returns Finish - Start, the record's overall wall-clock span in
// resolution units, including any gaps between non-contiguous spans.
func (r *AllocationRecord) WallTime() int64 {
	return r.Finish - r.Start
}

// cloneSpans returns a copy of spans, independent of later mutation of the
// caller's slice.
func cloneSpans(spans []Span) []Span {
	out := make([]Span, len(spans))
	copy(out, spans)
	return out
}
