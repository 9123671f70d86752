package ajson

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
	"github.com/jpfluger/schedprim/acalendar"
	"github.com/jpfluger/schedprim/acapacity"
	"github.com/jpfluger/schedprim/atime"
)

// RuleRow is one weekly-rule row of the portability fixture schema (spec §6).
// Primary key is (PatternID, DayOfWeek, StartTime).
type RuleRow struct {
	PatternID string `json:"pattern_id" validate:"required"`
	DayOfWeek int    `json:"day_of_week" validate:"required,min=1,max=7"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// ExceptionRow is one dated-exception row. Primary key is (PatternID,
// ExceptionDate, IsWorking, StartTime).
type ExceptionRow struct {
	PatternID     string  `json:"pattern_id" validate:"required"`
	ExceptionDate string  `json:"exception_date" validate:"required"`
	IsWorking     int     `json:"is_working" validate:"oneof=0 1"`
	StartTime     *string `json:"start_time,omitempty"`
	EndTime       *string `json:"end_time,omitempty"`
}

// FixtureSpan is one (begin, end) RFC3339 pair an expected find_slot result
// allocates, in order.
type FixtureSpan struct {
	Begin string `json:"begin"`
	End   string `json:"end"`
}

// ExpectedRow describes one query against PatternID and its literal expected
// result. Only the fields relevant to Op are populated by a given row; the
// rest are left zero.
type ExpectedRow struct {
	Op              string        `json:"op" validate:"required,oneof=add_units subtract_units working_units_between find_slot allocate"`
	PatternID       string        `json:"pattern_id" validate:"required"`
	Start           string        `json:"start,omitempty"`
	End             string        `json:"end,omitempty"`
	EarliestStart   string        `json:"earliest_start,omitempty"`
	Units           int64         `json:"units,omitempty"`
	WorkUnits       int           `json:"work_units,omitempty"`
	AllowSplit      bool          `json:"allow_split,omitempty"`
	MinSplit        int           `json:"min_split,omitempty"`
	Deadline        string        `json:"deadline,omitempty"`
	ExpectResult    string        `json:"expect_result,omitempty"`
	ExpectUnits     *int64        `json:"expect_units,omitempty"`
	ExpectSpans     []FixtureSpan `json:"expect_spans,omitempty"`
	ExpectFreeAfter *int          `json:"expect_free_after,omitempty"`
}

// FixtureDocument is one portability fixture: a schema version, a shared
// epoch/resolution/horizon for any engine-backed rows, and the rules/
// exceptions/expected tables of spec §6.
type FixtureDocument struct {
	SchemaVersion     string `json:"schema_version" validate:"required"`
	Epoch             string `json:"epoch" validate:"required"`
	HorizonStart      string `json:"horizon_start,omitempty"`
	HorizonEnd        string `json:"horizon_end,omitempty"`
	ResolutionSeconds int64  `json:"resolution_seconds,omitempty"`

	Rules      []RuleRow      `json:"rules" validate:"dive"`
	Exceptions []ExceptionRow `json:"exceptions" validate:"dive"`
	Expected   []ExpectedRow  `json:"expected" validate:"dive"`
}

// FixtureResult is the outcome of running one FixtureDocument's expected
// rows against freshly-built patterns/engines.
type FixtureResult struct {
	total    int
	failed   int
	Failures []string
}

// Passed reports whether every expected row matched.
func (r *FixtureResult) Passed() bool { return r.failed == 0 }

// FailedCount returns how many expected rows did not match.
func (r *FixtureResult) FailedCount() int { return r.failed }

// TotalCount returns how many expected rows were checked.
func (r *FixtureResult) TotalCount() int { return r.total }

// FindFixtureFiles returns every ".json" file directly under dir, sorted by
// name, suitable for feeding to LoadFixtureDocument in order.
func FindFixtureFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture dir %q: %v", dir, err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

// LoadFixtureDocument reads and validates one fixture file. After decoding
// it rejects a schema_version outside acapacity.SupportedFixtureSchema
// before validating the rows.
func LoadFixtureDocument(path string) (*FixtureDocument, error) {
	var doc FixtureDocument
	if err := UnmarshalFromFile(path, &doc); err != nil {
		return nil, err
	}

	v, err := semver.NewVersion(doc.SchemaVersion)
	if err != nil {
		return nil, fmt.Errorf("fixture %q: invalid schema_version %q: %v", path, doc.SchemaVersion, err)
	}
	if !acapacity.SupportedFixtureSchema.Check(v) {
		return nil, fmt.Errorf("fixture %q: schema_version %q does not satisfy %s", path, doc.SchemaVersion, acapacity.SupportedFixtureSchema.String())
	}

	validate := validator.New()
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("fixture %q: %v", path, err)
	}
	return &doc, nil
}

// buildPatterns groups the document's rules and exceptions by pattern_id and
// constructs one acalendar.Pattern per group.
func (d *FixtureDocument) buildPatterns() (map[string]*acalendar.Pattern, error) {
	rulesByPattern := map[string][]acalendar.WeeklyRule{}
	for _, r := range d.Rules {
		start, err := acalendar.ParseTimeOfDay(r.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := acalendar.ParseTimeOfDay(r.EndTime)
		if err != nil {
			return nil, err
		}
		rulesByPattern[r.PatternID] = append(rulesByPattern[r.PatternID], acalendar.WeeklyRule{
			Weekday: time.Weekday(r.DayOfWeek % 7), // fixture schema is ISO 1=Mon..7=Sun; 7%7=0=time.Sunday
			Start:   start,
			End:     end,
		})
	}

	exceptionsByPattern := map[string][]acalendar.Exception{}
	for _, x := range d.Exceptions {
		var start, end *acalendar.TimeOfDay
		if x.StartTime != nil {
			tod, err := acalendar.ParseTimeOfDay(*x.StartTime)
			if err != nil {
				return nil, err
			}
			start = &tod
		}
		if x.EndTime != nil {
			tod, err := acalendar.ParseTimeOfDay(*x.EndTime)
			if err != nil {
				return nil, err
			}
			end = &tod
		}
		exceptionsByPattern[x.PatternID] = append(exceptionsByPattern[x.PatternID], acalendar.Exception{
			Date:      x.ExceptionDate,
			IsWorking: x.IsWorking == 1,
			Start:     start,
			End:       end,
		})
	}

	patterns := map[string]*acalendar.Pattern{}
	seen := map[string]bool{}
	for id := range rulesByPattern {
		seen[id] = true
	}
	for id := range exceptionsByPattern {
		seen[id] = true
	}
	for id := range seen {
		p, err := acalendar.NewPattern(id, rulesByPattern[id], exceptionsByPattern[id])
		if err != nil {
			return nil, err
		}
		patterns[id] = p
	}
	return patterns, nil
}

// resolution returns the document's declared resolution, defaulting to
// one-minute granularity when unset.
func (d *FixtureDocument) resolution() atime.Resolution {
	if d.ResolutionSeconds <= 0 {
		return atime.Minute
	}
	return atime.Resolution{UnitSeconds: d.ResolutionSeconds, Label: "fixture"}
}

// Run builds the document's patterns (and, lazily, one engine per pattern
// referenced by a find_slot or allocate row) and checks every expected row, returning a
// FixtureResult describing how many matched.
func (d *FixtureDocument) Run() (*FixtureResult, error) {
	patterns, err := d.buildPatterns()
	if err != nil {
		return nil, err
	}
	epoch, err := time.Parse(time.RFC3339, d.Epoch)
	if err != nil {
		return nil, fmt.Errorf("invalid epoch %q: %v", d.Epoch, err)
	}
	res := d.resolution()

	engines := map[string]*acapacity.Engine{}
	engineFor := func(patternID string) (*acapacity.Engine, error) {
		if e, ok := engines[patternID]; ok {
			return e, nil
		}
		p, ok := patterns[patternID]
		if !ok {
			return nil, fmt.Errorf("unknown pattern_id %q", patternID)
		}
		start := epoch
		if d.HorizonStart != "" {
			start, err = time.Parse(time.RFC3339, d.HorizonStart)
			if err != nil {
				return nil, err
			}
		}
		end := start.AddDate(0, 0, 90)
		if d.HorizonEnd != "" {
			end, err = time.Parse(time.RFC3339, d.HorizonEnd)
			if err != nil {
				return nil, err
			}
		}
		e, err := acapacity.FromCalendar(p, start, end, epoch, res)
		if err != nil {
			return nil, err
		}
		engines[patternID] = e
		return e, nil
	}

	result := &FixtureResult{}
	for _, row := range d.Expected {
		result.total++
		ok, err := d.checkExpectedRow(row, patterns, engineFor, epoch)
		if err != nil {
			result.failed++
			result.Failures = append(result.Failures, fmt.Sprintf("%s %s: %v", row.Op, row.PatternID, err))
			continue
		}
		if !ok {
			result.failed++
			result.Failures = append(result.Failures, fmt.Sprintf("%s %s: mismatch", row.Op, row.PatternID))
		}
	}
	return result, nil
}

func (d *FixtureDocument) checkExpectedRow(row ExpectedRow, patterns map[string]*acalendar.Pattern, engineFor func(string) (*acapacity.Engine, error), epoch time.Time) (bool, error) {
	p, ok := patterns[row.PatternID]
	if !ok {
		return false, fmt.Errorf("unknown pattern_id %q", row.PatternID)
	}

	switch row.Op {
	case "add_units":
		start, err := time.Parse(time.RFC3339, row.Start)
		if err != nil {
			return false, err
		}
		want, err := time.Parse(time.RFC3339, row.ExpectResult)
		if err != nil {
			return false, err
		}
		got, err := p.AddUnits(start, row.Units)
		if err != nil {
			return false, err
		}
		return got.Equal(want), nil

	case "subtract_units":
		end, err := time.Parse(time.RFC3339, row.End)
		if err != nil {
			return false, err
		}
		want, err := time.Parse(time.RFC3339, row.ExpectResult)
		if err != nil {
			return false, err
		}
		got, err := p.SubtractUnits(end, row.Units)
		if err != nil {
			return false, err
		}
		return got.Equal(want), nil

	case "working_units_between":
		a, err := time.Parse(time.RFC3339, row.Start)
		if err != nil {
			return false, err
		}
		b, err := time.Parse(time.RFC3339, row.End)
		if err != nil {
			return false, err
		}
		got, err := p.WorkingUnitsBetween(a, b)
		if err != nil {
			return false, err
		}
		return row.ExpectUnits != nil && got == *row.ExpectUnits, nil

	case "find_slot":
		e, start, opts, err := d.parseSlotQuery(row, engineFor, epoch)
		if err != nil {
			return false, err
		}
		rec, err := e.FindSlot(fmt.Sprintf("fixture-%d", len(row.ExpectSpans)), start, row.WorkUnits, opts)
		if err != nil {
			return false, err
		}
		return d.checkSpans(rec, row.ExpectSpans, epoch)

	case "allocate":
		e, start, opts, err := d.parseSlotQuery(row, engineFor, epoch)
		if err != nil {
			return false, err
		}
		rec, err := e.Allocate(fmt.Sprintf("fixture-%d", len(row.ExpectSpans)), start, row.WorkUnits, opts)
		if err != nil {
			return false, err
		}
		ok, err := d.checkSpans(rec, row.ExpectSpans, epoch)
		if err != nil || !ok {
			return ok, err
		}
		if row.ExpectFreeAfter != nil && e.FreeCount() != *row.ExpectFreeAfter {
			return false, nil
		}
		return true, nil

	default:
		return false, fmt.Errorf("unsupported op %q", row.Op)
	}
}

// parseSlotQuery parses the earliest_start/deadline fields shared by the
// find_slot and allocate ops and resolves the engine they run against.
func (d *FixtureDocument) parseSlotQuery(row ExpectedRow, engineFor func(string) (*acapacity.Engine, error), epoch time.Time) (*acapacity.Engine, int64, acapacity.FindSlotOptions, error) {
	e, err := engineFor(row.PatternID)
	if err != nil {
		return nil, 0, acapacity.FindSlotOptions{}, err
	}
	earliest, err := time.Parse(time.RFC3339, row.EarliestStart)
	if err != nil {
		return nil, 0, acapacity.FindSlotOptions{}, err
	}
	start, err := atime.ToInt(earliest, epoch, d.resolution())
	if err != nil {
		return nil, 0, acapacity.FindSlotOptions{}, err
	}
	opts := acapacity.FindSlotOptions{AllowSplit: row.AllowSplit, MinSplit: row.MinSplit}
	if row.Deadline != "" {
		deadlineTime, err := time.Parse(time.RFC3339, row.Deadline)
		if err != nil {
			return nil, 0, acapacity.FindSlotOptions{}, err
		}
		opts.Deadline, err = atime.ToInt(deadlineTime, epoch, d.resolution())
		if err != nil {
			return nil, 0, acapacity.FindSlotOptions{}, err
		}
		opts.HasDeadline = true
	}
	return e, start, opts, nil
}

// checkSpans compares an allocation record's spans against a fixture's
// literal expected spans.
func (d *FixtureDocument) checkSpans(rec *acapacity.AllocationRecord, wantSpans []FixtureSpan, epoch time.Time) (bool, error) {
	if len(rec.Spans) != len(wantSpans) {
		return false, nil
	}
	for i, want := range wantSpans {
		wantBegin, err := time.Parse(time.RFC3339, want.Begin)
		if err != nil {
			return false, err
		}
		wantEnd, err := time.Parse(time.RFC3339, want.End)
		if err != nil {
			return false, err
		}
		gotBegin := atime.ToDatetime(rec.Spans[i].Begin, epoch, d.resolution())
		gotEnd := atime.ToDatetime(rec.Spans[i].End, epoch, d.resolution())
		if !gotBegin.Equal(wantBegin) || !gotEnd.Equal(wantEnd) {
			return false, nil
		}
	}
	return true, nil
}
