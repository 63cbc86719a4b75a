package series

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/yanqian/weight-advisor/pkg/errors"
	"github.com/yanqian/weight-advisor/pkg/units"
	"github.com/yanqian/weight-advisor/pkg/util"
)

// Store maintains the daily log. It is not safe for concurrent use; the
// host must serialize access.
type Store struct {
	unit    units.Weight
	records []DailyRecord

	// plottable is set by changes that invalidate a derived trend and
	// left alone by cosmetic ones (appending blank days, no-op writes).
	plottable bool
	journal   []Mutation

	now func() time.Time
}

// New parses the given rows, validates the ascending-no-gap invariant and
// builds a store. Values are interpreted in the declared file unit and
// stored in kilograms; the display unit starts out equal to the declared
// unit. At least one row is required.
func New(declared units.Weight, rows []RawRow) (*Store, error) {
	if len(rows) == 0 {
		return nil, apperrors.Wrap(apperrors.CodeParse, "weight log contains no days", nil)
	}

	s := &Store{
		unit:    declared,
		records: make([]DailyRecord, 0, len(rows)),
		now:     util.NowUTC,
	}

	var prev time.Time
	for i, row := range rows {
		date, err := time.ParseInLocation(DateFormat, row.Date, time.UTC)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeParse,
				fmt.Sprintf("row %d: malformed date %q", i+1, row.Date), err)
		}
		if i > 0 {
			switch days := util.DaysBetween(prev, date); {
			case days == 0:
				return nil, apperrors.Wrap(apperrors.CodeOrder,
					fmt.Sprintf("row %d: duplicate date %q", i+1, row.Date), nil)
			case days < 0:
				return nil, apperrors.Wrap(apperrors.CodeOrder,
					fmt.Sprintf("row %d: date %q is out of order", i+1, row.Date), nil)
			case days > 1:
				return nil, apperrors.Wrap(apperrors.CodeOrder,
					fmt.Sprintf("row %d: gap before %q, blank days must be recorded", i+1, row.Date), nil)
			}
		}
		prev = date

		rec := DailyRecord{Date: date, Label: row.Date}
		if v := strings.TrimSpace(row.Value); v != "" {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
				return nil, apperrors.Wrap(apperrors.CodeParse,
					fmt.Sprintf("row %d: malformed weight %q", i+1, row.Value), err)
			}
			kg := declared.ToKg(parsed)
			rec.KG = &kg
		}
		s.records = append(s.records, rec)
	}
	return s, nil
}

// Unit returns the current display unit.
func (s *Store) Unit() units.Weight {
	return s.unit
}

// SetUnits changes the presentation unit only; stored kilograms are
// untouched. Every derived weight changes, so a recompute is flagged.
func (s *Store) SetUnits(u units.Weight) {
	if s.unit == u {
		return
	}
	s.unit = u
	s.plottable = true
}

// Len returns the number of calendar days covered, blank or not.
func (s *Store) Len() int {
	return len(s.records)
}

// Record returns the day at index i.
func (s *Store) Record(i int) DailyRecord {
	return s.records[i]
}

// StartDate is the date of the first record, blank or not.
func (s *Store) StartDate() time.Time {
	return s.records[0].Date
}

// EndDate is the date of the last filled record, or StartDate when the
// log has no entries yet.
func (s *Store) EndDate() time.Time {
	for i := len(s.records) - 1; i >= 0; i-- {
		if !s.records[i].Blank() {
			return s.records[i].Date
		}
	}
	return s.StartDate()
}

// Dates lists the dates of all filled records, chronologically.
func (s *Store) Dates() []time.Time {
	out := make([]time.Time, 0, len(s.records))
	for _, r := range s.records {
		if !r.Blank() {
			out = append(out, r.Date)
		}
	}
	return out
}

// DayNumbers lists, for each filled record, the 1-based count of days
// since the series start. The offset makes the first cycle boundary
// reachable at exactly cycle days.
func (s *Store) DayNumbers() []int {
	start := s.StartDate()
	out := make([]int, 0, len(s.records))
	for _, r := range s.records {
		if !r.Blank() {
			out = append(out, 1+util.DaysBetween(start, r.Date))
		}
	}
	return out
}

// Weights lists all filled values converted to the display unit,
// index-aligned with Dates and DayNumbers.
func (s *Store) Weights() []float64 {
	out := make([]float64, 0, len(s.records))
	for _, r := range s.records {
		if !r.Blank() {
			out = append(out, s.unit.FromKg(*r.KG))
		}
	}
	return out
}

// SetValue updates the day at index i from a raw entry string. Blank
// clears the day; anything else must be a finite number whose kilogram
// equivalent lies in (0, 2000]. Rejected input leaves the store
// untouched. Accepted changes are journaled and flag a recompute;
// writing the already-stored value does neither.
func (s *Store) SetValue(i int, raw string) error {
	if i < 0 || i >= len(s.records) {
		return fmt.Errorf("%w: index %d", ErrNoSuchDate, i)
	}

	var newKG *float64
	if v := strings.TrimSpace(raw); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return fmt.Errorf("%w: %q", ErrValueUnparsable, raw)
		}
		kg := s.unit.ToKg(parsed)
		if kg <= 0 || kg > 2000 {
			return fmt.Errorf("%w: %q", ErrValueOutOfRange, raw)
		}
		newKG = &kg
	}

	old := s.records[i].KG
	if sameValue(old, newKG) {
		return nil
	}
	s.records[i].KG = newKG
	s.plottable = true
	s.journal = append(s.journal, Mutation{
		ID:    uuid.New(),
		Index: i,
		Date:  s.records[i].Date,
		Old:   old,
		New:   newKG,
		At:    s.now(),
	})
	return nil
}

// SetValueForDate is SetValue addressed by calendar date.
func (s *Store) SetValueForDate(date time.Time, raw string) error {
	i := util.DaysBetween(s.StartDate(), date)
	if i < 0 || i >= len(s.records) {
		return fmt.Errorf("%w: %s", ErrNoSuchDate, date.Format(DateFormat))
	}
	return s.SetValue(i, raw)
}

// ExtendToToday appends blank days so the log covers every date up
// through today and always ends with at least one empty slot ready for
// entry. Idempotent for a fixed today.
func (s *Store) ExtendToToday(today time.Time) {
	last := s.records[len(s.records)-1]
	daysToAdd := 0
	if !last.Blank() {
		daysToAdd = 1
	}
	if passed := util.DaysBetween(last.Date, today); passed > daysToAdd {
		daysToAdd = passed
	}
	for i := 1; i <= daysToAdd; i++ {
		date := last.Date.AddDate(0, 0, i)
		s.records = append(s.records, DailyRecord{
			Date:  date,
			Label: date.Format(DateFormat),
		})
	}
}

// DisplayValue renders the day at index i in the display unit, rounded
// to two decimals. Blank days render as the empty string.
func (s *Store) DisplayValue(i int) string {
	r := s.records[i]
	if r.Blank() {
		return ""
	}
	v := math.Round(s.unit.FromKg(*r.KG)*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FileRows returns the records that belong in the canonical file:
// everything up to the last filled day. Trailing empty entry slots are
// session state, not data.
func (s *Store) FileRows() []DailyRecord {
	end := s.EndDate()
	out := make([]DailyRecord, 0, len(s.records))
	for _, r := range s.records {
		if r.Date.After(end) {
			break
		}
		out = append(out, r)
	}
	return out
}

// HasPlottableChange reports whether a change since the last reset
// requires the trend to be recomputed.
func (s *Store) HasPlottableChange() bool {
	return s.plottable
}

// ClearPlottableChange resets the recompute flag, typically after the
// host has rebuilt the model.
func (s *Store) ClearPlottableChange() {
	s.plottable = false
}

// Mutations returns a copy of the journal of accepted value changes.
func (s *Store) Mutations() []Mutation {
	out := make([]Mutation, len(s.journal))
	copy(out, s.journal)
	return out
}

func sameValue(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
