// Package series owns the gapless, chronologically ordered daily weight
// log and the aligned views derived from it. Masses are stored in
// kilograms regardless of the unit used for display or on disk.
package series

import (
	"time"

	"github.com/google/uuid"
)

// DateFormat is the fixed calendar format used by the log file.
const DateFormat = "2006/01/02"

// DailyRecord is one calendar day of the log. KG is nil for days with no
// recorded weight.
type DailyRecord struct {
	Date  time.Time
	Label string
	KG    *float64
}

// Blank reports whether the day has no recorded weight.
func (r DailyRecord) Blank() bool {
	return r.KG == nil
}

// RawRow is an unparsed (date, value) pair as read from the data file.
type RawRow struct {
	Date  string
	Value string
}

// Mutation records one accepted value change, in kilograms.
type Mutation struct {
	ID    uuid.UUID
	Index int
	Date  time.Time
	Old   *float64
	New   *float64
	At    time.Time
}
