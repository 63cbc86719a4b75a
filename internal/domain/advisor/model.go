package advisor

import (
	"time"

	"github.com/yanqian/weight-advisor/pkg/metrics"
	"github.com/yanqian/weight-advisor/pkg/units"
)

// Report is what the host renders after a compute cycle.
type Report struct {
	GeneratedAt time.Time    `json:"generatedAt"`
	StartDate   string       `json:"startDate"`
	EndDate     string       `json:"endDate"`
	Entries     int          `json:"entries"`
	Unit        units.Weight `json:"unit"`
	CycleDays   int          `json:"cycleDays"`

	// Available is false while fewer than two weights exist; the zero
	// trend fields then mean "no trend yet", not zero change.
	Available  bool     `json:"available"`
	TrendToday *float64 `json:"trendToday,omitempty"`
	Adjustment *int     `json:"adjustment,omitempty"`
	Advice     string   `json:"advice,omitempty"`

	Fit metrics.FitStats `json:"fit"`
}
