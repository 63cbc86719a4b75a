package metrics

// FitStats captures quality figures for a trend fit, reported alongside
// the advice so the host can qualify it.
type FitStats struct {
	Points   int     `json:"points"`
	SpanDays int     `json:"spanDays"`
	Knots    int     `json:"knots"`
	RMSE     float64 `json:"rmse,omitempty"`
}

// IsZero reports whether fit data is absent.
func (f FitStats) IsZero() bool {
	return f.Points == 0 && f.SpanDays == 0 && f.Knots == 0 && f.RMSE == 0
}
