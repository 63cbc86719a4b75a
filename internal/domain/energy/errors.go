package energy

import "errors"

// ErrNotEnoughData is the expected "no trend yet" state: fewer than two
// recorded weights, or too little history to place the fit. Callers
// must branch on it, not report it as a failure.
var ErrNotEnoughData = errors.New("not enough data for a trend")
