package series

import "errors"

// ErrValueOutOfRange indicates an entry outside the (0, 2000] kg sanity
// range. The store is left unchanged.
var ErrValueOutOfRange = errors.New("value outside sane weight range")

// ErrValueUnparsable indicates an entry that is neither blank nor a
// finite number. The store is left unchanged.
var ErrValueUnparsable = errors.New("value is not a number")

// ErrNoSuchDate indicates a date outside the span covered by the log.
var ErrNoSuchDate = errors.New("date not covered by the log")
