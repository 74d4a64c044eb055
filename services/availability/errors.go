package availability

import "errors"

// ErrInvalidDuration is returned when a caller requests availability for a
// non-positive service duration. This is a caller configuration bug, rejected
// before any slot generation happens.
var ErrInvalidDuration = errors.New("service duration must be greater than zero minutes")
