package core

import "time"

// TimeProvider abstracts clock access so that tests can pin timestamps
type TimeProvider interface {
	Now() time.Time
}
