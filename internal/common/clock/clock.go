package clock

import (
	"time"

	"github.com/coder/quartz"
)

// Clock is the time source for services. Tests pass quartz.NewMock to
// control it.
type Clock interface {
	Now(tags ...string) time.Time
}

// New returns a Clock backed by the system time
func New() Clock {
	return quartz.NewReal()
}
