package analytics

import "time"

// OrphanPolicy decides what happens to sessions whose vision is not in the
// supplied vision list.
type OrphanPolicy int

const (
	// OrphansCountInTotals keeps orphaned sessions in raw totals but leaves them
	// out of per-vision breakdowns.
	OrphansCountInTotals OrphanPolicy = iota
	// OrphansExcluded drops orphaned sessions from every aggregate.
	OrphansExcluded
)

// String returns the config spelling of the policy.
func (p OrphanPolicy) String() string {
	if p == OrphansExcluded {
		return "exclude"
	}
	return "totals"
}

// Engine computes progress metrics in a fixed calendar location.
// The zero value is not usable; build one with New.
type Engine struct {
	loc     *time.Location
	orphans OrphanPolicy
}

// Option configures an Engine.
type Option func(*Engine)

// WithLocation sets the time zone whose calendar days bucket sessions.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// WithOrphanPolicy sets how sessions referencing unknown visions are counted.
func WithOrphanPolicy(p OrphanPolicy) Option {
	return func(e *Engine) {
		e.orphans = p
	}
}

// New returns an Engine using time.Local and OrphansCountInTotals unless
// overridden.
func New(opts ...Option) Engine {
	e := Engine{loc: time.Local, orphans: OrphansCountInTotals}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Location returns the engine's calendar location.
func (e Engine) Location() *time.Location {
	return e.loc
}

// OrphanPolicy returns the engine's orphan policy.
func (e Engine) OrphanPolicy() OrphanPolicy {
	return e.orphans
}

// DayKey returns the calendar day t falls on in the engine location.
func (e Engine) DayKey(t time.Time) DayKey {
	return KeyOf(t.In(e.loc))
}

// Today returns the calendar day of now in the engine location.
func (e Engine) Today(now time.Time) DayKey {
	return e.DayKey(now)
}
