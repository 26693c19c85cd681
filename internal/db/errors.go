package db

import "errors"

var (
	// ErrNotFound is returned when a vision, habit, milestone or session does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAmbiguous is returned when a reference matches more than one record.
	ErrAmbiguous = errors.New("ambiguous reference")
	// ErrActiveSession is returned when starting a session while another is running.
	ErrActiveSession = errors.New("a focus session is already running")
	// ErrNoActiveSession is returned when stopping with nothing running.
	ErrNoActiveSession = errors.New("no active focus session")
	// ErrNotActive is returned when acting on a graduated or deleted record.
	ErrNotActive = errors.New("not active")
)
