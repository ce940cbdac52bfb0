package tui

import "errors"

// ErrMissingSession is returned when the search session is not provided.
var ErrMissingSession = errors.New("tui: search session is required")

// ErrMissingRunner is returned when the search runner is not provided.
var ErrMissingRunner = errors.New("tui: search runner is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
