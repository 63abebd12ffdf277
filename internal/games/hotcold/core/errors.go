package core

import "errors"

var (
	// ErrNotFound is returned when an actor, door or gate handle does not
	// exist in the loaded level.
	ErrNotFound = errors.New("not found")

	// ErrNoLevel is returned by queries made before a level is loaded.
	ErrNoLevel = errors.New("no level loaded")
)
