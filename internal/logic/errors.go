package logic

import "errors"

var (
	ErrShipOverlap       = errors.New("ship overlap")
	ErrInvalidShipLength = errors.New("invalid ship lengths")
	ErrShipOutOfBounds   = errors.New("ship extends outside the grid")
	ErrOccupiedTarget    = errors.New("already occupied target position")
	ErrBadPosition       = errors.New("position coordinates out of range")
)
