package keyframe

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFPS      = errors.New("keyframe: fps must be positive")
	ErrInvalidDuration = errors.New("keyframe: max duration must be positive")
	ErrInvalidRow      = errors.New("keyframe: malformed track row")
)

// RowError reports a track row with the wrong number of columns.
type RowError struct {
	Row  int
	Got  int
	Want int
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d has %d columns, want %d: %v", e.Row, e.Got, e.Want, ErrInvalidRow)
}

func (e *RowError) Unwrap() error { return ErrInvalidRow }
