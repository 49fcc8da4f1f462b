package motion

import (
	"errors"
	"fmt"
)

// Configuration errors returned by solver and animation setters.
var (
	// ErrInvalidDecayConstant indicates a decay constant outside (0, 1).
	ErrInvalidDecayConstant = errors.New("motion: decay constant must be in (0, 1)")

	// ErrInvalidResponse indicates a negative spring response.
	ErrInvalidResponse = errors.New("motion: spring response must not be negative")

	// ErrInvalidDampingRatio indicates a negative damping ratio.
	ErrInvalidDampingRatio = errors.New("motion: damping ratio must not be negative")

	// ErrInvalidStiffness indicates a non-positive stiffness or negative damping.
	ErrInvalidStiffness = errors.New("motion: stiffness must be positive and damping non-negative")

	// ErrInvalidDuration indicates a non-positive easing duration.
	ErrInvalidDuration = errors.New("motion: duration must be positive")

	// ErrInvalidCurve indicates bezier control points outside the unit square.
	ErrInvalidCurve = errors.New("motion: bezier x control points must be in [0, 1]")

	// ErrInvalidRange indicates a clamping range whose lower bound exceeds its upper bound.
	ErrInvalidRange = errors.New("motion: clamping range lower bound exceeds upper bound")

	// ErrUnknownCurve indicates an easing curve name with no registered control points.
	ErrUnknownCurve = errors.New("motion: unknown easing curve")

	// ErrNotResolved indicates a sampled animation that did not settle in time.
	ErrNotResolved = errors.New("motion: animation did not resolve within the sampling window")
)

// ConfigError wraps a configuration error with the offending field.
type ConfigError struct {
	Field   string
	Value   float64
	Wrapped error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s=%g: %v", e.Field, e.Value, e.Wrapped)
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}

func configError(field string, value float64, err error) error {
	return &ConfigError{Field: field, Value: value, Wrapped: err}
}

// CheckPositive returns a ConfigError wrapping err unless value > 0.
func CheckPositive(field string, value float64, err error) error {
	if !(value > 0) {
		return configError(field, value, err)
	}
	return nil
}

// CheckNonNegative returns a ConfigError wrapping err unless value >= 0.
func CheckNonNegative(field string, value float64, err error) error {
	if !(value >= 0) {
		return configError(field, value, err)
	}
	return nil
}

// CheckUnitOpen returns a ConfigError wrapping err unless 0 < value < 1.
func CheckUnitOpen(field string, value float64, err error) error {
	if !(value > 0 && value < 1) {
		return configError(field, value, err)
	}
	return nil
}
