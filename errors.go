package phdim

import "errors"

var (
	// ErrInvalidInput is returned when estimator parameters or input shapes
	// are unusable: fewer points than the minimum sample size, a minimum
	// sample size below 2, a non-positive size/draw/run count, or a data
	// slice whose length does not match the declared shape. It is returned
	// before any sampling occurs.
	ErrInvalidInput = errors.New("phdim: invalid input")

	// ErrDegenerateScore is returned when a persistent score is zero or
	// negative where a logarithm is required. A zero score means the subset
	// collapsed (duplicate/coincident points) and the log-log fit is
	// undefined.
	ErrDegenerateScore = errors.New("phdim: degenerate score")

	// ErrDegenerateSlope is returned when the fitted slope is not in
	// (-inf, 1), making the dimension transform 1/(1-slope) undefined or
	// non-positive.
	ErrDegenerateSlope = errors.New("phdim: degenerate slope")
)
