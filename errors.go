package squircle

import "errors"

// Errors reported by [SmoothRoundRect.Validate], and carried by the panics of
// [DrawSmoothRoundRect] and [NewCurveGeometry]. Use [errors.Is] to tell them
// apart.
var (
	ErrNonPositiveSize   = errors.New("width and height must be positive")
	ErrSmoothnessRange   = errors.New("smoothness must be in (0, 1]")
	ErrNonPositiveRadius = errors.New("corner radius must be positive")
)
