package layout

import "errors"

var (
	// ErrInvalidRange signals a line-break request outside the text.
	ErrInvalidRange = errors.New("layout: invalid range")
	// ErrMeasurement signals that the Measurer failed; layout cannot
	// proceed without metrics and the error is propagated.
	ErrMeasurement = errors.New("layout: measurement failure")
)
