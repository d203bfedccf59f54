package region

import "errors"

var (
	// ErrUnknownRegion signals a lookup with an id no region carries.
	ErrUnknownRegion = errors.New("region: unknown region id")
	// ErrInvalidPosition signals a cursor or selection position outside
	// the region's buffer.
	ErrInvalidPosition = errors.New("region: position outside buffer")
	// ErrNoPage signals an operation addressing a page the region does
	// not appear on.
	ErrNoPage = errors.New("region: no such page")
)
