package flowtext

// TextError is an error type for the flowtext module.
type TextError string

func (e TextError) Error() string {
	return string(e)
}

// ErrInvalidRange is flagged whenever an edit addresses positions outside
// [0,N] or an inverted range. Edits never silently clamp.
const ErrInvalidRange = TextError("invalid range")

// ErrUnknownAnnotation is flagged when a field, object or section id is
// not (or no longer) present in its annotation set.
const ErrUnknownAnnotation = TextError("unknown annotation id")

// ErrOverlappingSection is flagged when a repeating section to be created
// would nest with or overlap an existing one.
const ErrOverlappingSection = TextError("sections may not nest or overlap")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TextError("illegal arguments")
