package fill

import "errors"

var (
	// ErrCorruptFill indicates a record has a predecessor index out of
	// range, or otherwise fails the structural checks Decode applies.
	ErrCorruptFill = errors.New("fill: corrupt record")

	// ErrUnknownMetric indicates a record's metric tag is not one this
	// module knows how to interpret.
	ErrUnknownMetric = errors.New("fill: unknown metric tag")
)
