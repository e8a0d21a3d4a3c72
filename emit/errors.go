package emit

import "errors"

var (
	// ErrUnknownFormat indicates an output format name ParseFormat does not know.
	ErrUnknownFormat = errors.New("emit: unknown format")
	// ErrNilResult indicates a nil *lattice.Result was passed to a writer.
	ErrNilResult = errors.New("emit: nil result")
)
