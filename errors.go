package msdftext

import "errors"

// Sentinel errors for text construction.
var (
	// ErrNilDescriptor is returned when New is handed a nil font
	// descriptor.
	ErrNilDescriptor = errors.New("msdftext: nil font descriptor")
)
