package projection

import "errors"

// Sentinel kinds for projection errors.
var (
	ErrNilCatalog   = errors.New("catalog must not be nil")
	ErrUnknownModel = errors.New("unknown projection model")
)
