package catalog

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrDuplicateKey       = errors.New("duplicate modification key")
	ErrEmptyKey           = errors.New("modification key must not be empty")
	ErrUnknownCategory    = errors.New("unknown modification category")
	ErrUnknownPhysicsKind = errors.New("unknown physics kind")
	ErrInvalidDefinition  = errors.New("invalid modification definition")
	ErrLoadCatalog        = errors.New("load catalog failed")
)
