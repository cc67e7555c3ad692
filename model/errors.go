package model

import "github.com/pkg/errors"

// ErrCellOutOfBounds reports a coordinate with no entry in the grid's
// rectangle. Raised by ToggleCell and GridFromSeed; lookups return a
// presence flag instead, since absence at a valid query is not exceptional.
var ErrCellOutOfBounds = errors.New("cell out of bounds")
