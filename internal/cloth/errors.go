package cloth

import "errors"

// ErrInvalidTopology reports a degenerate garment topology (computed grid
// resolution of zero or less). It is the only fatal input condition; every
// other invalid input is defaulted or reduced instead.
var ErrInvalidTopology = errors.New("cloth: invalid topology")
