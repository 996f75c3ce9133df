package wikicorpus

import "github.com/pkg/errors"

// ErrCapacityExceeded is returned when a single text region outgrows
// the article buffer.  The scan stops; output written before it is
// intact.
var ErrCapacityExceeded = errors.New("article buffer capacity exceeded")

// IsCapacityExceeded reports whether err was caused by an oversized
// text region.
func IsCapacityExceeded(err error) bool {
	return errors.Cause(err) == ErrCapacityExceeded
}
