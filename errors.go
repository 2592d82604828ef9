package entitycache

import (
	"errors"

	platform "github.com/jmgilman/go/errors"
)

// ErrNotFound indicates the backend has no entity for the requested key.
// Lookup functions should return or wrap it so callers can distinguish a
// missing entity from a failed fetch. The cache never stores a negative
// result for a not-found key.
var ErrNotFound = errors.New("entity not found")

// IsNotFound reports whether err represents a missing entity, either via
// the ErrNotFound sentinel or a platform error carrying CodeNotFound.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	return platform.GetCode(err) == platform.CodeNotFound
}
