package sharing

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Failure taxonomy surfaced by the engine and the relay handlers. Callers
// match with errors.Is; none of these are retried automatically.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrLockedItem      = errors.New("item is still locked")
	ErrUpstream        = errors.New("upstream error")
	ErrTransientIO     = errors.New("store unavailable")
)

// storeErr maps a raw gorm error onto the taxonomy, keeping the underlying
// message attached for diagnosis.
func storeErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return fmt.Errorf("%w: %v", ErrTransientIO, err)
	}
}
