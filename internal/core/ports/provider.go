package ports

import (
	"context"

	"github.com/obruchev/user_intake_service/internal/core/domain"
)

// ProfileProvider is a one-shot external source of draft records used to
// pre-fill the intake form. It never persists anything.
type ProfileProvider interface {
	// Fetch returns a draft record with all five fields populated and no
	// id. A non-success response yields domain.ErrFetchFailed.
	Fetch(ctx context.Context) (*domain.Record, error)
}
