package ports

import (
	"context"

	"github.com/obruchev/user_intake_service/internal/core/domain"
)

// RecordStore is the durable append-only storage for captured records.
// Implementations assign the identity key on insert and never mutate or
// remove existing rows.
type RecordStore interface {
	// Insert appends one record and returns the assigned id. The input
	// record must not carry an id yet.
	Insert(ctx context.Context, record *domain.Record) (int64, error)

	// FetchAll returns a snapshot of every stored record in insertion
	// order. Later writes do not affect an already-returned slice.
	FetchAll(ctx context.Context) ([]domain.Record, error)

	// Close releases the underlying connection. Subsequent calls fail
	// with domain.ErrStorageClosed until a new store is opened.
	Close() error
}

// IntakeService drives the capture workflow: validate, persist, refresh.
type IntakeService interface {
	Submit(ctx context.Context, record *domain.Record) (*domain.Record, []domain.Record, error)
	List(ctx context.Context) ([]domain.Record, error)
	Prefill(ctx context.Context) (*domain.Record, error)
}
