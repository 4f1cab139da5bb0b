package booking

import (
	"context"

	"leprive/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	SlotTaken(ctx context.Context, companionID int64, date, timeOfDay string) (bool, error)
}

type CompanionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Companion, error)
}

// Submitter is the collaborator the wizard's terminal transition hands the
// draft to. The front-end source never defined what a successful booking
// does; this interface is the explicit contract replacing that no-op.
type Submitter interface {
	Submit(ctx context.Context, listingID int64, draft Draft) (*Confirmation, error)
}
