package booking

import (
	"context"

	"roombook/internal/domain"
)

// BookingRepository is the persistence surface the service needs. The
// *IfFree methods run the conflict re-check inside the same transaction as
// the write and return repository.ErrOverlap when the slot is taken.
type BookingRepository interface {
	CreateIfFree(ctx context.Context, b *domain.Booking) error
	SaveIfFree(ctx context.Context, b *domain.Booking) error
	Save(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error)
	ListByOrg(ctx context.Context, orgID int64, limit, offset int) ([]domain.Booking, error)
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// MembershipResolver maps a user to their role in an organization.
type MembershipResolver interface {
	RoleInOrg(ctx context.Context, userID, orgID int64) (domain.OrgRole, error)
}

// ConflictChecker is the advisory pre-check; the repository repeats the
// test atomically on write.
type ConflictChecker interface {
	Check(ctx context.Context, roomID int64, date string, candidate domain.Interval, excludeBookingID int64) (bool, error)
}

type NotificationSender interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking) error
	NotifyBookingConfirmed(ctx context.Context, b *domain.Booking) error
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking, reason string) error
}
