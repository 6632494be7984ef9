package availability

import (
	"context"

	"roombook/internal/domain"
)

type BlockRepository interface {
	CreateIfFree(ctx context.Context, bl *domain.RoomBlock) error
	GetByID(ctx context.Context, id int64) (*domain.RoomBlock, error)
	Delete(ctx context.Context, id int64) error
	ListByRoomRange(ctx context.Context, roomID int64, from, to string) ([]domain.RoomBlock, error)
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type MembershipResolver interface {
	RoleInOrg(ctx context.Context, userID, orgID int64) (domain.OrgRole, error)
}

// ConflictChecker tests a candidate window against live bookings only; a
// staff hold may stack on another hold.
type ConflictChecker interface {
	CheckBookings(ctx context.Context, roomID int64, date string, candidate domain.Interval) (bool, error)
}
