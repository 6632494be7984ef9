package repository

import (
	"context"
	"testing"

	"roombook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBlock(room *domain.Room, start, end int) *domain.RoomBlock {
	return &domain.RoomBlock{
		RoomID:         room.ID,
		OrganizationID: room.OrganizationID,
		Date:           "2026-03-15",
		StartMinute:    start,
		EndMinute:      end,
		Reason:         "maintenance",
		CreatedBy:      1,
	}
}

func TestAvailabilityRepository_CreateIfFree_CancelledBookingDoesNotBlock(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db)
	repo := NewAvailabilityRepository(db)

	seedBooking(t, db, room, domain.BookingCancelled, 540, 690)

	err := repo.CreateIfFree(context.Background(), newBlock(room, 540, 690))
	require.NoError(t, err)
}

func TestAvailabilityRepository_CreateIfFree_LiveBookingBlocks(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db)
	repo := NewAvailabilityRepository(db)

	seedBooking(t, db, room, domain.BookingPending, 540, 690)

	err := repo.CreateIfFree(context.Background(), newBlock(room, 600, 720))
	assert.ErrorIs(t, err, ErrOverlap)
}

func TestAvailabilityRepository_CreateIfFree_BlocksMayStack(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db)
	repo := NewAvailabilityRepository(db)

	require.NoError(t, repo.CreateIfFree(context.Background(), newBlock(room, 540, 690)))
	require.NoError(t, repo.CreateIfFree(context.Background(), newBlock(room, 600, 720)))
}

func TestAvailabilityRepository_ListByRoomRange(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db)
	repo := NewAvailabilityRepository(db)

	inRange := newBlock(room, 540, 600)
	require.NoError(t, db.Create(inRange).Error)
	outOfRange := newBlock(room, 540, 600)
	outOfRange.Date = "2026-04-01"
	require.NoError(t, db.Create(outOfRange).Error)

	rows, err := repo.ListByRoomRange(context.Background(), room.ID, "2026-03-01", "2026-03-31")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, inRange.ID, rows[0].ID)
}

func TestAvailabilityRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db)
	repo := NewAvailabilityRepository(db)

	bl := newBlock(room, 540, 600)
	require.NoError(t, db.Create(bl).Error)

	require.NoError(t, repo.Delete(context.Background(), bl.ID))

	_, err := repo.GetByID(context.Background(), bl.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
