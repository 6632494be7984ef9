package repository

import (
	"context"
	"testing"

	"roombook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccupancyRepository_BookingSpans_OccupyingOnly(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db)
	repo := NewOccupancyRepository(db)

	pending := seedBooking(t, db, room, domain.BookingPending, 540, 600)
	confirmed := seedBooking(t, db, room, domain.BookingConfirmed, 600, 660)
	seedBooking(t, db, room, domain.BookingCancelled, 660, 720)
	seedBooking(t, db, room, domain.BookingCompleted, 720, 780)
	seedBooking(t, db, room, domain.BookingNoShow, 780, 840)

	spans, err := repo.BookingSpans(context.Background(), room.ID, "2026-03-15")
	require.NoError(t, err)
	require.Len(t, spans, 2)

	ids := []int64{spans[0].BookingID, spans[1].BookingID}
	assert.ElementsMatch(t, []int64{pending.ID, confirmed.ID}, ids)
}

func TestOccupancyRepository_BlockSpans(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db)
	repo := NewOccupancyRepository(db)

	require.NoError(t, db.Create(newBlock(room, 840, 900)).Error)

	spans, err := repo.BlockSpans(context.Background(), room.ID, "2026-03-15")
	require.NoError(t, err)
	require.Len(t, spans, 1)
	assert.Equal(t, domain.Interval{Start: 840, End: 900}, spans[0].Interval)
}
