package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, BookingPending.CanTransitionTo(BookingConfirmed))
	assert.True(t, BookingPending.CanTransitionTo(BookingCancelled))
	assert.False(t, BookingPending.CanTransitionTo(BookingCompleted))
	assert.False(t, BookingPending.CanTransitionTo(BookingNoShow))

	assert.True(t, BookingConfirmed.CanTransitionTo(BookingCancelled))
	assert.True(t, BookingConfirmed.CanTransitionTo(BookingCompleted))
	assert.True(t, BookingConfirmed.CanTransitionTo(BookingNoShow))
	assert.False(t, BookingConfirmed.CanTransitionTo(BookingPending))

	for _, terminal := range []BookingStatus{BookingCancelled, BookingCompleted, BookingNoShow} {
		for _, next := range []BookingStatus{BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted, BookingNoShow} {
			assert.False(t, terminal.CanTransitionTo(next), "%s -> %s must be rejected", terminal, next)
		}
	}
}

func TestBookingStatus_Terminal(t *testing.T) {
	assert.False(t, BookingPending.Terminal())
	assert.False(t, BookingConfirmed.Terminal())
	assert.True(t, BookingCancelled.Terminal())
	assert.True(t, BookingCompleted.Terminal())
	assert.True(t, BookingNoShow.Terminal())
}

func TestBookingStatus_Occupies(t *testing.T) {
	assert.True(t, BookingPending.Occupies())
	assert.True(t, BookingConfirmed.Occupies())
	assert.False(t, BookingCancelled.Occupies())
	assert.False(t, BookingCompleted.Occupies())
	assert.False(t, BookingNoShow.Occupies())
}

func TestBooking_StartsAt(t *testing.T) {
	b := &Booking{Date: "2026-03-15", StartMinute: 540}

	at, err := b.StartsAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC), at)
}
