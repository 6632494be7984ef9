// Package conflict is the single authority for accept/reject decisions on
// room time slots. Every write path — booking creation, booking edits and
// blocked-window creation — goes through it, so the half-open boundary
// semantics live in exactly one place.
package conflict

import (
	"context"

	"roombook/internal/domain"
)

// Span is one occupying record on a room's timeline for a date.
// BookingID is zero for blocked windows.
type Span struct {
	BookingID int64
	Interval  domain.Interval
}

// Source supplies occupying records for (room, date). Implementations must
// only return bookings in occupying statuses (pending/confirmed).
type Source interface {
	BookingSpans(ctx context.Context, roomID int64, date string) ([]Span, error)
	BlockSpans(ctx context.Context, roomID int64, date string) ([]Span, error)
}

// Overlapping reports whether the candidate interval overlaps any span,
// skipping the span owned by excludeBookingID (used when re-validating an
// edit against everything but itself). Pure; never mutates state.
func Overlapping(candidate domain.Interval, spans []Span, excludeBookingID int64) bool {
	for _, s := range spans {
		if excludeBookingID != 0 && s.BookingID == excludeBookingID {
			continue
		}
		if candidate.Overlaps(s.Interval) {
			return true
		}
	}
	return false
}

type Checker struct {
	src Source
}

func NewChecker(src Source) *Checker {
	return &Checker{src: src}
}

// Check reports whether the candidate interval collides with any occupying
// booking or blocked window for (room, date). Advisory when run outside a
// transaction; the write path re-runs the same test inside one.
func (c *Checker) Check(ctx context.Context, roomID int64, date string, candidate domain.Interval, excludeBookingID int64) (bool, error) {
	spans, err := c.src.BookingSpans(ctx, roomID, date)
	if err != nil {
		return false, err
	}
	if Overlapping(candidate, spans, excludeBookingID) {
		return true, nil
	}
	blocks, err := c.src.BlockSpans(ctx, roomID, date)
	if err != nil {
		return false, err
	}
	return Overlapping(candidate, blocks, 0), nil
}

// CheckBookings tests the candidate against occupying bookings only.
// Blocked-window creation uses this: a staff hold may coexist with other
// holds but never with a live booking.
func (c *Checker) CheckBookings(ctx context.Context, roomID int64, date string, candidate domain.Interval) (bool, error) {
	spans, err := c.src.BookingSpans(ctx, roomID, date)
	if err != nil {
		return false, err
	}
	return Overlapping(candidate, spans, 0), nil
}
