package conflict

import (
	"context"
	"testing"

	"roombook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSource struct {
	mock.Mock
}

func (m *MockSource) BookingSpans(ctx context.Context, roomID int64, date string) ([]Span, error) {
	args := m.Called(ctx, roomID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Span), args.Error(1)
}

func (m *MockSource) BlockSpans(ctx context.Context, roomID int64, date string) ([]Span, error) {
	args := m.Called(ctx, roomID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Span), args.Error(1)
}

func TestOverlapping(t *testing.T) {
	spans := []Span{
		{BookingID: 1, Interval: domain.Interval{Start: 540, End: 600}},
		{BookingID: 2, Interval: domain.Interval{Start: 720, End: 780}},
	}

	assert.True(t, Overlapping(domain.Interval{Start: 570, End: 630}, spans, 0))
	assert.False(t, Overlapping(domain.Interval{Start: 600, End: 720}, spans, 0))

	// editing booking 1 against its own slot must not self-conflict
	assert.False(t, Overlapping(domain.Interval{Start: 540, End: 600}, spans, 1))
	// but it still conflicts with the other booking
	assert.True(t, Overlapping(domain.Interval{Start: 540, End: 750}, spans, 1))
}

func TestChecker_Check(t *testing.T) {
	src := new(MockSource)
	src.On("BookingSpans", mock.Anything, int64(5), "2026-03-15").Return([]Span{
		{BookingID: 1, Interval: domain.Interval{Start: 540, End: 600}},
	}, nil)
	src.On("BlockSpans", mock.Anything, int64(5), "2026-03-15").Return([]Span{
		{Interval: domain.Interval{Start: 840, End: 900}},
	}, nil)

	checker := NewChecker(src)

	taken, err := checker.Check(context.Background(), 5, "2026-03-15", domain.Interval{Start: 570, End: 630}, 0)
	require.NoError(t, err)
	assert.True(t, taken, "overlapping a booking must conflict")

	taken, err = checker.Check(context.Background(), 5, "2026-03-15", domain.Interval{Start: 860, End: 880}, 0)
	require.NoError(t, err)
	assert.True(t, taken, "overlapping a blocked window must conflict")

	taken, err = checker.Check(context.Background(), 5, "2026-03-15", domain.Interval{Start: 600, End: 840}, 0)
	require.NoError(t, err)
	assert.False(t, taken, "slot between booking and block must be free")
}

func TestChecker_CheckBookings_IgnoresBlocks(t *testing.T) {
	src := new(MockSource)
	src.On("BookingSpans", mock.Anything, int64(5), "2026-03-15").Return([]Span{}, nil)

	checker := NewChecker(src)

	taken, err := checker.CheckBookings(context.Background(), 5, "2026-03-15", domain.Interval{Start: 840, End: 900})
	require.NoError(t, err)
	assert.False(t, taken)
	src.AssertNotCalled(t, "BlockSpans", mock.Anything, mock.Anything, mock.Anything)
}
