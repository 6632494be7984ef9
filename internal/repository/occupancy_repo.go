package repository

import (
	"context"

	"roombook/internal/conflict"
	"roombook/internal/domain"

	"gorm.io/gorm"
)

// OccupancyRepository feeds the conflict checker with the occupying records
// for (room, date). Read-only.
type OccupancyRepository struct {
	db *gorm.DB
}

func NewOccupancyRepository(db *gorm.DB) *OccupancyRepository {
	return &OccupancyRepository{db: db}
}

type spanRow struct {
	ID          int64
	StartMinute int
	EndMinute   int
}

func (r *OccupancyRepository) BookingSpans(ctx context.Context, roomID int64, date string) ([]conflict.Span, error) {
	var rows []spanRow
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Select("id, start_minute, end_minute").
		Where("room_id = ? AND date = ?", roomID, date).
		Where("status IN ?", []string{string(domain.BookingPending), string(domain.BookingConfirmed)}).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]conflict.Span, 0, len(rows))
	for _, row := range rows {
		out = append(out, conflict.Span{
			BookingID: row.ID,
			Interval:  domain.Interval{Start: row.StartMinute, End: row.EndMinute},
		})
	}
	return out, nil
}

func (r *OccupancyRepository) BlockSpans(ctx context.Context, roomID int64, date string) ([]conflict.Span, error) {
	var rows []spanRow
	err := r.db.WithContext(ctx).
		Model(&domain.RoomBlock{}).
		Select("id, start_minute, end_minute").
		Where("room_id = ? AND date = ?", roomID, date).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]conflict.Span, 0, len(rows))
	for _, row := range rows {
		out = append(out, conflict.Span{
			Interval: domain.Interval{Start: row.StartMinute, End: row.EndMinute},
		})
	}
	return out, nil
}
