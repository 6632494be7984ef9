package repository

import (
	"context"

	"roombook/internal/domain"

	"gorm.io/gorm"
)

type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// CreateIfFree inserts the blocked window unless it overlaps an occupying
// booking, atomically. Overlapping another staff hold is allowed.
func (r *AvailabilityRepository) CreateIfFree(ctx context.Context, bl *domain.RoomBlock) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRoom(tx, bl.RoomID); err != nil {
			return err
		}

		var cnt int64
		err := tx.Model(&domain.Booking{}).
			Where("room_id = ? AND date = ?", bl.RoomID, bl.Date).
			Where("status IN ?", []string{string(domain.BookingPending), string(domain.BookingConfirmed)}).
			Where("start_minute < ? AND ? < end_minute", bl.EndMinute, bl.StartMinute).
			Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrOverlap
		}
		return tx.Create(bl).Error
	})
}

func (r *AvailabilityRepository) GetByID(ctx context.Context, id int64) (*domain.RoomBlock, error) {
	var bl domain.RoomBlock
	if err := r.db.WithContext(ctx).First(&bl, id).Error; err != nil {
		return nil, err
	}
	return &bl, nil
}

func (r *AvailabilityRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.RoomBlock{}, id).Error
}

// ListByRoomRange returns blocked windows for a room with date in [from, to].
func (r *AvailabilityRepository) ListByRoomRange(ctx context.Context, roomID int64, from, to string) ([]domain.RoomBlock, error) {
	var out []domain.RoomBlock
	err := r.db.WithContext(ctx).
		Where("room_id = ? AND date >= ? AND date <= ?", roomID, from, to).
		Order("date, start_minute").
		Find(&out).Error
	return out, err
}
