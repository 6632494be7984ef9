package repository

import (
	"context"
	"errors"

	"roombook/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrOverlap is returned when the in-transaction re-check finds the slot
// already taken. The service layer translates it to its conflict error.
var ErrOverlap = errors.New("interval overlaps an occupying record")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// lockRoom serializes writers for one room inside the surrounding
// transaction. SQLite has a single writer already, so the row lock is
// postgres-only.
func lockRoom(tx *gorm.DB, roomID int64) error {
	if tx.Dialector.Name() != "postgres" {
		var room domain.Room
		return tx.First(&room, roomID).Error
	}
	var room domain.Room
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, roomID).Error
}

// slotTaken re-runs the overlap test against occupying bookings and blocked
// windows. Must be called inside the same transaction as the write.
func slotTaken(tx *gorm.DB, roomID int64, date string, startMinute, endMinute int, excludeBookingID int64) (bool, error) {
	var cnt int64
	q := tx.Model(&domain.Booking{}).
		Where("room_id = ? AND date = ?", roomID, date).
		Where("status IN ?", []string{string(domain.BookingPending), string(domain.BookingConfirmed)}).
		Where("start_minute < ? AND ? < end_minute", endMinute, startMinute)
	if excludeBookingID != 0 {
		q = q.Where("id <> ?", excludeBookingID)
	}
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	if cnt > 0 {
		return true, nil
	}

	err := tx.Model(&domain.RoomBlock{}).
		Where("room_id = ? AND date = ?", roomID, date).
		Where("start_minute < ? AND ? < end_minute", endMinute, startMinute).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// CreateIfFree inserts the booking only if its interval is still free,
// atomically. Returns ErrOverlap when another writer got there first.
func (r *BookingRepository) CreateIfFree(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRoom(tx, b.RoomID); err != nil {
			return err
		}
		taken, err := slotTaken(tx, b.RoomID, b.Date, b.StartMinute, b.EndMinute, 0)
		if err != nil {
			return err
		}
		if taken {
			return ErrOverlap
		}
		return tx.Create(b).Error
	})
}

// SaveIfFree persists an edited booking, re-validating its interval against
// everything except the booking itself inside the same transaction.
func (r *BookingRepository) SaveIfFree(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRoom(tx, b.RoomID); err != nil {
			return err
		}
		taken, err := slotTaken(tx, b.RoomID, b.Date, b.StartMinute, b.EndMinute, b.ID)
		if err != nil {
			return err
		}
		if taken {
			return ErrOverlap
		}
		return tx.Save(b).Error
	})
}

// Save persists changes that do not touch the interval (status, payment,
// notes). No conflict re-check.
func (r *BookingRepository) Save(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Booking{}, id).Error
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, start_minute DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, err
}

func (r *BookingRepository) ListByOrg(ctx context.Context, orgID int64, limit, offset int) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("date DESC, start_minute DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, err
}
