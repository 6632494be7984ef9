package domain

import "time"

// RoomBlock is an explicit, staff-created exclusion of a room for part of a
// day (maintenance, private hold). It occupies the room's timeline exactly
// like a pending/confirmed booking does.
type RoomBlock struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	RoomID         int64     `json:"room_id" gorm:"not null;index:idx_blocks_room_date"`
	OrganizationID int64     `json:"organization_id" gorm:"not null;index"`
	Date           string    `json:"date" gorm:"not null;index:idx_blocks_room_date"`
	StartMinute    int       `json:"-" gorm:"not null"`
	EndMinute      int       `json:"-" gorm:"not null"`
	Reason         string    `json:"reason" gorm:"type:text;not null" validate:"required"`
	CreatedBy      int64     `json:"created_by" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at"`
}

func (RoomBlock) TableName() string { return "room_blocks" }

func (bl *RoomBlock) Interval() Interval {
	return Interval{Start: bl.StartMinute, End: bl.EndMinute}
}
