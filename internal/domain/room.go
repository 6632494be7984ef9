package domain

import "time"

type Room struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	OrganizationID  int64     `json:"organization_id" gorm:"not null;index"`
	Name            string    `json:"name" validate:"required"`
	Description     string    `json:"description,omitempty" gorm:"type:text"`
	Capacity        int       `json:"capacity" validate:"required,gt=0"`
	HourlyRateCents int64     `json:"hourly_rate_cents" validate:"required,gt=0"`
	IsActive        bool      `json:"is_active" gorm:"default:true"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Room) TableName() string { return "rooms" }
