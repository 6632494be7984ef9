package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
	BookingNoShow    BookingStatus = "no_show"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

// bookingTransitions is the full lifecycle table. Statuses without an entry
// are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCancelled, BookingCompleted, BookingNoShow},
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s BookingStatus) Terminal() bool {
	return len(bookingTransitions[s]) == 0
}

// Occupies reports whether a booking in this status claims its time slot.
// Cancelled and historical (completed/no-show) bookings never block.
func (s BookingStatus) Occupies() bool {
	return s == BookingPending || s == BookingConfirmed
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted, BookingNoShow:
		return true
	}
	return false
}

type Booking struct {
	ID              int64         `json:"id" gorm:"primaryKey"`
	Reference       string        `json:"reference" gorm:"uniqueIndex"`
	RoomID          int64         `json:"room_id" gorm:"not null;index:idx_bookings_room_date"`
	OrganizationID  int64         `json:"organization_id" gorm:"not null;index"`
	UserID          int64         `json:"user_id" gorm:"not null;index"`
	Date            string        `json:"date" gorm:"not null;index:idx_bookings_room_date"`
	StartMinute     int           `json:"-" gorm:"not null"`
	EndMinute       int           `json:"-" gorm:"not null"`
	TotalCents      int64         `json:"total_cents"`
	CommissionCents int64         `json:"commission_cents"`
	Status          BookingStatus `json:"status" gorm:"type:varchar(16);default:'pending'"`
	PaymentMethod   PaymentMethod `json:"payment_method,omitempty" gorm:"type:varchar(16)"`
	PaymentStatus   PaymentStatus `json:"payment_status" gorm:"type:varchar(16);default:'unpaid'"`
	Notes           string        `json:"notes,omitempty" gorm:"type:text"`
	CancelReason    string        `json:"cancel_reason,omitempty" gorm:"type:text"`
	CancelledAt     *time.Time    `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Room *Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

func (Booking) TableName() string { return "bookings" }

func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartMinute, End: b.EndMinute}
}

// StartsAt resolves the booking's date + start time to a UTC instant,
// used for the cancellation-cutoff check.
func (b *Booking) StartsAt() (time.Time, error) {
	day, err := time.Parse(DateLayout, b.Date)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(b.StartMinute) * time.Minute), nil
}
