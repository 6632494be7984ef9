package booking

import "roombook/internal/domain"

type CreateBookingRequest struct {
	RoomID        int64  `json:"room_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	StartTime     string `json:"start_time" binding:"required"`
	EndTime       string `json:"end_time" binding:"required"`
	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes"`
}

// UpdateBookingRequest is a partial update; nil fields stay untouched.
type UpdateBookingRequest struct {
	Date          *string `json:"date"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
	Status        *string `json:"status"`
	PaymentStatus *string `json:"payment_status"`
	PaymentMethod *string `json:"payment_method"`
	Notes         *string `json:"notes"`
	CancelReason  *string `json:"cancel_reason"`
}

func (r UpdateBookingRequest) changesInterval() bool {
	return r.Date != nil || r.StartTime != nil || r.EndTime != nil
}

type BookingResponse struct {
	ID              int64  `json:"id"`
	Reference       string `json:"reference"`
	RoomID          int64  `json:"room_id"`
	OrganizationID  int64  `json:"organization_id"`
	UserID          int64  `json:"user_id"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	TotalCents      int64  `json:"total_cents"`
	CommissionCents int64  `json:"commission_cents"`
	Status          string `json:"status"`
	PaymentMethod   string `json:"payment_method,omitempty"`
	PaymentStatus   string `json:"payment_status"`
	Notes           string `json:"notes,omitempty"`
	CancelReason    string `json:"cancel_reason,omitempty"`
}

func toResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		Reference:       b.Reference,
		RoomID:          b.RoomID,
		OrganizationID:  b.OrganizationID,
		UserID:          b.UserID,
		Date:            b.Date,
		StartTime:       domain.FormatClock(b.StartMinute),
		EndTime:         domain.FormatClock(b.EndMinute),
		TotalCents:      b.TotalCents,
		CommissionCents: b.CommissionCents,
		Status:          string(b.Status),
		PaymentMethod:   string(b.PaymentMethod),
		PaymentStatus:   string(b.PaymentStatus),
		Notes:           b.Notes,
		CancelReason:    b.CancelReason,
	}
}

func toResponses(bs []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bs))
	for i := range bs {
		out = append(out, toResponse(&bs[i]))
	}
	return out
}
