package notify

import (
	"context"

	"roombook/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, id int64) error
}

// StaffResolver finds the staff users of an organization, the recipients
// for new-booking events.
type StaffResolver interface {
	StaffOf(ctx context.Context, orgID int64) ([]int64, error)
}

type Service struct {
	repo  NotificationRepository
	staff StaffResolver
	hub   *Hub
}

func NewService(repo NotificationRepository, staff StaffResolver, hub *Hub) *Service {
	return &Service{repo: repo, staff: staff, hub: hub}
}

type bookingEvent struct {
	Type      domain.NotificationType `json:"type"`
	BookingID int64                   `json:"booking_id"`
	RoomID    int64                   `json:"room_id"`
	Date      string                  `json:"date"`
	Start     string                  `json:"start_time"`
	End       string                  `json:"end_time"`
}

func eventFor(t domain.NotificationType, b *domain.Booking) bookingEvent {
	return bookingEvent{
		Type:      t,
		BookingID: b.ID,
		RoomID:    b.RoomID,
		Date:      b.Date,
		Start:     domain.FormatClock(b.StartMinute),
		End:       domain.FormatClock(b.EndMinute),
	}
}

func (s *Service) deliver(ctx context.Context, userID int64, t domain.NotificationType, title, message string, b *domain.Booking) error {
	n := &domain.Notification{
		UserID:  userID,
		Type:    t,
		Title:   title,
		Message: message,
		Data:    eventFor(t, b),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.Push(userID, eventFor(t, b))
	}
	return nil
}

// NotifyBookingCreated informs the organization's staff of a new request.
func (s *Service) NotifyBookingCreated(ctx context.Context, b *domain.Booking) error {
	ids, err := s.staff.StaffOf(ctx, b.OrganizationID)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := s.deliver(ctx, id, domain.NotifBookingCreated, "New booking request", "A room booking is awaiting confirmation", b); err != nil {
			return err
		}
	}
	return nil
}

// NotifyBookingConfirmed informs the requesting user.
func (s *Service) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking) error {
	return s.deliver(ctx, b.UserID, domain.NotifBookingConfirmed, "Booking confirmed", "Your booking was confirmed", b)
}

// NotifyBookingCancelled informs the requesting user with the reason.
func (s *Service) NotifyBookingCancelled(ctx context.Context, b *domain.Booking, reason string) error {
	return s.deliver(ctx, b.UserID, domain.NotifBookingCancelled, "Booking cancelled", reason, b)
}

func (s *Service) ListForUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) MarkRead(ctx context.Context, userID, id int64) error {
	return s.repo.MarkRead(ctx, userID, id)
}
