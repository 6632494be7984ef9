package booking

import (
	"context"
	"errors"
	"time"

	"roombook/internal/domain"
	"roombook/internal/policy"
	"roombook/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	bookings     BookingRepository
	rooms        RoomRepository
	members      MembershipResolver
	checker      ConflictChecker
	notifs       NotificationSender
	commissionBP int64
	cancelCutoff time.Duration
	now          func() time.Time
}

func NewService(
	bookings BookingRepository,
	rooms RoomRepository,
	members MembershipResolver,
	checker ConflictChecker,
	notifs NotificationSender,
	commissionBP int64,
	cancelCutoff time.Duration,
) *Service {
	return &Service{
		bookings:     bookings,
		rooms:        rooms,
		members:      members,
		checker:      checker,
		notifs:       notifs,
		commissionBP: commissionBP,
		cancelCutoff: cancelCutoff,
		now:          time.Now,
	}
}

// actorFor resolves the caller's role inside the organization that owns the
// resource. Admin skips the membership lookup.
func (s *Service) actorFor(ctx context.Context, userID int64, role domain.UserRole, orgID int64) (policy.Actor, error) {
	a := policy.Actor{UserID: userID, Role: role}
	if a.IsAdmin() {
		return a, nil
	}
	orgRole, err := s.members.RoleInOrg(ctx, userID, orgID)
	if err != nil {
		return policy.Actor{}, err
	}
	a.OrgRole = orgRole
	return a, nil
}

// mapWriteErr translates repository- and constraint-level overlap failures
// into the deterministic conflict error the caller can act on. The losing
// writer of a race must never see a generic failure.
func mapWriteErr(err error) error {
	if errors.Is(err, repository.ErrOverlap) {
		return ErrSlotConflict
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23P01 exclusion_violation / 23505 unique_violation from the
		// bookings_no_overlap constraint.
		if pgErr.Code == "23P01" || pgErr.Code == "23505" {
			return ErrSlotConflict
		}
	}
	return err
}

func (s *Service) Create(ctx context.Context, userID int64, role domain.UserRole, req CreateBookingRequest) (*BookingResponse, error) {
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	iv, err := domain.ParseInterval(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	method := domain.PaymentMethod(req.PaymentMethod)
	if req.PaymentMethod != "" && !validPaymentMethod(method) {
		return nil, ErrValidation
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !room.IsActive {
		return nil, ErrNotFound
	}

	// Advisory pre-check; the repository repeats it inside the insert
	// transaction to close the race window.
	taken, err := s.checker.Check(ctx, room.ID, date, iv, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotConflict
	}

	quote := ComputeAmount(room.HourlyRateCents, iv, s.commissionBP)

	b := &domain.Booking{
		Reference:       uuid.NewString(),
		RoomID:          room.ID,
		OrganizationID:  room.OrganizationID,
		UserID:          userID,
		Date:            date,
		StartMinute:     iv.Start,
		EndMinute:       iv.End,
		TotalCents:      quote.TotalCents,
		CommissionCents: quote.CommissionCents,
		Status:          domain.BookingPending,
		PaymentMethod:   method,
		PaymentStatus:   domain.PaymentUnpaid,
		Notes:           req.Notes,
	}

	if err := s.bookings.CreateIfFree(ctx, b); err != nil {
		return nil, mapWriteErr(err)
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCreated(ctx, b)
	}

	resp := toResponse(b)
	return &resp, nil
}

func (s *Service) Get(ctx context.Context, userID int64, role domain.UserRole, id int64) (*BookingResponse, error) {
	b, _, err := s.fetchAuthorized(ctx, userID, role, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(b)
	return &resp, nil
}

// fetchAuthorized loads the booking and runs the access policy. Denials
// surface as not-found so occupancy never leaks across tenants.
func (s *Service) fetchAuthorized(ctx context.Context, userID int64, role domain.UserRole, id int64) (*domain.Booking, policy.Actor, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, policy.Actor{}, ErrNotFound
	}
	if err != nil {
		return nil, policy.Actor{}, err
	}
	actor, err := s.actorFor(ctx, userID, role, b.OrganizationID)
	if err != nil {
		return nil, policy.Actor{}, err
	}
	if !policy.CanAccessBooking(actor, b) {
		return nil, policy.Actor{}, ErrNotFound
	}
	return b, actor, nil
}

func (s *Service) Update(ctx context.Context, userID int64, role domain.UserRole, id int64, req UpdateBookingRequest) (*BookingResponse, error) {
	b, actor, err := s.fetchAuthorized(ctx, userID, role, id)
	if err != nil {
		return nil, err
	}

	isRequester := b.UserID == userID
	timeChanged := false

	if req.changesInterval() {
		if b.Status.Terminal() {
			return nil, ErrInvalidState
		}
		if !policy.Allows(actor, policy.BookingEditTime) && !isRequester {
			return nil, ErrForbidden
		}

		date := b.Date
		if req.Date != nil {
			if date, err = domain.ParseDate(*req.Date); err != nil {
				return nil, err
			}
		}
		start := domain.FormatClock(b.StartMinute)
		if req.StartTime != nil {
			start = *req.StartTime
		}
		end := domain.FormatClock(b.EndMinute)
		if req.EndTime != nil {
			end = *req.EndTime
		}
		iv, err := domain.ParseInterval(start, end)
		if err != nil {
			return nil, err
		}

		// Re-validate against everything except this booking itself.
		taken, err := s.checker.Check(ctx, b.RoomID, date, iv, b.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlotConflict
		}

		room, err := s.rooms.GetByID(ctx, b.RoomID)
		if err != nil {
			return nil, err
		}
		quote := ComputeAmount(room.HourlyRateCents, iv, s.commissionBP)

		b.Date = date
		b.StartMinute = iv.Start
		b.EndMinute = iv.End
		b.TotalCents = quote.TotalCents
		b.CommissionCents = quote.CommissionCents
		timeChanged = true
	}

	notifyConfirmed := false
	notifyCancelled := false

	if req.Status != nil {
		next := domain.BookingStatus(*req.Status)
		if !next.Valid() {
			return nil, ErrValidation
		}
		if !b.Status.CanTransitionTo(next) {
			return nil, ErrInvalidState
		}
		if err := s.authorizeTransition(actor, b, isRequester, next); err != nil {
			return nil, err
		}

		b.Status = next
		switch next {
		case domain.BookingConfirmed:
			notifyConfirmed = true
		case domain.BookingCancelled:
			now := s.now()
			b.CancelledAt = &now
			if req.CancelReason != nil {
				b.CancelReason = *req.CancelReason
			}
			notifyCancelled = true
		}
	}

	if req.PaymentStatus != nil || req.PaymentMethod != nil {
		if !policy.Allows(actor, policy.BookingEditPayment) {
			return nil, ErrForbidden
		}
		if req.PaymentStatus != nil {
			ps := domain.PaymentStatus(*req.PaymentStatus)
			if !validPaymentStatus(ps) {
				return nil, ErrValidation
			}
			b.PaymentStatus = ps
		}
		if req.PaymentMethod != nil {
			pm := domain.PaymentMethod(*req.PaymentMethod)
			if *req.PaymentMethod != "" && !validPaymentMethod(pm) {
				return nil, ErrValidation
			}
			b.PaymentMethod = pm
		}
	}

	if req.Notes != nil {
		b.Notes = *req.Notes
	}

	if timeChanged {
		err = s.bookings.SaveIfFree(ctx, b)
	} else {
		err = s.bookings.Save(ctx, b)
	}
	if err != nil {
		return nil, mapWriteErr(err)
	}

	if s.notifs != nil {
		if notifyConfirmed {
			_ = s.notifs.NotifyBookingConfirmed(ctx, b)
		}
		if notifyCancelled {
			_ = s.notifs.NotifyBookingCancelled(ctx, b, b.CancelReason)
		}
	}

	resp := toResponse(b)
	return &resp, nil
}

// authorizeTransition enforces transition authority: staff moves bookings
// forward, the requester may only cancel their own booking, and only up to
// the cutoff before it starts.
func (s *Service) authorizeTransition(actor policy.Actor, b *domain.Booking, isRequester bool, next domain.BookingStatus) error {
	switch next {
	case domain.BookingConfirmed:
		if !policy.Allows(actor, policy.BookingConfirm) {
			return ErrForbidden
		}
	case domain.BookingCompleted, domain.BookingNoShow:
		if !policy.Allows(actor, policy.BookingClose) {
			return ErrForbidden
		}
	case domain.BookingCancelled:
		if policy.Allows(actor, policy.BookingCancel) {
			return nil
		}
		if !isRequester {
			return ErrForbidden
		}
		startsAt, err := b.StartsAt()
		if err != nil {
			return err
		}
		if s.now().Add(s.cancelCutoff).After(startsAt) {
			return ErrForbidden
		}
	default:
		return ErrForbidden
	}
	return nil
}

// Delete removes a booking outright. Distinct from cancellation: only
// non-terminal, unpaid bookings, and only the requester or an admin.
func (s *Service) Delete(ctx context.Context, userID int64, role domain.UserRole, id int64) error {
	b, actor, err := s.fetchAuthorized(ctx, userID, role, id)
	if err != nil {
		return err
	}
	if b.Status.Terminal() || b.PaymentStatus == domain.PaymentPaid {
		return ErrInvalidState
	}
	if b.UserID != userID && !actor.IsAdmin() {
		return ErrForbidden
	}
	return s.bookings.Delete(ctx, id)
}

func (s *Service) ListMine(ctx context.Context, userID int64, limit, offset int) ([]BookingResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := s.bookings.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toResponses(rows), nil
}

func (s *Service) ListForOrg(ctx context.Context, userID int64, role domain.UserRole, orgID int64, limit, offset int) ([]BookingResponse, error) {
	actor, err := s.actorFor(ctx, userID, role, orgID)
	if err != nil {
		return nil, err
	}
	if !policy.Allows(actor, policy.BookingRead) {
		return nil, ErrForbidden
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := s.bookings.ListByOrg(ctx, orgID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toResponses(rows), nil
}

func validPaymentMethod(m domain.PaymentMethod) bool {
	switch m {
	case domain.PaymentCash, domain.PaymentCard, domain.PaymentTransfer:
		return true
	}
	return false
}

func validPaymentStatus(s domain.PaymentStatus) bool {
	switch s {
	case domain.PaymentUnpaid, domain.PaymentPaid, domain.PaymentRefunded:
		return true
	}
	return false
}
