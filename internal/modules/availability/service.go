package availability

import (
	"context"
	"errors"
	"strings"

	"roombook/internal/domain"
	"roombook/internal/policy"
	"roombook/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	blocks  BlockRepository
	rooms   RoomRepository
	members MembershipResolver
	checker ConflictChecker
}

func NewService(blocks BlockRepository, rooms RoomRepository, members MembershipResolver, checker ConflictChecker) *Service {
	return &Service{blocks: blocks, rooms: rooms, members: members, checker: checker}
}

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

func mapWriteErr(err error) error {
	if errors.Is(err, repository.ErrOverlap) {
		return ErrSlotConflict
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23P01" || pgErr.Code == "23505" {
			return ErrSlotConflict
		}
	}
	return err
}

// Create registers a blocked window. Rejected when it overlaps a live
// booking; a cancelled or historical booking never blocks it.
func (s *Service) Create(ctx context.Context, userID int64, role domain.UserRole, req CreateBlockRequest) (*BlockResponse, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, ErrValidation
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	iv, err := domain.ParseInterval(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	actor, err := s.actorFor(ctx, userID, role, room.OrganizationID)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageAvailability(actor) {
		return nil, ErrForbidden
	}

	taken, err := s.checker.CheckBookings(ctx, room.ID, date, iv)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotConflict
	}

	bl := &domain.RoomBlock{
		RoomID:         room.ID,
		OrganizationID: room.OrganizationID,
		Date:           date,
		StartMinute:    iv.Start,
		EndMinute:      iv.End,
		Reason:         strings.TrimSpace(req.Reason),
		CreatedBy:      userID,
	}
	if err := s.blocks.CreateIfFree(ctx, bl); err != nil {
		return nil, mapWriteErr(err)
	}

	resp := toResponse(bl)
	return &resp, nil
}

// List returns blocked windows for a room in [from, to]. Staff only; the
// occupancy detail of another tenant's room is not public.
func (s *Service) List(ctx context.Context, userID int64, role domain.UserRole, roomID int64, from, to string) ([]BlockResponse, error) {
	fromDate, err := domain.ParseDate(from)
	if err != nil {
		return nil, err
	}
	toDate, err := domain.ParseDate(to)
	if err != nil {
		return nil, err
	}
	if fromDate > toDate {
		return nil, ErrValidation
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	actor, err := s.actorFor(ctx, userID, role, room.OrganizationID)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageAvailability(actor) {
		return nil, ErrForbidden
	}

	rows, err := s.blocks.ListByRoomRange(ctx, roomID, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	out := make([]BlockResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toResponse(&rows[i]))
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, userID int64, role domain.UserRole, id int64) error {
	bl, err := s.blocks.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	actor, err := s.actorFor(ctx, userID, role, bl.OrganizationID)
	if err != nil {
		return err
	}
	if !policy.CanManageAvailability(actor) {
		return ErrForbidden
	}
	return s.blocks.Delete(ctx, id)
}
