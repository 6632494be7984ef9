package catalog

import (
	"context"
	"errors"

	"roombook/internal/domain"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

type OrganizationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Organization, error)
	ListActive(ctx context.Context) ([]domain.Organization, error)
	ListAll(ctx context.Context) ([]domain.Organization, error)
}

type RoomRepository interface {
	ListByOrg(ctx context.Context, orgID int64) ([]domain.Room, error)
}

// Service exposes the public, read-only marketplace listing.
type Service struct {
	orgs  OrganizationRepository
	rooms RoomRepository
}

func NewService(orgs OrganizationRepository, rooms RoomRepository) *Service {
	return &Service{orgs: orgs, rooms: rooms}
}

func (s *Service) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	return s.orgs.ListActive(ctx)
}

// ListAllOrganizations includes inactive organizations; exposed only behind
// the admin role gate.
func (s *Service) ListAllOrganizations(ctx context.Context) ([]domain.Organization, error) {
	return s.orgs.ListAll(ctx)
}

func (s *Service) ListRooms(ctx context.Context, orgID int64) ([]domain.Room, error) {
	org, err := s.orgs.GetByID(ctx, orgID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !org.IsActive {
		return nil, ErrNotFound
	}
	return s.rooms.ListByOrg(ctx, org.ID)
}
