package repository

import (
	"context"
	"errors"

	"roombook/internal/domain"

	"gorm.io/gorm"
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	var org domain.Organization
	if err := r.db.WithContext(ctx).First(&org, id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepository) ListActive(ctx context.Context) ([]domain.Organization, error) {
	var out []domain.Organization
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name").
		Find(&out).Error
	return out, err
}

// ListAll returns every organization, inactive ones included. Admin only.
func (r *OrganizationRepository) ListAll(ctx context.Context) ([]domain.Organization, error) {
	var out []domain.Organization
	err := r.db.WithContext(ctx).Order("name").Find(&out).Error
	return out, err
}

// RoleInOrg resolves a user's role inside an organization. Returns the
// empty role when the user holds no membership there.
func (r *OrganizationRepository) RoleInOrg(ctx context.Context, userID, orgID int64) (domain.OrgRole, error) {
	var m domain.Membership
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND organization_id = ?", userID, orgID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return m.Role, nil
}

// StaffOf returns the user IDs of the organization's owners and managers,
// used as notification recipients.
func (r *OrganizationRepository) StaffOf(ctx context.Context, orgID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&domain.Membership{}).
		Where("organization_id = ? AND role IN ?", orgID, []string{string(domain.OrgOwner), string(domain.OrgManager)}).
		Pluck("user_id", &ids).Error
	return ids, err
}
