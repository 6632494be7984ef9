package domain

import "time"

type Organization struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	About     string    `json:"about,omitempty" gorm:"type:text"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Organization) TableName() string { return "organizations" }

// OrgRole is a user's role inside one organization. Plain members hold no
// staff permissions; owner and manager are the organization staff.
type OrgRole string

const (
	OrgOwner   OrgRole = "owner"
	OrgManager OrgRole = "manager"
	OrgMember  OrgRole = "member"
)

// Membership associates a user with an organization under a role.
type Membership struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	UserID         int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_member_org"`
	OrganizationID int64     `json:"organization_id" gorm:"not null;index;uniqueIndex:idx_member_org"`
	Role           OrgRole   `json:"role" gorm:"type:varchar(16);default:'member'"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Membership) TableName() string { return "memberships" }
