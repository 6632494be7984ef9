// Package policy maps (platform role, organization role, resource
// ownership) to allowed operations. The grant table is a closed, in-code
// mapping so adding a role forces every call site to be reconsidered.
package policy

import "roombook/internal/domain"

type Permission string

const (
	BookingRead        Permission = "booking:read"
	BookingConfirm     Permission = "booking:confirm"
	BookingClose       Permission = "booking:close" // completed / no_show
	BookingCancel      Permission = "booking:cancel"
	BookingEditTime    Permission = "booking:edit_time"
	BookingEditPayment Permission = "booking:edit_payment"
	AvailabilityManage Permission = "availability:manage"
)

// Actor is the authenticated principal, with its role resolved against the
// organization that owns the resource under inspection. OrgRole is empty
// when the actor has no membership there.
type Actor struct {
	UserID  int64
	Role    domain.UserRole
	OrgRole domain.OrgRole
}

// orgGrants is exhaustive over domain.OrgRole. Plain members get nothing
// beyond what requester-ownership grants them.
var orgGrants = map[domain.OrgRole]map[Permission]bool{
	domain.OrgOwner: {
		BookingRead:        true,
		BookingConfirm:     true,
		BookingClose:       true,
		BookingCancel:      true,
		BookingEditTime:    true,
		BookingEditPayment: true,
		AvailabilityManage: true,
	},
	domain.OrgManager: {
		BookingRead:        true,
		BookingConfirm:     true,
		BookingClose:       true,
		BookingCancel:      true,
		BookingEditTime:    true,
		BookingEditPayment: true,
		AvailabilityManage: true,
	},
	domain.OrgMember: {},
}

func (a Actor) IsAdmin() bool { return a.Role == domain.RoleAdmin }

// IsStaff reports whether the actor manages the organization in question.
func (a Actor) IsStaff() bool {
	return a.IsAdmin() || a.OrgRole == domain.OrgOwner || a.OrgRole == domain.OrgManager
}

// Allows checks one permission. Admin passes unconditionally.
func Allows(a Actor, p Permission) bool {
	if a.IsAdmin() {
		return true
	}
	return orgGrants[a.OrgRole][p]
}

// CanAccessBooking gates every read and write on a booking. It must run
// before any conflict check so occupancy information never leaks to
// unauthorized actors.
func CanAccessBooking(a Actor, b *domain.Booking) bool {
	if a.IsAdmin() {
		return true
	}
	if b.UserID == a.UserID {
		return true
	}
	return Allows(a, BookingRead)
}

// CanManageAvailability gates creation, listing and deletion of blocked
// windows for rooms of the actor's organization.
func CanManageAvailability(a Actor) bool {
	return Allows(a, AvailabilityManage)
}
