package membership

import (
	"time"

	"github.com/dormhub/dormhub-go/internal/domain/dorm"
)

type MemberStatus string

const (
	MemberStatusPending  MemberStatus = "pending"
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
)

type MemberRole string

const (
	MemberRoleAdmin  MemberRole = "admin"
	MemberRoleMember MemberRole = "member"
	MemberRoleViewer MemberRole = "viewer"
)

// Membership links one user to one dorm. The capability flags are derived
// from MemberRole on every role write and cleared whenever the membership
// goes inactive.
type Membership struct {
	MembershipID        uint       `gorm:"primaryKey;column:membership_id" json:"membership_id"`
	UID                 uint       `gorm:"column:u_id;not null;uniqueIndex:idx_user_dorm" json:"uid"`
	DormID              uint       `gorm:"column:dorm_id;not null;uniqueIndex:idx_user_dorm" json:"dorm_id"`
	Dorm                dorm.Dorm  `gorm:"foreignKey:DormID;constraint:OnDelete:CASCADE" json:"-"`
	Status              string     `gorm:"size:20;default:'pending';not null" json:"status"`
	MemberRole          string     `gorm:"size:20;default:'member';not null" json:"member_role"`
	CanApproveExpenses  bool       `gorm:"not null;default:false" json:"can_approve_expenses"`
	CanInviteMembers    bool       `gorm:"not null;default:false" json:"can_invite_members"`
	CanManageFacilities bool       `gorm:"not null;default:false" json:"can_manage_facilities"`
	MoveInDate          *time.Time `json:"move_in_date"`
	MoveOutDate         *time.Time `json:"move_out_date"`
	InviteCode          *string    `gorm:"size:64;index" json:"invite_code,omitempty"`
	InviteExpiresAt     *time.Time `json:"invite_expires_at,omitempty"`
	CreatedAt           time.Time  `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt           time.Time  `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

// ApplyRole rewrites the capability flags from the role.
func (m *Membership) ApplyRole(role MemberRole) {
	m.MemberRole = string(role)
	switch role {
	case MemberRoleAdmin:
		m.CanApproveExpenses = true
		m.CanInviteMembers = true
		m.CanManageFacilities = true
	case MemberRoleMember:
		m.CanApproveExpenses = false
		m.CanInviteMembers = true
		m.CanManageFacilities = false
	default:
		m.ClearCapabilities()
	}
}

func (m *Membership) ClearCapabilities() {
	m.CanApproveExpenses = false
	m.CanInviteMembers = false
	m.CanManageFacilities = false
}

// ValidTransition reports whether a status change is allowed by the
// membership state machine.
func ValidTransition(from, to MemberStatus) bool {
	switch from {
	case MemberStatusPending:
		return to == MemberStatusActive || to == MemberStatusInactive
	case MemberStatusActive:
		return to == MemberStatusInactive
	case MemberStatusInactive:
		return to == MemberStatusActive
	}
	return false
}
