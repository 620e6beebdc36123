package membership

import "time"

type AddMemberDTO struct {
	DormID     uint       `json:"dorm_id" form:"dorm_id" binding:"required"`
	UID        uint       `json:"uid" form:"uid" binding:"required"`
	MemberRole string     `json:"member_role" form:"member_role" binding:"omitempty,oneof=admin member viewer"`
	Status     string     `json:"status" form:"status" binding:"omitempty,oneof=pending active"`
	MoveInDate *time.Time `json:"move_in_date" form:"move_in_date"`
}

// UnpaidPolicy decides what happens to a member's outstanding expense
// splits when the membership goes inactive.
type UnpaidPolicy string

const (
	UnpaidPolicyWaive UnpaidPolicy = "waive"
	UnpaidPolicyKeep  UnpaidPolicy = "keep"
)

type UpdateStatusDTO struct {
	Status               string  `json:"status" form:"status" binding:"required,oneof=pending active inactive"`
	HandleUnpaidExpenses *string `json:"handle_unpaid_expenses" form:"handle_unpaid_expenses" binding:"omitempty,oneof=waive keep"`
}

type UpdateRoleDTO struct {
	MemberRole string `json:"member_role" form:"member_role" binding:"required,oneof=admin member viewer"`
}

type RemoveMemberDTO struct {
	Physical             bool    `json:"physical" form:"physical"`
	NewAdminID           *uint   `json:"new_admin_id" form:"new_admin_id"`
	HandleUnpaidExpenses *string `json:"handle_unpaid_expenses" form:"handle_unpaid_expenses" binding:"omitempty,oneof=waive keep"`
}

type AcceptInviteDTO struct {
	InviteCode string `json:"invite_code" form:"invite_code" binding:"required"`
}
