package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/dormhub/dormhub-go/internal/config"
	"github.com/dormhub/dormhub-go/internal/domain/dorm"
	"github.com/dormhub/dormhub-go/internal/domain/membership"
	"github.com/dormhub/dormhub-go/internal/domain/notification"
	"github.com/dormhub/dormhub-go/internal/repository"
	"github.com/dormhub/dormhub-go/pkg/apperr"
	"github.com/dormhub/dormhub-go/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipService owns the per-user, per-dorm membership state machine
// and keeps the dorm's occupancy counter and admin pointer consistent with
// the membership rows inside the same transaction.
type MembershipService struct {
	Repos  *repository.Repos
	Authz  Authorizer
	Notify *NotificationService
}

func NewMembershipService(repos *repository.Repos, authz Authorizer, notify *NotificationService) *MembershipService {
	return &MembershipService{
		Repos:  repos,
		Authz:  authz,
		Notify: notify,
	}
}

func (s *MembershipService) GetMembership(id uint) (membership.Membership, error) {
	m, err := s.Repos.Membership.GetMembershipByID(id)
	return m, apperr.FromDB(err, "membership")
}

func (s *MembershipService) ListByDorm(dormID uint) ([]membership.Membership, error) {
	return s.Repos.Membership.ListByDorm(dormID)
}

func (s *MembershipService) ListByUser(uid uint) ([]membership.Membership, error) {
	return s.Repos.Membership.ListByUser(uid)
}

// refreshOccupancy recomputes the dorm's cached occupancy from active
// memberships. Runs inside the caller's transaction, never async.
func (s *MembershipService) refreshOccupancy(repos *repository.Repos, dormID uint) error {
	count, err := repos.Membership.CountActiveByDorm(dormID)
	if err != nil {
		return err
	}
	return repos.Dorm.UpdateOccupancy(dormID, int(count))
}

// refreshAdminPointer re-derives Dorm.AdminID from admin-role memberships.
// Membership rows are authoritative; the dorm column is only a cache.
func (s *MembershipService) refreshAdminPointer(repos *repository.Repos, dormID uint) error {
	admin, err := repos.Membership.GetActiveAdmin(dormID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repos.Dorm.SetAdminID(dormID, nil)
		}
		return err
	}
	return repos.Dorm.SetAdminID(dormID, &admin.UID)
}

// guardActivation enforces the single-active-membership invariant and the
// dorm capacity bound before a membership may turn active.
func (s *MembershipService) guardActivation(repos *repository.Repos, m *membership.Membership) error {
	count, err := repos.Membership.CountActiveByUser(m.UID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflictf("user %d already has an active membership", m.UID)
	}

	d, err := repos.Dorm.GetDormByIDForUpdate(m.DormID)
	if err != nil {
		return apperr.FromDB(err, "dorm")
	}
	if d.Status != string(dorm.DormStatusActive) && d.Status != string(dorm.DormStatusMaintenance) {
		return apperr.Conflictf("dorm %s is not accepting members", d.DormCode)
	}
	if d.CurrentOccupancy >= d.Capacity {
		return apperr.Validationf("dorm %s is at capacity (%d)", d.DormCode, d.Capacity)
	}
	return nil
}

// resolveUnpaidSplits applies the caller's policy to a member's unpaid
// expense splits ahead of deactivation. No policy with a balance
// outstanding is a conflict, never a silent default.
func (s *MembershipService) resolveUnpaidSplits(repos *repository.Repos, m *membership.Membership, policy *string) error {
	splits, err := repos.Expense.ListUnpaidSplits(m.UID, m.DormID)
	if err != nil {
		return err
	}
	if len(splits) == 0 {
		return nil
	}

	var outstanding float64
	for _, split := range splits {
		outstanding += split.Amount
	}

	if policy == nil {
		return apperr.Conflictf("member has unpaid expense splits totalling %.2f; set handle_unpaid_expenses to waive or keep", outstanding)
	}
	if *policy == string(membership.UnpaidPolicyWaive) {
		return repos.Expense.WaiveSplits(m.UID, m.DormID)
	}
	// keep: balances stay outstanding
	return nil
}

func (s *MembershipService) AddMember(c *gin.Context, input membership.AddMemberDTO, actorID uint) (*membership.Membership, error) {
	canManage, err := s.Authz.CanManageDorm(actorID, input.DormID)
	if err != nil {
		return nil, err
	}
	if !canManage {
		actorMembership, err := s.Repos.Membership.GetByUserAndDorm(actorID, input.DormID)
		if err != nil || actorMembership.Status != string(membership.MemberStatusActive) || !actorMembership.CanInviteMembers {
			return nil, apperr.Permissionf("actor %d may not add members to dorm %d", actorID, input.DormID)
		}
	}

	if _, err := s.Repos.User.GetUserByID(input.UID); err != nil {
		return nil, apperr.FromDB(err, "user")
	}

	var created membership.Membership
	err = s.Repos.ExecTx(func(repos *repository.Repos) error {
		if _, err := repos.Membership.GetByUserAndDorm(input.UID, input.DormID); err == nil {
			return apperr.Conflictf("user %d already has a membership in dorm %d", input.UID, input.DormID)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		m := membership.Membership{
			UID:        input.UID,
			DormID:     input.DormID,
			Status:     string(membership.MemberStatusPending),
			MoveInDate: input.MoveInDate,
		}
		role := membership.MemberRole(input.MemberRole)
		if role == "" {
			role = membership.MemberRoleMember
		}
		m.ApplyRole(role)

		if input.Status == string(membership.MemberStatusActive) {
			if err := s.guardActivation(repos, &m); err != nil {
				return err
			}
			m.Status = string(membership.MemberStatusActive)
			if m.MoveInDate == nil {
				now := time.Now()
				m.MoveInDate = &now
			}
		} else {
			code := uuid.NewString()
			expires := time.Now().Add(time.Duration(config.InviteExpiryHours) * time.Hour)
			m.InviteCode = &code
			m.InviteExpiresAt = &expires
			m.ClearCapabilities()
		}

		if err := repos.Membership.CreateMembership(&m); err != nil {
			return apperr.FromDB(err, "membership")
		}

		if m.Status == string(membership.MemberStatusActive) {
			if err := s.refreshOccupancy(repos, m.DormID); err != nil {
				return err
			}
			if err := s.refreshAdminPointer(repos, m.DormID); err != nil {
				return err
			}
		}

		created = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "membership",
		fmt.Sprintf("membership_id=%d", created.MembershipID),
		nil, created, "", s.Repos.Audit)
	inviter, err := s.Repos.User.GetUsernameByID(actorID)
	if err != nil {
		inviter = "an administrator"
	}
	s.Notify.Dispatch(&notification.Notification{
		Title:    "Dorm invitation",
		Content:  fmt.Sprintf("You have been added to dorm %d by %s", created.DormID, inviter),
		Type:     string(notification.TypeInvite),
		UID:      created.UID,
		DormID:   &created.DormID,
		SenderID: &actorID,
	})

	return &created, nil
}

// AcceptInvite confirms a pending membership through its invite code.
// Only the invited user may redeem it.
func (s *MembershipService) AcceptInvite(c *gin.Context, code string, actorID uint) (*membership.Membership, error) {
	var updated membership.Membership
	err := s.Repos.ExecTx(func(repos *repository.Repos) error {
		m, err := repos.Membership.GetByInviteCode(code)
		if err != nil {
			return apperr.FromDB(err, "invite")
		}
		if m.UID != actorID {
			return apperr.Permissionf("invite belongs to another user")
		}
		if m.Status != string(membership.MemberStatusPending) {
			return apperr.Conflictf("invite is no longer pending")
		}
		if m.InviteExpiresAt != nil && m.InviteExpiresAt.Before(time.Now()) {
			return apperr.Conflictf("invite expired at %s", m.InviteExpiresAt.Format(time.RFC3339))
		}

		m, err = repos.Membership.GetMembershipByIDForUpdate(m.MembershipID)
		if err != nil {
			return apperr.FromDB(err, "membership")
		}
		if err := s.guardActivation(repos, &m); err != nil {
			return err
		}

		m.Status = string(membership.MemberStatusActive)
		m.ApplyRole(membership.MemberRole(m.MemberRole))
		m.InviteCode = nil
		m.InviteExpiresAt = nil
		if m.MoveInDate == nil {
			now := time.Now()
			m.MoveInDate = &now
		}
		if err := repos.Membership.UpdateMembership(&m); err != nil {
			return err
		}

		if err := s.refreshOccupancy(repos, m.DormID); err != nil {
			return err
		}
		if err := s.refreshAdminPointer(repos, m.DormID); err != nil {
			return err
		}
		updated = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "update", "membership",
		fmt.Sprintf("membership_id=%d", updated.MembershipID),
		nil, updated, "invite accepted", s.Repos.Audit)
	s.Notify.Dispatch(&notification.Notification{
		Title:   "Welcome",
		Content: fmt.Sprintf("Your membership in dorm %d is now active", updated.DormID),
		Type:    string(notification.TypeMembership),
		UID:     updated.UID,
		DormID:  &updated.DormID,
	})

	return &updated, nil
}

func (s *MembershipService) UpdateMemberStatus(c *gin.Context, membershipID uint, input membership.UpdateStatusDTO, actorID uint) (*membership.Membership, error) {
	var old, updated membership.Membership
	err := s.Repos.ExecTx(func(repos *repository.Repos) error {
		m, err := repos.Membership.GetMembershipByIDForUpdate(membershipID)
		if err != nil {
			return apperr.FromDB(err, "membership")
		}
		old = m

		from := membership.MemberStatus(m.Status)
		to := membership.MemberStatus(input.Status)
		if !membership.ValidTransition(from, to) {
			return apperr.Validationf("invalid membership status transition %s -> %s", from, to)
		}

		if from == membership.MemberStatusActive && to == membership.MemberStatusInactive {
			// Move-out may only be requested by an administrator or the
			// member themself.
			isAdmin, err := s.Authz.IsAdmin(actorID)
			if err != nil {
				return err
			}
			if !isAdmin && m.UID != actorID {
				return apperr.Permissionf("only an administrator or the member may deactivate this membership")
			}
			if err := s.resolveUnpaidSplits(repos, &m, input.HandleUnpaidExpenses); err != nil {
				return err
			}
		} else {
			canManage, err := s.Authz.CanManageMembership(actorID, membershipID)
			if err != nil {
				return err
			}
			if !canManage {
				return apperr.Permissionf("actor %d may not change membership %d", actorID, membershipID)
			}
		}

		switch to {
		case membership.MemberStatusActive:
			if err := s.guardActivation(repos, &m); err != nil {
				return err
			}
			m.Status = string(to)
			m.ApplyRole(membership.MemberRole(m.MemberRole))
			m.InviteCode = nil
			m.InviteExpiresAt = nil
			m.MoveOutDate = nil
			if m.MoveInDate == nil {
				now := time.Now()
				m.MoveInDate = &now
			}
		case membership.MemberStatusInactive:
			m.Status = string(to)
			m.ClearCapabilities()
			if from == membership.MemberStatusActive {
				now := time.Now()
				m.MoveOutDate = &now
			}
		default:
			m.Status = string(to)
		}

		if err := repos.Membership.UpdateMembership(&m); err != nil {
			return err
		}
		if err := s.refreshOccupancy(repos, m.DormID); err != nil {
			return err
		}
		if err := s.refreshAdminPointer(repos, m.DormID); err != nil {
			return err
		}
		updated = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "update", "membership",
		fmt.Sprintf("membership_id=%d", membershipID),
		old, updated, "", s.Repos.Audit)
	s.Notify.Dispatch(&notification.Notification{
		Title:    "Membership status changed",
		Content:  fmt.Sprintf("Your membership status is now %s", updated.Status),
		Type:     string(notification.TypeMembership),
		UID:      updated.UID,
		DormID:   &updated.DormID,
		SenderID: &actorID,
	})

	return &updated, nil
}

func (s *MembershipService) UpdateMemberRole(c *gin.Context, membershipID uint, input membership.UpdateRoleDTO, actorID uint) (*membership.Membership, error) {
	var old, updated membership.Membership
	err := s.Repos.ExecTx(func(repos *repository.Repos) error {
		m, err := repos.Membership.GetMembershipByIDForUpdate(membershipID)
		if err != nil {
			return apperr.FromDB(err, "membership")
		}
		old = m

		canManage, err := s.Authz.CanManageDorm(actorID, m.DormID)
		if err != nil {
			return err
		}
		if !canManage {
			return apperr.Permissionf("actor %d may not change roles in dorm %d", actorID, m.DormID)
		}

		newRole := membership.MemberRole(input.MemberRole)
		demotingAdmin := m.MemberRole == string(membership.MemberRoleAdmin) &&
			newRole != membership.MemberRoleAdmin &&
			m.Status == string(membership.MemberStatusActive)
		if demotingAdmin {
			admins, err := repos.Membership.CountActiveAdminsByDorm(m.DormID)
			if err != nil {
				return err
			}
			if admins <= 1 {
				return apperr.Conflictf("cannot demote the last admin of dorm %d", m.DormID)
			}
		}

		m.ApplyRole(newRole)
		if m.Status != string(membership.MemberStatusActive) {
			m.ClearCapabilities()
		}
		if err := repos.Membership.UpdateMembership(&m); err != nil {
			return err
		}
		if err := s.refreshAdminPointer(repos, m.DormID); err != nil {
			return err
		}
		updated = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "update", "membership",
		fmt.Sprintf("membership_id=%d", membershipID),
		old, updated, "role change", s.Repos.Audit)
	if updated.MemberRole == string(membership.MemberRoleAdmin) && old.MemberRole != updated.MemberRole {
		s.Notify.Dispatch(&notification.Notification{
			Title:    "Promoted to dorm admin",
			Content:  fmt.Sprintf("You are now an administrator of dorm %d", updated.DormID),
			Type:     string(notification.TypeMembership),
			UID:      updated.UID,
			DormID:   &updated.DormID,
			SenderID: &actorID,
		})
	}

	return &updated, nil
}

// RemoveMember retires a membership, physically or logically. Removing the
// dorm's registered admin first elects a replacement: the caller's explicit
// choice, or any other active member, or the operation fails.
func (s *MembershipService) RemoveMember(c *gin.Context, membershipID uint, input membership.RemoveMemberDTO, actorID uint) error {
	var old membership.Membership
	err := s.Repos.ExecTx(func(repos *repository.Repos) error {
		m, err := repos.Membership.GetMembershipByIDForUpdate(membershipID)
		if err != nil {
			return apperr.FromDB(err, "membership")
		}
		old = m

		canManage, err := s.Authz.CanManageDorm(actorID, m.DormID)
		if err != nil {
			return err
		}
		if !canManage {
			return apperr.Permissionf("actor %d may not remove members from dorm %d", actorID, m.DormID)
		}

		d, err := repos.Dorm.GetDormByIDForUpdate(m.DormID)
		if err != nil {
			return apperr.FromDB(err, "dorm")
		}

		if m.Status == string(membership.MemberStatusActive) {
			if err := s.resolveUnpaidSplits(repos, &m, input.HandleUnpaidExpenses); err != nil {
				return err
			}
		}

		if d.AdminID != nil && *d.AdminID == m.UID {
			if err := s.electReplacementAdmin(repos, &m, input.NewAdminID); err != nil {
				return err
			}
		}

		if input.Physical {
			if err := repos.Membership.DeleteMembership(m.MembershipID); err != nil {
				return apperr.FromDB(err, "membership")
			}
		} else {
			m.Status = string(membership.MemberStatusInactive)
			m.ClearCapabilities()
			now := time.Now()
			m.MoveOutDate = &now
			if err := repos.Membership.UpdateMembership(&m); err != nil {
				return err
			}
		}

		if err := s.refreshOccupancy(repos, m.DormID); err != nil {
			return err
		}
		return s.refreshAdminPointer(repos, m.DormID)
	})
	if err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "membership",
		fmt.Sprintf("membership_id=%d", membershipID),
		old, nil, "", s.Repos.Audit)
	s.Notify.Dispatch(&notification.Notification{
		Title:    "Membership removed",
		Content:  fmt.Sprintf("Your membership in dorm %d has ended", old.DormID),
		Type:     string(notification.TypeMembership),
		UID:      old.UID,
		DormID:   &old.DormID,
		SenderID: &actorID,
	})

	return nil
}

// electReplacementAdmin promotes either the caller's explicit choice or an
// alternative active member before the current admin can be removed. Runs
// inside the removal transaction.
func (s *MembershipService) electReplacementAdmin(repos *repository.Repos, removed *membership.Membership, newAdminID *uint) error {
	var replacement membership.Membership
	if newAdminID != nil {
		if *newAdminID == removed.UID {
			return apperr.Validationf("replacement admin %d is the member being removed", *newAdminID)
		}
		m, err := repos.Membership.GetByUserAndDorm(*newAdminID, removed.DormID)
		if err != nil {
			return apperr.FromDB(err, "replacement membership")
		}
		if m.Status != string(membership.MemberStatusActive) {
			return apperr.Validationf("replacement admin %d is not an active member", *newAdminID)
		}
		replacement = m
	} else {
		m, err := repos.Membership.FindAlternativeAdmin(removed.DormID, removed.MembershipID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Conflictf("cannot remove the dorm administrator: no replacement available")
			}
			return err
		}
		replacement = m
	}

	replacement.ApplyRole(membership.MemberRoleAdmin)
	if err := repos.Membership.UpdateMembership(&replacement); err != nil {
		return err
	}
	return repos.Dorm.SetAdminID(removed.DormID, &replacement.UID)
}

// CheckDormConsistency verifies the cached occupancy counter and admin
// pointer against the membership rows. Intended for tests and admin
// tooling.
func (s *MembershipService) CheckDormConsistency(dormID uint) error {
	d, err := s.Repos.Dorm.GetDormByID(dormID)
	if err != nil {
		return apperr.FromDB(err, "dorm")
	}

	count, err := s.Repos.Membership.CountActiveByDorm(dormID)
	if err != nil {
		return err
	}
	if d.CurrentOccupancy != int(count) {
		return fmt.Errorf("dorm %d occupancy cache is %d, active memberships are %d", dormID, d.CurrentOccupancy, count)
	}

	admins, err := s.Repos.Membership.CountActiveAdminsByDorm(dormID)
	if err != nil {
		return err
	}
	if admins == 0 {
		if d.AdminID != nil {
			return fmt.Errorf("dorm %d has admin pointer %d but no active admin membership", dormID, *d.AdminID)
		}
		return nil
	}
	if d.AdminID == nil {
		return fmt.Errorf("dorm %d has %d active admin memberships but no admin pointer", dormID, admins)
	}
	m, err := s.Repos.Membership.GetByUserAndDorm(*d.AdminID, dormID)
	if err != nil {
		return apperr.FromDB(err, "admin membership")
	}
	if m.Status != string(membership.MemberStatusActive) || m.MemberRole != string(membership.MemberRoleAdmin) {
		return fmt.Errorf("dorm %d admin pointer %d does not reference an active admin membership", dormID, *d.AdminID)
	}
	return nil
}
