package application

import (
	"testing"
	"time"

	"github.com/dormhub/dormhub-go/internal/domain/dorm"
	"github.com/dormhub/dormhub-go/internal/domain/membership"
	"github.com/dormhub/dormhub-go/internal/domain/user"
	"github.com/dormhub/dormhub-go/pkg/apperr"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupMembershipService(t *testing.T, authz *stubAuthz) (*MembershipService, *serviceMocks) {
	m := newServiceMocks(t)
	svc := NewMembershipService(m.repos, authz, m.notifyService())
	return svc, m
}

// --------------------- AddMember ---------------------

func TestAddMember_PendingInviteGetsCode(t *testing.T) {
	svc, m := setupMembershipService(t, &stubAuthz{manageDorm: true})

	m.user.EXPECT().GetUserByID(uint(2)).Return(user.User{UID: 2}, nil)
	m.membership.EXPECT().GetByUserAndDorm(uint(2), uint(7)).Return(membership.Membership{}, gorm.ErrRecordNotFound)
	m.membership.EXPECT().CreateMembership(gomock.Any()).DoAndReturn(func(mem *membership.Membership) error {
		mem.MembershipID = 10
		return nil
	})

	created, err := svc.AddMember(nil, membership.AddMemberDTO{DormID: 7, UID: 2}, 1)
	assert.NoError(t, err)
	assert.Equal(t, string(membership.MemberStatusPending), created.Status)
	assert.NotNil(t, created.InviteCode)
	assert.NotNil(t, created.InviteExpiresAt)
	assert.False(t, created.CanInviteMembers)
}

func TestAddMember_DuplicateMembership(t *testing.T) {
	svc, m := setupMembershipService(t, &stubAuthz{manageDorm: true})

	m.user.EXPECT().GetUserByID(uint(2)).Return(user.User{UID: 2}, nil)
	m.membership.EXPECT().GetByUserAndDorm(uint(2), uint(7)).Return(membership.Membership{MembershipID: 3}, nil)

	_, err := svc.AddMember(nil, membership.AddMemberDTO{DormID: 7, UID: 2}, 1)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestAddMember_ActiveDormAtCapacity(t *testing.T) {
	svc, m := setupMembershipService(t, &stubAuthz{manageDorm: true})

	m.user.EXPECT().GetUserByID(uint(2)).Return(user.User{UID: 2}, nil)
	m.membership.EXPECT().GetByUserAndDorm(uint(2), uint(7)).Return(membership.Membership{}, gorm.ErrRecordNotFound)
	m.membership.EXPECT().CountActiveByUser(uint(2)).Return(int64(0), nil)
	m.dorm.EXPECT().GetDormByIDForUpdate(uint(7)).Return(dorm.Dorm{
		DormID:           7,
		DormCode:         "D-7",
		Status:           string(dorm.DormStatusActive),
		Capacity:         4,
		CurrentOccupancy: 4,
	}, nil)

	_, err := svc.AddMember(nil, membership.AddMemberDTO{DormID: 7, UID: 2, Status: "active"}, 1)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestAddMember_PermissionDenied(t *testing.T) {
	svc, m := setupMembershipService(t, &stubAuthz{})

	// Actor is not a manager and holds no inviting membership either.
	m.membership.EXPECT().GetByUserAndDorm(uint(1), uint(7)).Return(membership.Membership{}, gorm.ErrRecordNotFound)

	_, err := svc.AddMember(nil, membership.AddMemberDTO{DormID: 7, UID: 2}, 1)
	assert.True(t, apperr.IsKind(err, apperr.KindPermission))
}

// --------------------- AcceptInvite ---------------------

func TestAcceptInvite_Success(t *testing.T) {
	svc, m := setupMembershipService(t, &stubAuthz{})

	code := "code-123"
	future := time.Now().Add(time.Hour)
	pending := membership.Membership{
		MembershipID:    5,
		UID:             2,
		DormID:          7,
		Status:          string(membership.MemberStatusPending),
		MemberRole:      string(membership.MemberRoleMember),
		InviteCode:      &code,
		InviteExpiresAt: &future,
	}

	m.membership.EXPECT().GetByInviteCode(code).Return(pending, nil)
	m.membership.EXPECT().GetMembershipByIDForUpdate(uint(5)).Return(pending, nil)
	m.membership.EXPECT().CountActiveByUser(uint(2)).Return(int64(0), nil)
	m.dorm.EXPECT().GetDormByIDForUpdate(uint(7)).Return(dorm.Dorm{
		DormID:           7,
		DormCode:         "D-7",
		Status:           string(dorm.DormStatusActive),
		Capacity:         4,
		CurrentOccupancy: 1,
	}, nil)
	m.membership.EXPECT().UpdateMembership(gomock.Any()).Return(nil)
	m.membership.EXPECT().CountActiveByDorm(uint(7)).Return(int64(2), nil)
	m.dorm.EXPECT().UpdateOccupancy(uint(7), 2).Return(nil)
	m.membership.EXPECT().GetActiveAdmin(uint(7)).Return(membership.Membership{}, gorm.ErrRecordNotFound)
	m.dorm.EXPECT().SetAdminID(uint(7), nil).Return(nil)

	updated, err := svc.AcceptInvite(nil, code, 2)
	assert.NoError(t, err)
	assert.Equal(t, string(membership.MemberStatusActive), updated.Status)
	assert.Nil(t, updated.InviteCode)
	assert.NotNil(t, updated.MoveInDate)
	assert.True(t, updated.CanInviteMembers)
}

func TestAcceptInvite_Expired(t *testing.T) {
	svc, m := setupMembershipService(t, &stubAuthz{})

	code := "code-123"
	past := time.Now().Add(-time.Hour)
	m.membership.EXPECT().GetByInviteCode(code).Return(membership.Membership{
		MembershipID:    5,
		UID:             2,
		DormID:          7,
		Status:          string(membership.MemberStatusPending),
		InviteCode:      &code,
		InviteExpiresAt: &past,
	}, nil)

	_, err := svc.AcceptInvite(nil, code, 2)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestAcceptInvite_WrongUser(t *testing.T) {
	svc, m := setupMembershipService(t, &stubAuthz{})

	code := "code-123"
	m.membership.EXPECT().GetByInviteCode(code).Return(membership.Membership{
		MembershipID: 5,
		UID:          2,
		DormID:       7,
		Status:       string(membership.MemberStatusPending),
	}, nil)

	_, err := svc.AcceptInvite(nil, code, 99)
	assert.True(t, apperr.IsKind(err, apperr.KindPermission))
}

// --------------------- UpdateMemberStatus ---------------------

func TestUpdateMemberStatus_InvalidTransition(t *testing.T) {
	svc, m := setupMembershipService(t, &stubAuthz{admin: true})

	m.membership.EXPECT().GetMembershipByIDForUpdate(uint(5)).Return(membership.Membership{
		MembershipID: 5,
		UID:          2,
		DormID:       7,
		Status:       string(membership.MemberStatusActive),
	}, nil)

	_, err := svc.UpdateMemberStatus(nil, 5, membership.UpdateStatusDTO{Status: "pending"}, 1)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestUpdateMemberStatus_DeactivateWithoutPolicyConflicts(t *testing.T) {
	svc, m := setupMembershipService(t, &stubAuthz{admin: true})

	m.membership.EXPECT().GetMembershipByIDForUpdate(uint(5)).Return(membership.Membership{
		MembershipID: 5,
		UID:          2,
		DormID:       7,
		Status:       string(membership.MemberStatusActive),
		MemberRole:   string(membership.MemberRoleMember),
	}, nil)
	m.expense.EXPECT().ListUnpaidSplits(uint(2), uint(7)).Return(unpaidSplits(30), nil)

	_, err := svc.UpdateMemberStatus(nil, 5, membership.UpdateStatusDTO{Status: "inactive"}, 1)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestUpdateMemberStatus_DeactivateWaivesSplits(t *testing.T) {
	svc, m := setupMembershipService(t, &stubAuthz{admin: true})

	m.membership.EXPECT().GetMembershipByIDForUpdate(uint(5)).Return(membership.Membership{
		MembershipID:     5,
		UID:              2,
		DormID:           7,
		Status:           string(membership.MemberStatusActive),
		MemberRole:       string(membership.MemberRoleMember),
		CanInviteMembers: true,
	}, nil)
	m.expense.EXPECT().ListUnpaidSplits(uint(2), uint(7)).Return(unpaidSplits(30), nil)
	m.expense.EXPECT().WaiveSplits(uint(2), uint(7)).Return(nil)
	m.membership.EXPECT().UpdateMembership(gomock.Any()).Return(nil)
	m.membership.EXPECT().CountActiveByDorm(uint(7)).Return(int64(0), nil)
	m.dorm.EXPECT().UpdateOccupancy(uint(7), 0).Return(nil)
	m.membership.EXPECT().GetActiveAdmin(uint(7)).Return(membership.Membership{}, gorm.ErrRecordNotFound)
	m.dorm.EXPECT().SetAdminID(uint(7), nil).Return(nil)

	policy := "waive"
	updated, err := svc.UpdateMemberStatus(nil, 5, membership.UpdateStatusDTO{
		Status:               "inactive",
		HandleUnpaidExpenses: &policy,
	}, 1)
	assert.NoError(t, err)
	assert.Equal(t, string(membership.MemberStatusInactive), updated.Status)
	assert.NotNil(t, updated.MoveOutDate)
	assert.False(t, updated.CanInviteMembers)
}

func TestUpdateMemberStatus_ReactivationRestoresCapabilities(t *testing.T) {
	svc, m := setupMembershipService(t, &stubAuthz{manageMem: true})

	m.membership.EXPECT().GetMembershipByIDForUpdate(uint(5)).Return(membership.Membership{
		MembershipID: 5,
		UID:          2,
		DormID:       7,
		Status:       string(membership.MemberStatusInactive),
		MemberRole:   string(membership.MemberRoleAdmin),
	}, nil)
	m.membership.EXPECT().CountActiveByUser(uint(2)).Return(int64(0), nil)
	m.dorm.EXPECT().GetDormByIDForUpdate(uint(7)).Return(dorm.Dorm{
		DormID:   7,
		DormCode: "D-7",
		Status:   string(dorm.DormStatusActive),
		Capacity: 4,
	}, nil)
	m.membership.EXPECT().UpdateMembership(gomock.Any()).Return(nil)
	m.membership.EXPECT().CountActiveByDorm(uint(7)).Return(int64(1), nil)
	m.dorm.EXPECT().UpdateOccupancy(uint(7), 1).Return(nil)
	m.membership.EXPECT().GetActiveAdmin(uint(7)).Return(membership.Membership{UID: 2}, nil)
	m.dorm.EXPECT().SetAdminID(uint(7), ptrUint(2)).Return(nil)

	updated, err := svc.UpdateMemberStatus(nil, 5, membership.UpdateStatusDTO{Status: "active"}, 2)
	assert.NoError(t, err)
	assert.True(t, updated.CanApproveExpenses)
	assert.True(t, updated.CanManageFacilities)
	assert.Nil(t, updated.MoveOutDate)
}

// --------------------- UpdateMemberRole ---------------------

func TestUpdateMemberRole_LastAdminGuard(t *testing.T) {
	svc, m := setupMembershipService(t, &stubAuthz{manageDorm: true})

	m.membership.EXPECT().GetMembershipByIDForUpdate(uint(5)).Return(membership.Membership{
		MembershipID: 5,
		UID:          2,
		DormID:       7,
		Status:       string(membership.MemberStatusActive),
		MemberRole:   string(membership.MemberRoleAdmin),
	}, nil)
	m.membership.EXPECT().CountActiveAdminsByDorm(uint(7)).Return(int64(1), nil)

	_, err := svc.UpdateMemberRole(nil, 5, membership.UpdateRoleDTO{MemberRole: "member"}, 1)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestUpdateMemberRole_PromotionSetsCapabilities(t *testing.T) {
	svc, m := setupMembershipService(t, &stubAuthz{manageDorm: true})

	m.membership.EXPECT().GetMembershipByIDForUpdate(uint(5)).Return(membership.Membership{
		MembershipID: 5,
		UID:          2,
		DormID:       7,
		Status:       string(membership.MemberStatusActive),
		MemberRole:   string(membership.MemberRoleMember),
	}, nil)
	m.membership.EXPECT().UpdateMembership(gomock.Any()).Return(nil)
	m.membership.EXPECT().GetActiveAdmin(uint(7)).Return(membership.Membership{UID: 2}, nil)
	m.dorm.EXPECT().SetAdminID(uint(7), ptrUint(2)).Return(nil)

	updated, err := svc.UpdateMemberRole(nil, 5, membership.UpdateRoleDTO{MemberRole: "admin"}, 1)
	assert.NoError(t, err)
	assert.True(t, updated.CanApproveExpenses)
	assert.True(t, updated.CanInviteMembers)
	assert.True(t, updated.CanManageFacilities)
}

// --------------------- RemoveMember ---------------------

func TestRemoveMember_ElectsReplacementAdmin(t *testing.T) {
	svc, m := setupMembershipService(t, &stubAuthz{manageDorm: true})

	m.membership.EXPECT().GetMembershipByIDForUpdate(uint(5)).Return(membership.Membership{
		MembershipID: 5,
		UID:          2,
		DormID:       7,
		Status:       string(membership.MemberStatusActive),
		MemberRole:   string(membership.MemberRoleAdmin),
	}, nil)
	m.dorm.EXPECT().GetDormByIDForUpdate(uint(7)).Return(dorm.Dorm{
		DormID:  7,
		AdminID: ptrUint(2),
	}, nil)
	m.expense.EXPECT().ListUnpaidSplits(uint(2), uint(7)).Return(nil, nil)
	m.membership.EXPECT().FindAlternativeAdmin(uint(7), uint(5)).Return(membership.Membership{
		MembershipID: 6,
		UID:          3,
		DormID:       7,
		Status:       string(membership.MemberStatusActive),
		MemberRole:   string(membership.MemberRoleMember),
	}, nil)
	// replacement promotion and the logical removal itself
	m.membership.EXPECT().UpdateMembership(gomock.Any()).Return(nil).Times(2)
	m.dorm.EXPECT().SetAdminID(uint(7), gomock.Any()).Return(nil).Times(2)
	m.membership.EXPECT().CountActiveByDorm(uint(7)).Return(int64(1), nil)
	m.dorm.EXPECT().UpdateOccupancy(uint(7), 1).Return(nil)
	m.membership.EXPECT().GetActiveAdmin(uint(7)).Return(membership.Membership{UID: 3}, nil)

	err := svc.RemoveMember(nil, 5, membership.RemoveMemberDTO{}, 1)
	assert.NoError(t, err)
}

func TestRemoveMember_NoReplacementAvailable(t *testing.T) {
	svc, m := setupMembershipService(t, &stubAuthz{manageDorm: true})

	m.membership.EXPECT().GetMembershipByIDForUpdate(uint(5)).Return(membership.Membership{
		MembershipID: 5,
		UID:          2,
		DormID:       7,
		Status:       string(membership.MemberStatusActive),
		MemberRole:   string(membership.MemberRoleAdmin),
	}, nil)
	m.dorm.EXPECT().GetDormByIDForUpdate(uint(7)).Return(dorm.Dorm{
		DormID:  7,
		AdminID: ptrUint(2),
	}, nil)
	m.expense.EXPECT().ListUnpaidSplits(uint(2), uint(7)).Return(nil, nil)
	m.membership.EXPECT().FindAlternativeAdmin(uint(7), uint(5)).Return(membership.Membership{}, gorm.ErrRecordNotFound)

	err := svc.RemoveMember(nil, 5, membership.RemoveMemberDTO{}, 1)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestRemoveMember_ReplacementCannotBeRemovedMember(t *testing.T) {
	svc, m := setupMembershipService(t, &stubAuthz{manageDorm: true})

	m.membership.EXPECT().GetMembershipByIDForUpdate(uint(5)).Return(membership.Membership{
		MembershipID: 5,
		UID:          2,
		DormID:       7,
		Status:       string(membership.MemberStatusActive),
		MemberRole:   string(membership.MemberRoleAdmin),
	}, nil)
	m.dorm.EXPECT().GetDormByIDForUpdate(uint(7)).Return(dorm.Dorm{
		DormID:  7,
		AdminID: ptrUint(2),
	}, nil)
	m.expense.EXPECT().ListUnpaidSplits(uint(2), uint(7)).Return(nil, nil)

	err := svc.RemoveMember(nil, 5, membership.RemoveMemberDTO{NewAdminID: ptrUint(2)}, 1)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestRemoveMember_KeepPolicyLeavesSplitsOutstanding(t *testing.T) {
	svc, m := setupMembershipService(t, &stubAuthz{manageDorm: true})

	m.membership.EXPECT().GetMembershipByIDForUpdate(uint(5)).Return(membership.Membership{
		MembershipID: 5,
		UID:          2,
		DormID:       7,
		Status:       string(membership.MemberStatusActive),
		MemberRole:   string(membership.MemberRoleMember),
	}, nil)
	m.dorm.EXPECT().GetDormByIDForUpdate(uint(7)).Return(dorm.Dorm{DormID: 7}, nil)
	// keep: splits stay unpaid, WaiveSplits must not run.
	m.expense.EXPECT().ListUnpaidSplits(uint(2), uint(7)).Return(unpaidSplits(30), nil)
	m.membership.EXPECT().UpdateMembership(gomock.Any()).Return(nil)
	m.membership.EXPECT().CountActiveByDorm(uint(7)).Return(int64(0), nil)
	m.dorm.EXPECT().UpdateOccupancy(uint(7), 0).Return(nil)
	m.membership.EXPECT().GetActiveAdmin(uint(7)).Return(membership.Membership{}, gorm.ErrRecordNotFound)
	m.dorm.EXPECT().SetAdminID(uint(7), nil).Return(nil)

	policy := "keep"
	err := svc.RemoveMember(nil, 5, membership.RemoveMemberDTO{HandleUnpaidExpenses: &policy}, 1)
	assert.NoError(t, err)
}

func TestRemoveMember_PhysicalDelete(t *testing.T) {
	svc, m := setupMembershipService(t, &stubAuthz{manageDorm: true})

	m.membership.EXPECT().GetMembershipByIDForUpdate(uint(5)).Return(membership.Membership{
		MembershipID: 5,
		UID:          2,
		DormID:       7,
		Status:       string(membership.MemberStatusInactive),
		MemberRole:   string(membership.MemberRoleMember),
	}, nil)
	m.dorm.EXPECT().GetDormByIDForUpdate(uint(7)).Return(dorm.Dorm{DormID: 7}, nil)
	m.membership.EXPECT().DeleteMembership(uint(5)).Return(nil)
	m.membership.EXPECT().CountActiveByDorm(uint(7)).Return(int64(0), nil)
	m.dorm.EXPECT().UpdateOccupancy(uint(7), 0).Return(nil)
	m.membership.EXPECT().GetActiveAdmin(uint(7)).Return(membership.Membership{}, gorm.ErrRecordNotFound)
	m.dorm.EXPECT().SetAdminID(uint(7), nil).Return(nil)

	err := svc.RemoveMember(nil, 5, membership.RemoveMemberDTO{Physical: true}, 1)
	assert.NoError(t, err)
}
