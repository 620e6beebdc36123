package application

import (
	"errors"

	"github.com/dormhub/dormhub-go/internal/domain/membership"
	"github.com/dormhub/dormhub-go/internal/domain/user"
	"github.com/dormhub/dormhub-go/internal/repository"
	"gorm.io/gorm"
)

// Authorizer is the single capability check every mutating operation runs
// before touching state. It replaces per-query role joins scattered through
// the services.
type Authorizer interface {
	// IsAdmin reports whether the actor is a system or general administrator.
	IsAdmin(actorID uint) (bool, error)
	// CanManageDorm reports whether the actor may mutate the dorm: an
	// administrator or the dorm's registered admin.
	CanManageDorm(actorID, dormID uint) (bool, error)
	// CanManageMembership reports whether the actor may mutate the
	// membership: an administrator, the dorm's admin, or the member themself.
	CanManageMembership(actorID, membershipID uint) (bool, error)
	// CanApproveExpenses reports whether the actor may review expenses of
	// the dorm.
	CanApproveExpenses(actorID, dormID uint) (bool, error)
}

type RepoAuthorizer struct {
	Repos *repository.Repos
}

func NewAuthorizer(repos *repository.Repos) *RepoAuthorizer {
	return &RepoAuthorizer{
		Repos: repos,
	}
}

func (a *RepoAuthorizer) IsAdmin(actorID uint) (bool, error) {
	u, err := a.Repos.User.GetUserByID(actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return u.Role == string(user.UserRoleSysAdmin) || u.Role == string(user.UserRoleAdmin), nil
}

func (a *RepoAuthorizer) CanManageDorm(actorID, dormID uint) (bool, error) {
	isAdmin, err := a.IsAdmin(actorID)
	if err != nil {
		return false, err
	}
	if isAdmin {
		return true, nil
	}

	d, err := a.Repos.Dorm.GetDormByID(dormID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return d.AdminID != nil && *d.AdminID == actorID, nil
}

func (a *RepoAuthorizer) CanManageMembership(actorID, membershipID uint) (bool, error) {
	m, err := a.Repos.Membership.GetMembershipByID(membershipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if m.UID == actorID {
		return true, nil
	}
	return a.CanManageDorm(actorID, m.DormID)
}

func (a *RepoAuthorizer) CanApproveExpenses(actorID, dormID uint) (bool, error) {
	isAdmin, err := a.IsAdmin(actorID)
	if err != nil {
		return false, err
	}
	if isAdmin {
		return true, nil
	}

	m, err := a.Repos.Membership.GetByUserAndDorm(actorID, dormID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return m.Status == string(membership.MemberStatusActive) && m.CanApproveExpenses, nil
}
