package application

import (
	"errors"
	"fmt"

	"github.com/dormhub/dormhub-go/internal/domain/dorm"
	"github.com/dormhub/dormhub-go/internal/domain/notification"
	"github.com/dormhub/dormhub-go/internal/repository"
	"github.com/dormhub/dormhub-go/pkg/apperr"
	"github.com/dormhub/dormhub-go/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DormService owns the dorm lifecycle: create/update/delete plus the
// three-step dismissal workflow. Physical removal always clears the dorm's
// expenses first because expenses reference dorms with a restrict
// constraint.
type DormService struct {
	Repos  *repository.Repos
	Authz  Authorizer
	Budget *BudgetService
	Notify *NotificationService
}

func NewDormService(repos *repository.Repos, authz Authorizer, budget *BudgetService, notify *NotificationService) *DormService {
	return &DormService{
		Repos:  repos,
		Authz:  authz,
		Budget: budget,
		Notify: notify,
	}
}

func (s *DormService) GetDorm(id uint) (dorm.Dorm, error) {
	d, err := s.Repos.Dorm.GetDormByID(id)
	return d, apperr.FromDB(err, "dorm")
}

func (s *DormService) ListDorms() ([]dorm.Dorm, error) {
	return s.Repos.Dorm.ListDorms()
}

func (s *DormService) CreateDorm(c *gin.Context, input dorm.DormCreateDTO, actorID uint) (*dorm.Dorm, error) {
	isAdmin, err := s.Authz.IsAdmin(actorID)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, apperr.Permissionf("only administrators may create dorms")
	}
	if input.Capacity <= 0 {
		return nil, apperr.Validationf("capacity must be positive")
	}

	d := dorm.Dorm{
		DormCode: input.DormCode,
		DormName: input.DormName,
		Address:  input.Address,
		Capacity: input.Capacity,
		Status:   string(dorm.DormStatusActive),
	}
	if err := s.Repos.Dorm.CreateDorm(&d); err != nil {
		return nil, apperr.FromDB(err, "dorm")
	}

	utils.LogAuditWithConsole(c, "create", "dorm",
		fmt.Sprintf("dorm_id=%d", d.DormID), nil, d, "", s.Repos.Audit)
	return &d, nil
}

func (s *DormService) UpdateDorm(c *gin.Context, id uint, input dorm.DormUpdateDTO, actorID uint) (*dorm.Dorm, error) {
	canManage, err := s.Authz.CanManageDorm(actorID, id)
	if err != nil {
		return nil, err
	}
	if !canManage {
		return nil, apperr.Permissionf("actor %d may not update dorm %d", actorID, id)
	}

	var old, updated dorm.Dorm
	err = s.Repos.ExecTx(func(repos *repository.Repos) error {
		d, err := repos.Dorm.GetDormByIDForUpdate(id)
		if err != nil {
			return apperr.FromDB(err, "dorm")
		}
		old = d

		if input.Capacity != nil {
			if *input.Capacity <= 0 {
				return apperr.Validationf("capacity must be positive")
			}
			if *input.Capacity < d.CurrentOccupancy {
				return apperr.Validationf("capacity %d is below current occupancy %d", *input.Capacity, d.CurrentOccupancy)
			}
			d.Capacity = *input.Capacity
		}
		if input.DormCode != nil && *input.DormCode != d.DormCode {
			if existing, err := repos.Dorm.GetDormByCode(*input.DormCode); err == nil && existing.DormID != d.DormID {
				return apperr.Conflictf("dorm code %s is already in use", *input.DormCode)
			} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			d.DormCode = *input.DormCode
		}
		if input.DormName != nil {
			d.DormName = *input.DormName
		}
		if input.Address != nil {
			d.Address = *input.Address
		}
		if input.Status != nil {
			// Only active<->maintenance through update; dismissal has its
			// own workflow.
			if d.Status != string(dorm.DormStatusActive) && d.Status != string(dorm.DormStatusMaintenance) {
				return apperr.Conflictf("dorm %s is %s and cannot change status here", d.DormCode, d.Status)
			}
			d.Status = *input.Status
		}

		if err := repos.Dorm.UpdateDorm(&d); err != nil {
			return apperr.FromDB(err, "dorm")
		}
		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "update", "dorm",
		fmt.Sprintf("dorm_id=%d", id), old, updated, "", s.Repos.Audit)
	return &updated, nil
}

// DeleteDorm removes a dorm outside the dismissal workflow. Same ordering
// as ConfirmDismissal: expenses first, then the dorm row; memberships and
// splits cascade.
func (s *DormService) DeleteDorm(c *gin.Context, id uint, actorID uint) error {
	canManage, err := s.Authz.CanManageDorm(actorID, id)
	if err != nil {
		return err
	}
	if !canManage {
		return apperr.Permissionf("actor %d may not delete dorm %d", actorID, id)
	}

	var old dorm.Dorm
	err = s.Repos.ExecTx(func(repos *repository.Repos) error {
		d, err := repos.Dorm.GetDormByIDForUpdate(id)
		if err != nil {
			return apperr.FromDB(err, "dorm")
		}
		old = d

		// Reverse budget charges before the bulk delete or the ledger keeps
		// counting expenses that no longer exist.
		if err := s.Budget.ReleaseDormExpenses(repos, id); err != nil {
			return err
		}
		if err := repos.Expense.DeleteExpensesByDorm(id); err != nil {
			return apperr.FromDB(err, "expenses")
		}
		if err := repos.Dorm.DeleteDorm(id); err != nil {
			return apperr.FromDB(err, "dorm")
		}
		return nil
	})
	if err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "dorm",
		fmt.Sprintf("dorm_id=%d", id), old, nil, "", s.Repos.Audit)
	return nil
}

// StartDismissal moves a dorm into the dismissing state and opens a
// pending DismissalProcess, both in one transaction. At most one pending
// process may exist per dorm.
func (s *DormService) StartDismissal(c *gin.Context, dormID, actorID uint) (*dorm.DismissalProcess, error) {
	canManage, err := s.Authz.CanManageDorm(actorID, dormID)
	if err != nil {
		return nil, err
	}
	if !canManage {
		return nil, apperr.Permissionf("actor %d may not dismiss dorm %d", actorID, dormID)
	}

	var process dorm.DismissalProcess
	var old dorm.Dorm
	err = s.Repos.ExecTx(func(repos *repository.Repos) error {
		d, err := repos.Dorm.GetDormByIDForUpdate(dormID)
		if err != nil {
			return apperr.FromDB(err, "dorm")
		}
		old = d

		if d.Status != string(dorm.DormStatusActive) && d.Status != string(dorm.DormStatusMaintenance) {
			return apperr.Conflictf("dorm %s cannot be dismissed from status %s", d.DormCode, d.Status)
		}
		if _, err := repos.Dorm.GetPendingDismissal(dormID); err == nil {
			return apperr.Conflictf("dorm %s already has a pending dismissal", d.DormCode)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		d.Status = string(dorm.DormStatusDismissing)
		if err := repos.Dorm.UpdateDorm(&d); err != nil {
			return err
		}

		process = dorm.DismissalProcess{
			DormID:      dormID,
			Status:      string(dorm.DismissalStatusPending),
			InitiatorID: actorID,
		}
		return repos.Dorm.CreateDismissal(&process)
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "update", "dorm",
		fmt.Sprintf("dorm_id=%d", dormID), old, nil, "dismissal started", s.Repos.Audit)
	s.notifyMembers(dormID, actorID, "Dorm dismissal started",
		fmt.Sprintf("Dorm %s is being dissolved", old.DormCode))

	return &process, nil
}

// ConfirmDismissal completes a pending dismissal: expenses are cleared,
// the dorm row is removed (memberships and splits cascade) and the process
// is marked completed. Irreversible.
func (s *DormService) ConfirmDismissal(c *gin.Context, dormID, actorID uint) error {
	canManage, err := s.Authz.CanManageDorm(actorID, dormID)
	if err != nil {
		return err
	}
	if !canManage {
		return apperr.Permissionf("actor %d may not confirm dismissal of dorm %d", actorID, dormID)
	}

	var old dorm.Dorm
	memberIDs := s.memberUserIDs(dormID)
	err = s.Repos.ExecTx(func(repos *repository.Repos) error {
		d, err := repos.Dorm.GetDormByIDForUpdate(dormID)
		if err != nil {
			return apperr.FromDB(err, "dorm")
		}
		old = d

		if d.Status != string(dorm.DormStatusDismissing) {
			return apperr.Conflictf("dorm %s is not dismissing", d.DormCode)
		}
		process, err := repos.Dorm.GetPendingDismissal(dormID)
		if err != nil {
			return apperr.FromDB(err, "dismissal process")
		}

		// Reverse budget charges first, then expenses. Expenses reference
		// the dorm with a restrict constraint; they go before the dorm row
		// or the dorm delete fails.
		if err := s.Budget.ReleaseDormExpenses(repos, dormID); err != nil {
			return err
		}
		if err := repos.Expense.DeleteExpensesByDorm(dormID); err != nil {
			return apperr.FromDB(err, "expenses")
		}
		if err := repos.Dorm.DeleteDorm(dormID); err != nil {
			return apperr.FromDB(err, "dorm")
		}

		process.Status = string(dorm.DismissalStatusCompleted)
		return repos.Dorm.UpdateDismissal(&process)
	})
	if err != nil {
		return err
	}

	// Audit keeps the pre-delete snapshot; the row itself is gone.
	utils.LogAuditWithConsole(c, "delete", "dorm",
		fmt.Sprintf("dorm_id=%d", dormID), old, nil, "dismissal completed", s.Repos.Audit)
	for _, uid := range memberIDs {
		s.Notify.Dispatch(&notification.Notification{
			Title:    "Dorm dissolved",
			Content:  fmt.Sprintf("Dorm %s has been dissolved", old.DormCode),
			Type:     string(notification.TypeDismissal),
			UID:      uid,
			SenderID: &actorID,
		})
	}
	return nil
}

// CancelDismissal reverts a dismissing dorm to active and closes the
// pending process as cancelled.
func (s *DormService) CancelDismissal(c *gin.Context, dormID, actorID uint) error {
	canManage, err := s.Authz.CanManageDorm(actorID, dormID)
	if err != nil {
		return err
	}
	if !canManage {
		return apperr.Permissionf("actor %d may not cancel dismissal of dorm %d", actorID, dormID)
	}

	var old dorm.Dorm
	err = s.Repos.ExecTx(func(repos *repository.Repos) error {
		d, err := repos.Dorm.GetDormByIDForUpdate(dormID)
		if err != nil {
			return apperr.FromDB(err, "dorm")
		}
		old = d

		if d.Status != string(dorm.DormStatusDismissing) {
			return apperr.Conflictf("dorm %s is not dismissing", d.DormCode)
		}
		process, err := repos.Dorm.GetPendingDismissal(dormID)
		if err != nil {
			return apperr.FromDB(err, "dismissal process")
		}

		d.Status = string(dorm.DormStatusActive)
		if err := repos.Dorm.UpdateDorm(&d); err != nil {
			return err
		}

		process.Status = string(dorm.DismissalStatusCancelled)
		return repos.Dorm.UpdateDismissal(&process)
	})
	if err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "update", "dorm",
		fmt.Sprintf("dorm_id=%d", dormID), old, nil, "dismissal cancelled", s.Repos.Audit)
	s.notifyMembers(dormID, actorID, "Dorm dismissal cancelled",
		fmt.Sprintf("Dorm %s will not be dissolved", old.DormCode))
	return nil
}

func (s *DormService) memberUserIDs(dormID uint) []uint {
	memberships, err := s.Repos.Membership.ListByDorm(dormID)
	if err != nil {
		return nil
	}
	ids := make([]uint, 0, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.UID)
	}
	return ids
}

func (s *DormService) notifyMembers(dormID, actorID uint, title, content string) {
	for _, uid := range s.memberUserIDs(dormID) {
		s.Notify.Dispatch(&notification.Notification{
			Title:    title,
			Content:  content,
			Type:     string(notification.TypeDismissal),
			UID:      uid,
			DormID:   &dormID,
			SenderID: &actorID,
		})
	}
}
