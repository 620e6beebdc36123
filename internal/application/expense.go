package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/dormhub/dormhub-go/internal/domain/expense"
	"github.com/dormhub/dormhub-go/internal/domain/membership"
	"github.com/dormhub/dormhub-go/internal/domain/notification"
	"github.com/dormhub/dormhub-go/internal/repository"
	"github.com/dormhub/dormhub-go/pkg/apperr"
	"github.com/dormhub/dormhub-go/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReceiptStore persists receipt files for expenses. Backed by MinIO in
// production.
type ReceiptStore interface {
	UploadReceipt(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	ReceiptURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// ExpenseService owns the expense lifecycle. Review decisions commit on
// their own; budget reconciliation runs afterwards and never blocks a
// decision.
type ExpenseService struct {
	Repos    *repository.Repos
	Authz    Authorizer
	Budget   *BudgetService
	Notify   *NotificationService
	Receipts ReceiptStore
}

func NewExpenseService(repos *repository.Repos, authz Authorizer, budget *BudgetService, notify *NotificationService, receipts ReceiptStore) *ExpenseService {
	return &ExpenseService{
		Repos:    repos,
		Authz:    authz,
		Budget:   budget,
		Notify:   notify,
		Receipts: receipts,
	}
}

func (s *ExpenseService) GetExpense(id uint) (expense.Expense, error) {
	e, err := s.Repos.Expense.GetExpenseByID(id)
	return e, apperr.FromDB(err, "expense")
}

func (s *ExpenseService) ListByDorm(dormID uint) ([]expense.Expense, error) {
	return s.Repos.Expense.ListByDorm(dormID)
}

func (s *ExpenseService) ListCategories() ([]expense.ExpenseCategory, error) {
	return s.Repos.Expense.ListCategories()
}

// resolveDorm picks the dorm an expense belongs to: an explicit dorm the
// applicant actively belongs to, otherwise the applicant's active
// membership, otherwise the first split participant's active membership.
func (s *ExpenseService) resolveDorm(applicantID uint, dormID *uint, splits []expense.SplitInputDTO) (uint, error) {
	if dormID != nil {
		m, err := s.Repos.Membership.GetByUserAndDorm(applicantID, *dormID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, apperr.Validationf("applicant %d is not a member of dorm %d", applicantID, *dormID)
			}
			return 0, err
		}
		if m.Status != string(membership.MemberStatusActive) {
			return 0, apperr.Validationf("applicant %d is not active in dorm %d", applicantID, *dormID)
		}
		return *dormID, nil
	}

	if id, err := s.activeDormOf(applicantID); err != nil || id != 0 {
		return id, err
	}
	for _, sp := range splits {
		if sp.UID == applicantID {
			continue
		}
		id, err := s.activeDormOf(sp.UID)
		if err != nil {
			return 0, err
		}
		if id != 0 {
			return id, nil
		}
	}
	return 0, apperr.Validationf("neither applicant %d nor any split participant has an active membership", applicantID)
}

// activeDormOf returns the dorm of the user's active membership, 0 when
// they have none.
func (s *ExpenseService) activeDormOf(uid uint) (uint, error) {
	memberships, err := s.Repos.Membership.ListByUser(uid)
	if err != nil {
		return 0, err
	}
	for _, m := range memberships {
		if m.Status == string(membership.MemberStatusActive) {
			return m.DormID, nil
		}
	}
	return 0, nil
}

func (s *ExpenseService) CreateExpense(c *gin.Context, input expense.ExpenseCreateDTO, applicantID uint) (*expense.Expense, error) {
	dormID, err := s.resolveDorm(applicantID, input.DormID, input.Splits)
	if err != nil {
		return nil, err
	}
	if input.CategoryID != nil {
		if _, err := s.Repos.Expense.GetCategoryByID(*input.CategoryID); err != nil {
			return nil, apperr.FromDB(err, "expense category")
		}
	}

	var splitTotal float64
	for _, sp := range input.Splits {
		splitTotal += sp.Amount
	}
	if len(input.Splits) > 0 && splitTotal > input.Amount {
		return nil, apperr.Validationf("split total %.2f exceeds expense amount %.2f", splitTotal, input.Amount)
	}

	e := expense.Expense{
		DormID:      dormID,
		ApplicantID: applicantID,
		CategoryID:  input.CategoryID,
		Title:       input.Title,
		Description: input.Description,
		Amount:      input.Amount,
		Status:      string(expense.ExpenseStatusPending),
	}
	err = s.Repos.ExecTx(func(repos *repository.Repos) error {
		if err := repos.Expense.CreateExpense(&e); err != nil {
			return apperr.FromDB(err, "expense")
		}
		for _, sp := range input.Splits {
			m, err := repos.Membership.GetByUserAndDorm(sp.UID, dormID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.Validationf("split user %d is not a member of dorm %d", sp.UID, dormID)
				}
				return err
			}
			if m.Status != string(membership.MemberStatusActive) {
				return apperr.Validationf("split user %d is not active in dorm %d", sp.UID, dormID)
			}
			split := expense.ExpenseSplit{
				ExpenseID:     e.ExpenseID,
				UID:           sp.UID,
				DormID:        dormID,
				Amount:        sp.Amount,
				PaymentStatus: string(expense.SplitUnpaid),
			}
			if err := repos.Expense.CreateSplit(&split); err != nil {
				return apperr.FromDB(err, "expense split")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "expense",
		fmt.Sprintf("expense_id=%d", e.ExpenseID), nil, e, "", s.Repos.Audit)
	for _, sp := range input.Splits {
		if sp.UID == applicantID {
			continue
		}
		s.Notify.Dispatch(&notification.Notification{
			Title:    "New shared expense",
			Content:  fmt.Sprintf("%s: your share is %.2f", e.Title, sp.Amount),
			Type:     string(notification.TypeExpense),
			UID:      sp.UID,
			DormID:   &dormID,
			SenderID: &applicantID,
		})
	}
	return &e, nil
}

// ReviewExpense applies an approve/reject decision. The status change
// commits first; budget reconciliation runs after the commit and a failure
// there is logged, never surfaced. Re-running reconciliation later brings
// the ledger back in line.
func (s *ExpenseService) ReviewExpense(c *gin.Context, expenseID uint, input expense.ReviewDTO, actorID uint) (*expense.Expense, error) {
	var old, updated expense.Expense
	err := s.Repos.ExecTx(func(repos *repository.Repos) error {
		e, err := repos.Expense.GetExpenseByIDForUpdate(expenseID)
		if err != nil {
			return apperr.FromDB(err, "expense")
		}
		old = e

		target := expense.ExpenseStatus(input.Status)
		if !expense.ReviewTarget(expense.ExpenseStatus(e.Status), target) {
			return apperr.Conflictf("expense %d cannot go from %s to %s", expenseID, e.Status, input.Status)
		}
		canApprove, err := s.Authz.CanApproveExpenses(actorID, e.DormID)
		if err != nil {
			return err
		}
		if !canApprove {
			return apperr.Permissionf("actor %d may not review expenses of dorm %d", actorID, e.DormID)
		}
		if actorID == e.ApplicantID {
			isAdmin, err := s.Authz.IsAdmin(actorID)
			if err != nil {
				return err
			}
			if !isAdmin {
				return apperr.Permissionf("applicants may not review their own expenses")
			}
		}

		now := time.Now()
		e.Status = string(target)
		e.ReviewerID = &actorID
		e.ReviewComment = input.Comment
		e.ProcessedAt = &now
		if err := repos.Expense.UpdateExpense(&e); err != nil {
			return apperr.FromDB(err, "expense")
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.reconcileBudget(old, updated)

	utils.LogAuditWithConsole(c, "update", "expense",
		fmt.Sprintf("expense_id=%d", expenseID), old, updated, "review", s.Repos.Audit)
	s.Notify.Dispatch(&notification.Notification{
		Title:    fmt.Sprintf("Expense %s", updated.Status),
		Content:  fmt.Sprintf("%s (%.2f) was %s", updated.Title, updated.Amount, updated.Status),
		Type:     string(notification.TypeExpense),
		UID:      updated.ApplicantID,
		DormID:   &updated.DormID,
		SenderID: &actorID,
	})
	return &updated, nil
}

func (s *ExpenseService) reconcileBudget(old, updated expense.Expense) {
	switch {
	case updated.Status == string(expense.ExpenseStatusApproved):
		if err := s.Budget.ApplyExpense(updated.ExpenseID, updated.Amount, updated.CategoryID); err != nil {
			log.Printf("[Expense] budget apply for expense %d failed: %v", updated.ExpenseID, err)
		}
	case old.Status == string(expense.ExpenseStatusApproved) && updated.Status == string(expense.ExpenseStatusRejected):
		if err := s.Budget.ReverseExpense(updated.ExpenseID); err != nil {
			log.Printf("[Expense] budget reversal for expense %d failed: %v", updated.ExpenseID, err)
		}
	}
}

// DeleteExpense removes an expense and its splits. Usage records pin an
// expense to the ledger, so an approved expense must be rejected (which
// reverses its usage) before it can be deleted.
func (s *ExpenseService) DeleteExpense(c *gin.Context, expenseID, actorID uint) error {
	var old expense.Expense
	err := s.Repos.ExecTx(func(repos *repository.Repos) error {
		e, err := repos.Expense.GetExpenseByIDForUpdate(expenseID)
		if err != nil {
			return apperr.FromDB(err, "expense")
		}
		old = e

		if actorID != e.ApplicantID {
			isAdmin, err := s.Authz.IsAdmin(actorID)
			if err != nil {
				return err
			}
			if !isAdmin {
				return apperr.Permissionf("only the applicant may delete this expense")
			}
		}

		count, err := repos.Expense.CountUsageRecordsByExpense(expenseID)
		if err != nil {
			return err
		}
		if count > 0 {
			return apperr.Conflictf("expense %d is referenced by budget usage records; reject it first", expenseID)
		}

		if err := repos.Expense.DeleteExpense(expenseID); err != nil {
			return apperr.FromDB(err, "expense")
		}
		return nil
	})
	if err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "expense",
		fmt.Sprintf("expense_id=%d", expenseID), old, nil, "", s.Repos.Audit)
	return nil
}

// BatchReview applies one decision to many expenses, one transaction each.
// A failing id is reported in the result and does not sink the batch.
func (s *ExpenseService) BatchReview(c *gin.Context, input expense.BatchReviewDTO, status string, actorID uint) expense.BatchResult {
	result := expense.BatchResult{
		Succeeded: []uint{},
		Failed:    map[uint]string{},
	}
	for _, id := range input.ExpenseIDs {
		_, err := s.ReviewExpense(c, id, expense.ReviewDTO{Status: status, Comment: input.Comment}, actorID)
		if err != nil {
			result.Failed[id] = err.Error()
			continue
		}
		result.Succeeded = append(result.Succeeded, id)
	}
	if len(result.Failed) == 0 {
		result.Failed = nil
	}
	return result
}

// AttachReceipt stores a receipt file and records its object key on the
// expense. Only the applicant (or a platform admin) may attach one.
func (s *ExpenseService) AttachReceipt(ctx context.Context, expenseID, actorID uint, filename, contentType string, reader io.Reader, size int64) (*expense.Expense, error) {
	if s.Receipts == nil {
		return nil, apperr.Validationf("receipt storage is not configured")
	}
	e, err := s.Repos.Expense.GetExpenseByID(expenseID)
	if err != nil {
		return nil, apperr.FromDB(err, "expense")
	}
	if actorID != e.ApplicantID {
		isAdmin, err := s.Authz.IsAdmin(actorID)
		if err != nil {
			return nil, err
		}
		if !isAdmin {
			return nil, apperr.Permissionf("only the applicant may attach a receipt")
		}
	}

	key := fmt.Sprintf("receipts/%d/%d-%s", e.DormID, expenseID, filename)
	if err := s.Receipts.UploadReceipt(ctx, key, reader, size, contentType); err != nil {
		return nil, err
	}

	e.ReceiptKey = key
	if err := s.Repos.Expense.UpdateExpense(&e); err != nil {
		return nil, apperr.FromDB(err, "expense")
	}
	return &e, nil
}

// ReceiptURL returns a short-lived download link for an expense's receipt.
func (s *ExpenseService) ReceiptURL(ctx context.Context, expenseID uint) (string, error) {
	if s.Receipts == nil {
		return "", apperr.Validationf("receipt storage is not configured")
	}
	e, err := s.Repos.Expense.GetExpenseByID(expenseID)
	if err != nil {
		return "", apperr.FromDB(err, "expense")
	}
	if e.ReceiptKey == "" {
		return "", apperr.NotFoundf("expense %d has no receipt", expenseID)
	}
	return s.Receipts.ReceiptURL(ctx, e.ReceiptKey, 15*time.Minute)
}
