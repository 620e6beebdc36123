package application

import (
	"errors"
	"log"
	"time"

	"github.com/dormhub/dormhub-go/internal/domain/budget"
	"github.com/dormhub/dormhub-go/internal/repository"
	"gorm.io/gorm"
)

// BudgetService owns the invariant that a budget's used amount equals the
// sum of usage records tied to approved expenses. Budget tracking is
// best-effort: an expense approves fine even when no budget matches.
type BudgetService struct {
	Repos *repository.Repos
}

func NewBudgetService(repos *repository.Repos) *BudgetService {
	return &BudgetService{
		Repos: repos,
	}
}

// resolveBudget walks the fallback chain: exact category match, then the
// "General" budget, then any currently active budget.
func (s *BudgetService) resolveBudget(repos *repository.Repos, categoryID *uint, at time.Time) (budget.Budget, bool, error) {
	if categoryID != nil {
		b, err := repos.Budget.FindActiveByCategory(*categoryID, at)
		if err == nil {
			return b, true, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return budget.Budget{}, false, err
		}
	}

	b, err := repos.Budget.FindActiveByName(budget.GeneralBudgetName, at)
	if err == nil {
		return b, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return budget.Budget{}, false, err
	}

	b, err = repos.Budget.FindAnyActive(at)
	if err == nil {
		return b, true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return budget.Budget{}, false, nil
	}
	return budget.Budget{}, false, err
}

// ApplyExpense charges an approved expense against the matching budget.
// The usage record is keyed (budget_id, expense_id), so re-applying the
// same expense adjusts by the delta instead of double counting.
func (s *BudgetService) ApplyExpense(expenseID uint, amount float64, categoryID *uint) error {
	return s.Repos.ExecTx(func(repos *repository.Repos) error {
		b, found, err := s.resolveBudget(repos, categoryID, time.Now())
		if err != nil {
			return err
		}
		if !found {
			log.Printf("[Budget] no active budget for expense %d, skipping", expenseID)
			return nil
		}

		delta := amount
		rec, err := repos.Budget.GetUsage(b.BudgetID, expenseID)
		switch {
		case err == nil:
			delta = amount - rec.UsageAmount
			rec.UsageAmount = amount
			if err := repos.Budget.UpdateUsage(&rec); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			rec = budget.BudgetUsageRecord{
				BudgetID:    b.BudgetID,
				ExpenseID:   expenseID,
				UsageAmount: amount,
			}
			if err := repos.Budget.CreateUsage(&rec); err != nil {
				return err
			}
		default:
			return err
		}

		return repos.Budget.UpdateUsedAmount(b.BudgetID, b.UsedAmount+delta)
	})
}

// ReverseExpense undoes a previously applied expense. Missing usage record
// means nothing to undo. The used amount is clamped at zero so ledger
// drift can never push it negative.
func (s *BudgetService) ReverseExpense(expenseID uint) error {
	return s.Repos.ExecTx(func(repos *repository.Repos) error {
		return s.reverseExpense(repos, expenseID)
	})
}

func (s *BudgetService) reverseExpense(repos *repository.Repos, expenseID uint) error {
	rec, err := repos.Budget.GetUsageByExpense(expenseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	b, err := repos.Budget.GetBudgetByID(rec.BudgetID)
	if err != nil {
		return err
	}

	used := b.UsedAmount - rec.UsageAmount
	if used < 0 {
		used = 0
	}
	if err := repos.Budget.UpdateUsedAmount(b.BudgetID, used); err != nil {
		return err
	}
	return repos.Budget.DeleteUsage(rec.RecordID)
}

// ReleaseDormExpenses reverses the budget usage of every expense belonging
// to a dorm. Runs inside the caller's transaction, ahead of a bulk expense
// delete that would otherwise orphan the usage records.
func (s *BudgetService) ReleaseDormExpenses(repos *repository.Repos, dormID uint) error {
	expenses, err := repos.Expense.ListByDorm(dormID)
	if err != nil {
		return err
	}
	for _, e := range expenses {
		if err := s.reverseExpense(repos, e.ExpenseID); err != nil {
			return err
		}
	}
	return nil
}
