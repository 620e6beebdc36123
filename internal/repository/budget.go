package repository

import (
	"time"

	"github.com/dormhub/dormhub-go/internal/domain/budget"
	"gorm.io/gorm"
)

type BudgetRepo interface {
	CreateBudget(b *budget.Budget) error
	GetBudgetByID(id uint) (budget.Budget, error)
	// FindActiveByCategory returns an active budget whose period covers at
	// and whose category matches.
	FindActiveByCategory(categoryID uint, at time.Time) (budget.Budget, error)
	FindActiveByName(name string, at time.Time) (budget.Budget, error)
	FindAnyActive(at time.Time) (budget.Budget, error)
	UpdateUsedAmount(budgetID uint, usedAmount float64) error

	GetUsage(budgetID, expenseID uint) (budget.BudgetUsageRecord, error)
	GetUsageByExpense(expenseID uint) (budget.BudgetUsageRecord, error)
	CreateUsage(rec *budget.BudgetUsageRecord) error
	UpdateUsage(rec *budget.BudgetUsageRecord) error
	DeleteUsage(recordID uint) error

	WithTx(tx *gorm.DB) BudgetRepo
}

type DBBudgetRepo struct {
	db *gorm.DB
}

func NewBudgetRepo(db *gorm.DB) *DBBudgetRepo {
	return &DBBudgetRepo{
		db: db,
	}
}

func (r *DBBudgetRepo) CreateBudget(b *budget.Budget) error {
	return r.db.Create(b).Error
}

func (r *DBBudgetRepo) GetBudgetByID(id uint) (budget.Budget, error) {
	var b budget.Budget
	err := r.db.First(&b, id).Error
	return b, err
}

func (r *DBBudgetRepo) activeAt(at time.Time) *gorm.DB {
	return r.db.
		Where("is_active = ?", true).
		Where("period_start <= ? AND period_end >= ?", at, at)
}

func (r *DBBudgetRepo) FindActiveByCategory(categoryID uint, at time.Time) (budget.Budget, error) {
	var b budget.Budget
	err := r.activeAt(at).
		Where("category_id = ?", categoryID).
		Order("budget_id").
		First(&b).Error
	return b, err
}

func (r *DBBudgetRepo) FindActiveByName(name string, at time.Time) (budget.Budget, error) {
	var b budget.Budget
	err := r.activeAt(at).
		Where("budget_name = ?", name).
		Order("budget_id").
		First(&b).Error
	return b, err
}

func (r *DBBudgetRepo) FindAnyActive(at time.Time) (budget.Budget, error) {
	var b budget.Budget
	err := r.activeAt(at).
		Order("budget_id").
		First(&b).Error
	return b, err
}

func (r *DBBudgetRepo) UpdateUsedAmount(budgetID uint, usedAmount float64) error {
	return r.db.Model(&budget.Budget{}).
		Where("budget_id = ?", budgetID).
		Update("used_amount", usedAmount).Error
}

func (r *DBBudgetRepo) GetUsage(budgetID, expenseID uint) (budget.BudgetUsageRecord, error) {
	var rec budget.BudgetUsageRecord
	err := r.db.First(&rec, "budget_id = ? AND expense_id = ?", budgetID, expenseID).Error
	return rec, err
}

func (r *DBBudgetRepo) GetUsageByExpense(expenseID uint) (budget.BudgetUsageRecord, error) {
	var rec budget.BudgetUsageRecord
	err := r.db.First(&rec, "expense_id = ?", expenseID).Error
	return rec, err
}

func (r *DBBudgetRepo) CreateUsage(rec *budget.BudgetUsageRecord) error {
	return r.db.Create(rec).Error
}

func (r *DBBudgetRepo) UpdateUsage(rec *budget.BudgetUsageRecord) error {
	return r.db.Save(rec).Error
}

func (r *DBBudgetRepo) DeleteUsage(recordID uint) error {
	return r.db.Delete(&budget.BudgetUsageRecord{}, recordID).Error
}

func (r *DBBudgetRepo) WithTx(tx *gorm.DB) BudgetRepo {
	if tx == nil {
		return r
	}
	return &DBBudgetRepo{
		db: tx,
	}
}
