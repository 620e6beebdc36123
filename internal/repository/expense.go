package repository

import (
	"github.com/dormhub/dormhub-go/internal/domain/expense"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExpenseRepo interface {
	CreateExpense(e *expense.Expense) error
	GetExpenseByID(id uint) (expense.Expense, error)
	// GetExpenseByIDForUpdate locks the row for the rest of the transaction.
	GetExpenseByIDForUpdate(id uint) (expense.Expense, error)
	UpdateExpense(e *expense.Expense) error
	DeleteExpense(id uint) error
	DeleteExpensesByDorm(dormID uint) error
	ListByDorm(dormID uint) ([]expense.Expense, error)

	CreateSplit(s *expense.ExpenseSplit) error
	ListUnpaidSplits(uid, dormID uint) ([]expense.ExpenseSplit, error)
	WaiveSplits(uid, dormID uint) error
	CountUsageRecordsByExpense(expenseID uint) (int64, error)

	GetCategoryByID(id uint) (expense.ExpenseCategory, error)
	GetCategoryByName(name string) (expense.ExpenseCategory, error)
	CreateCategory(c *expense.ExpenseCategory) error
	ListCategories() ([]expense.ExpenseCategory, error)

	WithTx(tx *gorm.DB) ExpenseRepo
}

type DBExpenseRepo struct {
	db *gorm.DB
}

func NewExpenseRepo(db *gorm.DB) *DBExpenseRepo {
	return &DBExpenseRepo{
		db: db,
	}
}

func (r *DBExpenseRepo) CreateExpense(e *expense.Expense) error {
	return r.db.Create(e).Error
}

func (r *DBExpenseRepo) GetExpenseByID(id uint) (expense.Expense, error) {
	var e expense.Expense
	err := r.db.First(&e, id).Error
	return e, err
}

func (r *DBExpenseRepo) GetExpenseByIDForUpdate(id uint) (expense.Expense, error) {
	var e expense.Expense
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&e, id).Error
	return e, err
}

func (r *DBExpenseRepo) UpdateExpense(e *expense.Expense) error {
	return r.db.Save(e).Error
}

func (r *DBExpenseRepo) DeleteExpense(id uint) error {
	return r.db.Delete(&expense.Expense{}, id).Error
}

// DeleteExpensesByDorm clears a dorm's expenses ahead of dorm removal.
// Splits cascade away with their expense.
func (r *DBExpenseRepo) DeleteExpensesByDorm(dormID uint) error {
	return r.db.Where("dorm_id = ?", dormID).Delete(&expense.Expense{}).Error
}

func (r *DBExpenseRepo) ListByDorm(dormID uint) ([]expense.Expense, error) {
	var expenses []expense.Expense
	err := r.db.
		Where("dorm_id = ?", dormID).
		Find(&expenses).Error
	return expenses, err
}

func (r *DBExpenseRepo) CreateSplit(s *expense.ExpenseSplit) error {
	return r.db.Create(s).Error
}

func (r *DBExpenseRepo) ListUnpaidSplits(uid, dormID uint) ([]expense.ExpenseSplit, error) {
	var splits []expense.ExpenseSplit
	err := r.db.
		Where("u_id = ? AND dorm_id = ? AND payment_status = ?", uid, dormID, expense.SplitUnpaid).
		Find(&splits).Error
	return splits, err
}

func (r *DBExpenseRepo) WaiveSplits(uid, dormID uint) error {
	return r.db.Model(&expense.ExpenseSplit{}).
		Where("u_id = ? AND dorm_id = ? AND payment_status = ?", uid, dormID, expense.SplitUnpaid).
		Update("payment_status", expense.SplitWaived).Error
}

func (r *DBExpenseRepo) CountUsageRecordsByExpense(expenseID uint) (int64, error) {
	var count int64
	err := r.db.Table("budget_usage_records").
		Where("expense_id = ?", expenseID).
		Count(&count).Error
	return count, err
}

func (r *DBExpenseRepo) GetCategoryByID(id uint) (expense.ExpenseCategory, error) {
	var c expense.ExpenseCategory
	err := r.db.First(&c, id).Error
	return c, err
}

func (r *DBExpenseRepo) GetCategoryByName(name string) (expense.ExpenseCategory, error) {
	var c expense.ExpenseCategory
	err := r.db.First(&c, "category_name = ?", name).Error
	return c, err
}

func (r *DBExpenseRepo) CreateCategory(c *expense.ExpenseCategory) error {
	return r.db.Create(c).Error
}

func (r *DBExpenseRepo) ListCategories() ([]expense.ExpenseCategory, error) {
	var categories []expense.ExpenseCategory
	err := r.db.Find(&categories).Error
	return categories, err
}

func (r *DBExpenseRepo) WithTx(tx *gorm.DB) ExpenseRepo {
	if tx == nil {
		return r
	}
	return &DBExpenseRepo{
		db: tx,
	}
}
