package budget

import "time"

// GeneralBudgetName is the fallback budget looked up when no budget matches
// an expense's category.
const GeneralBudgetName = "General"

type Budget struct {
	BudgetID     uint      `gorm:"primaryKey;column:budget_id" json:"budget_id"`
	BudgetName   string    `gorm:"size:100;not null" json:"budget_name"`
	CategoryID   *uint     `gorm:"column:category_id;index" json:"category_id"`
	BudgetAmount float64   `gorm:"not null" json:"budget_amount"`
	UsedAmount   float64   `gorm:"not null;default:0" json:"used_amount"`
	PeriodStart  time.Time `gorm:"not null" json:"period_start"`
	PeriodEnd    time.Time `gorm:"not null" json:"period_end"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt    time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

// BudgetUsageRecord ties one approved expense to the budget it consumed.
// The (budget_id, expense_id) pair is unique so re-applying the same
// expense updates in place instead of double counting.
type BudgetUsageRecord struct {
	RecordID    uint      `gorm:"primaryKey;column:record_id" json:"record_id"`
	BudgetID    uint      `gorm:"column:budget_id;not null;uniqueIndex:idx_budget_expense" json:"budget_id"`
	ExpenseID   uint      `gorm:"column:expense_id;not null;uniqueIndex:idx_budget_expense" json:"expense_id"`
	UsageAmount float64   `gorm:"not null" json:"usage_amount"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt   time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}
