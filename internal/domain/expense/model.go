package expense

import (
	"time"

	"github.com/dormhub/dormhub-go/internal/domain/dorm"
)

type ExpenseStatus string

const (
	ExpenseStatusDraft    ExpenseStatus = "draft"
	ExpenseStatusPending  ExpenseStatus = "pending"
	ExpenseStatusApproved ExpenseStatus = "approved"
	ExpenseStatusRejected ExpenseStatus = "rejected"
	ExpenseStatusPaid     ExpenseStatus = "paid"
)

type SplitPaymentStatus string

const (
	SplitUnpaid SplitPaymentStatus = "unpaid"
	SplitPaid   SplitPaymentStatus = "paid"
	SplitWaived SplitPaymentStatus = "waived"
)

type ExpenseCategory struct {
	CategoryID   uint      `gorm:"primaryKey;column:category_id" json:"category_id"`
	CategoryName string    `gorm:"size:50;not null;unique" json:"category_name"`
	CreatedAt    time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}

// Expense references its dorm with a restrict-style constraint: a dorm
// cannot be removed while expenses still point at it.
type Expense struct {
	ExpenseID     uint       `gorm:"primaryKey;column:expense_id" json:"expense_id"`
	DormID        uint       `gorm:"column:dorm_id;not null;index" json:"dorm_id"`
	Dorm          dorm.Dorm  `gorm:"foreignKey:DormID;constraint:OnDelete:RESTRICT" json:"-"`
	ApplicantID   uint       `gorm:"column:applicant_id;not null;index" json:"applicant_id"`
	CategoryID    *uint      `gorm:"column:category_id" json:"category_id"`
	Title         string     `gorm:"size:100;not null" json:"title"`
	Description   string     `gorm:"size:500" json:"description"`
	Amount        float64    `gorm:"not null" json:"amount"`
	Status        string     `gorm:"size:20;default:'pending';not null" json:"status"`
	ReviewerID    *uint      `gorm:"column:reviewer_id" json:"reviewer_id"`
	ReviewComment string     `gorm:"size:500" json:"review_comment"`
	ReceiptKey    string     `gorm:"size:255" json:"receipt_key"`
	ProcessedAt   *time.Time `json:"processed_at"`
	CreatedAt     time.Time  `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt     time.Time  `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

// ExpenseSplit is one member's share of an expense. Splits cascade away
// with their expense.
type ExpenseSplit struct {
	SplitID       uint      `gorm:"primaryKey;column:split_id" json:"split_id"`
	ExpenseID     uint      `gorm:"column:expense_id;not null;index" json:"expense_id"`
	Expense       Expense   `gorm:"foreignKey:ExpenseID;constraint:OnDelete:CASCADE" json:"-"`
	UID           uint      `gorm:"column:u_id;not null;index" json:"uid"`
	DormID        uint      `gorm:"column:dorm_id;not null;index" json:"dorm_id"`
	Amount        float64   `gorm:"not null" json:"amount"`
	PaymentStatus string    `gorm:"size:20;default:'unpaid';not null" json:"payment_status"`
	CreatedAt     time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt     time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

// ReviewTarget reports whether a reviewer may move an expense from one
// status to another. rejected expenses cannot be re-approved through
// review; they go back through the applicant.
func ReviewTarget(from, to ExpenseStatus) bool {
	if to != ExpenseStatusApproved && to != ExpenseStatusRejected {
		return false
	}
	switch from {
	case ExpenseStatusPending:
		return true
	case ExpenseStatusApproved:
		return to == ExpenseStatusRejected
	}
	return false
}
