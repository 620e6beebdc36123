package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User         UserRepo
	Dorm         DormRepo
	Membership   MembershipRepo
	Expense      ExpenseRepo
	Budget       BudgetRepo
	Audit        AuditRepo
	Notification NotificationRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:         NewUserRepo(db),
		Dorm:         NewDormRepo(db),
		Membership:   NewMembershipRepo(db),
		Expense:      NewExpenseRepo(db),
		Budget:       NewBudgetRepo(db),
		Audit:        NewAuditRepo(db),
		Notification: NewNotificationRepo(db),
		db:           db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:         r.User.WithTx(tx),
		Dorm:         r.Dorm.WithTx(tx),
		Membership:   r.Membership.WithTx(tx),
		Expense:      r.Expense.WithTx(tx),
		Budget:       r.Budget.WithTx(tx),
		Audit:        r.Audit.WithTx(tx),
		Notification: r.Notification.WithTx(tx),
		db:           tx,
	}
}

// ExecTx runs fn inside one database transaction: commit on nil, rollback
// on error. A container without an underlying handle (mock repos in unit
// tests) runs fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
