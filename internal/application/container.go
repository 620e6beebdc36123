package application

import "github.com/dormhub/dormhub-go/internal/repository"

// Services bundles every application service behind one handle so handlers
// only carry a single dependency.
type Services struct {
	User       *UserService
	Dorm       *DormService
	Membership *MembershipService
	Expense    *ExpenseService
	Budget     *BudgetService
	Audit      *AuditService
	Notify     *NotificationService
	Hub        *Hub
}

func NewServices(repos *repository.Repos, receipts ReceiptStore) *Services {
	hub := NewHub()
	notify := NewNotificationService(repos, hub)
	authz := NewAuthorizer(repos)
	budget := NewBudgetService(repos)

	return &Services{
		User:       NewUserService(repos),
		Dorm:       NewDormService(repos, authz, budget, notify),
		Membership: NewMembershipService(repos, authz, notify),
		Expense:    NewExpenseService(repos, authz, budget, notify, receipts),
		Budget:     budget,
		Audit:      NewAuditService(repos),
		Notify:     notify,
		Hub:        hub,
	}
}
