package handlers

import (
	"github.com/dormhub/dormhub-go/internal/application"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	User         *UserHandler
	Dorm         *DormHandler
	Membership   *MembershipHandler
	Expense      *ExpenseHandler
	Audit        *AuditHandler
	Notification *NotificationHandler
	Router       *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	return &Handlers{
		User:         NewUserHandler(svc.User),
		Dorm:         NewDormHandler(svc.Dorm, svc.Membership),
		Membership:   NewMembershipHandler(svc.Membership),
		Expense:      NewExpenseHandler(svc.Expense),
		Audit:        NewAuditHandler(svc.Audit),
		Notification: NewNotificationHandler(svc.Notify, svc.Hub),
		Router:       router,
	}
}
