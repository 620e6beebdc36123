package routes

import (
	"github.com/dormhub/dormhub-go/internal/api/handlers"
	"github.com/dormhub/dormhub-go/internal/api/middleware"
	"github.com/dormhub/dormhub-go/internal/application"
	"github.com/dormhub/dormhub-go/internal/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires every endpoint. receipts may be nil when no object
// store is configured; receipt endpoints then report a validation error.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, receipts application.ReceiptStore) {
	repos := repository.NewRepositories(db)
	services := application.NewServices(repos, receipts)
	h := handlers.New(services, r)
	authMiddleware := middleware.NewAuth(repos)

	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/me", h.User.Me)
		auth.PUT("/me", h.User.UpdateMe)
		auth.GET("/audit-logs", authMiddleware.Admin(), h.Audit.List)
		auth.GET("/ws/notifications", h.Notification.Stream)

		dorms := auth.Group("/dorms")
		{
			dorms.GET("", h.Dorm.ListDorms)
			dorms.GET("/:id", h.Dorm.GetDorm)
			dorms.POST("", h.Dorm.CreateDorm)
			dorms.PUT("/:id", h.Dorm.UpdateDorm)
			dorms.DELETE("/:id", h.Dorm.DeleteDorm)

			dorms.POST("/:id/dismissal", h.Dorm.StartDismissal)
			dorms.PUT("/:id/dismissal/confirm", h.Dorm.ConfirmDismissal)
			dorms.PUT("/:id/dismissal/cancel", h.Dorm.CancelDismissal)
			dorms.GET("/:id/consistency", authMiddleware.Admin(), h.Dorm.CheckConsistency)

			dorms.GET("/:id/members", h.Membership.ListByDorm)
			dorms.GET("/:id/expenses", h.Expense.ListByDorm)
		}

		memberships := auth.Group("/memberships")
		{
			memberships.GET("", h.Membership.ListMine)
			memberships.POST("", h.Membership.AddMember)
			memberships.POST("/accept", h.Membership.AcceptInvite)
			memberships.PUT("/:id/status", h.Membership.UpdateStatus)
			memberships.PUT("/:id/role", h.Membership.UpdateRole)
			memberships.DELETE("/:id", h.Membership.RemoveMember)
		}

		expenses := auth.Group("/expenses")
		{
			expenses.GET("/:id", h.Expense.GetExpense)
			expenses.POST("", h.Expense.CreateExpense)
			expenses.PUT("/:id/review", h.Expense.ReviewExpense)
			expenses.DELETE("/:id", h.Expense.DeleteExpense)
			expenses.PUT("/batch/approve", h.Expense.BatchApprove)
			expenses.PUT("/batch/reject", h.Expense.BatchReject)
			expenses.POST("/:id/receipt", h.Expense.AttachReceipt)
			expenses.GET("/:id/receipt", h.Expense.ReceiptURL)
		}

		auth.GET("/expense-categories", h.Expense.ListCategories)

		notifications := auth.Group("/notifications")
		{
			notifications.GET("", h.Notification.List)
			notifications.PUT("/:id/read", h.Notification.MarkRead)
		}
	}
}
