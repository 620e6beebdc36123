package application

import (
	"testing"

	"github.com/dormhub/dormhub-go/internal/domain/expense"
	"github.com/dormhub/dormhub-go/internal/repository"
	"github.com/dormhub/dormhub-go/internal/repository/mock"
	"github.com/dormhub/dormhub-go/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
)

// stubAuthz answers every capability check from fixed fields so service
// tests can focus on the state machine instead of role lookups.
type stubAuthz struct {
	admin      bool
	manageDorm bool
	manageMem  bool
	approve    bool
}

func (a *stubAuthz) IsAdmin(uint) (bool, error)                   { return a.admin, nil }
func (a *stubAuthz) CanManageDorm(uint, uint) (bool, error)       { return a.manageDorm, nil }
func (a *stubAuthz) CanManageMembership(uint, uint) (bool, error) { return a.manageMem, nil }
func (a *stubAuthz) CanApproveExpenses(uint, uint) (bool, error)  { return a.approve, nil }

type serviceMocks struct {
	repos      *repository.Repos
	user       *mock.MockUserRepo
	dorm       *mock.MockDormRepo
	membership *mock.MockMembershipRepo
	expense    *mock.MockExpenseRepo
	budget     *mock.MockBudgetRepo
	audit      *mock.MockAuditRepo
	notify     *mock.MockNotificationRepo
}

// newServiceMocks wires a Repos container out of gomock repos. Without a
// real DB handle ExecTx runs its callback on the container itself, so
// transactional code paths are exercised directly.
func newServiceMocks(t *testing.T) *serviceMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &serviceMocks{
		user:       mock.NewMockUserRepo(ctrl),
		dorm:       mock.NewMockDormRepo(ctrl),
		membership: mock.NewMockMembershipRepo(ctrl),
		expense:    mock.NewMockExpenseRepo(ctrl),
		budget:     mock.NewMockBudgetRepo(ctrl),
		audit:      mock.NewMockAuditRepo(ctrl),
		notify:     mock.NewMockNotificationRepo(ctrl),
	}
	m.repos = &repository.Repos{
		User:         m.user,
		Dorm:         m.dorm,
		Membership:   m.membership,
		Expense:      m.expense,
		Budget:       m.budget,
		Audit:        m.audit,
		Notification: m.notify,
	}

	// Notifications and audit entries are best-effort side channels; let
	// them pass without per-test expectations.
	m.notify.EXPECT().CreateNotification(gomock.Any()).Return(nil).AnyTimes()
	m.user.EXPECT().GetUsernameByID(gomock.Any()).Return("tester", nil).AnyTimes()
	muteAudit(t)
	return m
}

func muteAudit(t *testing.T) {
	orig := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(*gin.Context, string, string, string, interface{}, interface{}, string, repository.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = orig })
}

func (m *serviceMocks) notifyService() *NotificationService {
	return NewNotificationService(m.repos, nil)
}

func ptrString(s string) *string { return &s }
func ptrUint(v uint) *uint       { return &v }

func unpaidSplits(amounts ...float64) []expense.ExpenseSplit {
	splits := make([]expense.ExpenseSplit, 0, len(amounts))
	for _, a := range amounts {
		splits = append(splits, expense.ExpenseSplit{
			Amount:        a,
			PaymentStatus: string(expense.SplitUnpaid),
		})
	}
	return splits
}
