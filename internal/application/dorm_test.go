package application

import (
	"testing"

	"github.com/dormhub/dormhub-go/internal/domain/budget"
	"github.com/dormhub/dormhub-go/internal/domain/dorm"
	"github.com/dormhub/dormhub-go/internal/domain/expense"
	"github.com/dormhub/dormhub-go/internal/domain/membership"
	"github.com/dormhub/dormhub-go/pkg/apperr"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupDormService(t *testing.T, authz *stubAuthz) (*DormService, *serviceMocks) {
	m := newServiceMocks(t)
	svc := NewDormService(m.repos, authz, NewBudgetService(m.repos), m.notifyService())
	return svc, m
}

func TestCreateDorm_RequiresAdministrator(t *testing.T) {
	svc, _ := setupDormService(t, &stubAuthz{})

	_, err := svc.CreateDorm(nil, dorm.DormCreateDTO{DormCode: "D-1", DormName: "North", Capacity: 4}, 1)
	assert.True(t, apperr.IsKind(err, apperr.KindPermission))
}

func TestCreateDorm_Success(t *testing.T) {
	svc, m := setupDormService(t, &stubAuthz{admin: true})

	m.dorm.EXPECT().CreateDorm(gomock.Any()).DoAndReturn(func(d *dorm.Dorm) error {
		d.DormID = 7
		return nil
	})

	d, err := svc.CreateDorm(nil, dorm.DormCreateDTO{DormCode: "D-1", DormName: "North", Capacity: 4}, 1)
	assert.NoError(t, err)
	assert.Equal(t, string(dorm.DormStatusActive), d.Status)
	assert.Equal(t, uint(7), d.DormID)
}

func TestUpdateDorm_CapacityBelowOccupancy(t *testing.T) {
	svc, m := setupDormService(t, &stubAuthz{manageDorm: true})

	m.dorm.EXPECT().GetDormByIDForUpdate(uint(7)).Return(dorm.Dorm{
		DormID:           7,
		DormCode:         "D-1",
		Status:           string(dorm.DormStatusActive),
		Capacity:         4,
		CurrentOccupancy: 3,
	}, nil)

	capacity := 2
	_, err := svc.UpdateDorm(nil, 7, dorm.DormUpdateDTO{Capacity: &capacity}, 1)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestStartDismissal_OpensPendingProcess(t *testing.T) {
	svc, m := setupDormService(t, &stubAuthz{manageDorm: true})

	m.dorm.EXPECT().GetDormByIDForUpdate(uint(7)).Return(dorm.Dorm{
		DormID:   7,
		DormCode: "D-1",
		Status:   string(dorm.DormStatusActive),
	}, nil)
	m.dorm.EXPECT().GetPendingDismissal(uint(7)).Return(dorm.DismissalProcess{}, gorm.ErrRecordNotFound)
	m.dorm.EXPECT().UpdateDorm(gomock.Any()).DoAndReturn(func(d *dorm.Dorm) error {
		assert.Equal(t, string(dorm.DormStatusDismissing), d.Status)
		return nil
	})
	m.dorm.EXPECT().CreateDismissal(gomock.Any()).Return(nil)
	m.membership.EXPECT().ListByDorm(uint(7)).Return(nil, nil)

	p, err := svc.StartDismissal(nil, 7, 1)
	assert.NoError(t, err)
	assert.Equal(t, string(dorm.DismissalStatusPending), p.Status)
	assert.Equal(t, uint(1), p.InitiatorID)
}

func TestStartDismissal_AlreadyPending(t *testing.T) {
	svc, m := setupDormService(t, &stubAuthz{manageDorm: true})

	m.dorm.EXPECT().GetDormByIDForUpdate(uint(7)).Return(dorm.Dorm{
		DormID:   7,
		DormCode: "D-1",
		Status:   string(dorm.DormStatusActive),
	}, nil)
	m.dorm.EXPECT().GetPendingDismissal(uint(7)).Return(dorm.DismissalProcess{ProcessID: 1}, nil)

	_, err := svc.StartDismissal(nil, 7, 1)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestConfirmDismissal_ClearsExpensesBeforeDorm(t *testing.T) {
	svc, m := setupDormService(t, &stubAuthz{manageDorm: true})

	m.membership.EXPECT().ListByDorm(uint(7)).Return([]membership.Membership{{UID: 2, DormID: 7}}, nil)
	m.dorm.EXPECT().GetDormByIDForUpdate(uint(7)).Return(dorm.Dorm{
		DormID:   7,
		DormCode: "D-1",
		Status:   string(dorm.DormStatusDismissing),
	}, nil)
	m.dorm.EXPECT().GetPendingDismissal(uint(7)).Return(dorm.DismissalProcess{
		ProcessID: 1,
		DormID:    7,
		Status:    string(dorm.DismissalStatusPending),
	}, nil)
	m.expense.EXPECT().ListByDorm(uint(7)).Return(nil, nil)
	gomock.InOrder(
		m.expense.EXPECT().DeleteExpensesByDorm(uint(7)).Return(nil),
		m.dorm.EXPECT().DeleteDorm(uint(7)).Return(nil),
	)
	m.dorm.EXPECT().UpdateDismissal(gomock.Any()).DoAndReturn(func(p *dorm.DismissalProcess) error {
		assert.Equal(t, string(dorm.DismissalStatusCompleted), p.Status)
		return nil
	})

	err := svc.ConfirmDismissal(nil, 7, 1)
	assert.NoError(t, err)
}

func TestConfirmDismissal_ReversesBudgetUsage(t *testing.T) {
	svc, m := setupDormService(t, &stubAuthz{manageDorm: true})

	m.membership.EXPECT().ListByDorm(uint(7)).Return(nil, nil)
	m.dorm.EXPECT().GetDormByIDForUpdate(uint(7)).Return(dorm.Dorm{
		DormID:   7,
		DormCode: "D-1",
		Status:   string(dorm.DormStatusDismissing),
	}, nil)
	m.dorm.EXPECT().GetPendingDismissal(uint(7)).Return(dorm.DismissalProcess{
		ProcessID: 1,
		DormID:    7,
		Status:    string(dorm.DismissalStatusPending),
	}, nil)

	// An approved expense charged 40 against budget 5; confirming the
	// dismissal must give the 40 back and drop the usage record before the
	// expense rows disappear.
	m.expense.EXPECT().ListByDorm(uint(7)).Return([]expense.Expense{
		{ExpenseID: 31, DormID: 7, Status: string(expense.ExpenseStatusApproved), Amount: 40},
	}, nil)
	m.budget.EXPECT().GetUsageByExpense(uint(31)).Return(budget.BudgetUsageRecord{
		RecordID:    9,
		BudgetID:    5,
		ExpenseID:   31,
		UsageAmount: 40,
	}, nil)
	m.budget.EXPECT().GetBudgetByID(uint(5)).Return(budget.Budget{BudgetID: 5, UsedAmount: 100}, nil)
	m.budget.EXPECT().UpdateUsedAmount(uint(5), float64(60)).Return(nil)
	m.budget.EXPECT().DeleteUsage(uint(9)).Return(nil)

	m.expense.EXPECT().DeleteExpensesByDorm(uint(7)).Return(nil)
	m.dorm.EXPECT().DeleteDorm(uint(7)).Return(nil)
	m.dorm.EXPECT().UpdateDismissal(gomock.Any()).Return(nil)

	err := svc.ConfirmDismissal(nil, 7, 1)
	assert.NoError(t, err)
}

func TestConfirmDismissal_NotDismissing(t *testing.T) {
	svc, m := setupDormService(t, &stubAuthz{manageDorm: true})

	m.membership.EXPECT().ListByDorm(uint(7)).Return(nil, nil)
	m.dorm.EXPECT().GetDormByIDForUpdate(uint(7)).Return(dorm.Dorm{
		DormID:   7,
		DormCode: "D-1",
		Status:   string(dorm.DormStatusActive),
	}, nil)

	err := svc.ConfirmDismissal(nil, 7, 1)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestCancelDismissal_RestoresActive(t *testing.T) {
	svc, m := setupDormService(t, &stubAuthz{manageDorm: true})

	m.dorm.EXPECT().GetDormByIDForUpdate(uint(7)).Return(dorm.Dorm{
		DormID:   7,
		DormCode: "D-1",
		Status:   string(dorm.DormStatusDismissing),
	}, nil)
	m.dorm.EXPECT().GetPendingDismissal(uint(7)).Return(dorm.DismissalProcess{
		ProcessID: 1,
		DormID:    7,
		Status:    string(dorm.DismissalStatusPending),
	}, nil)
	m.dorm.EXPECT().UpdateDorm(gomock.Any()).DoAndReturn(func(d *dorm.Dorm) error {
		assert.Equal(t, string(dorm.DormStatusActive), d.Status)
		return nil
	})
	m.dorm.EXPECT().UpdateDismissal(gomock.Any()).DoAndReturn(func(p *dorm.DismissalProcess) error {
		assert.Equal(t, string(dorm.DismissalStatusCancelled), p.Status)
		return nil
	})
	m.membership.EXPECT().ListByDorm(uint(7)).Return(nil, nil)

	err := svc.CancelDismissal(nil, 7, 1)
	assert.NoError(t, err)
}
