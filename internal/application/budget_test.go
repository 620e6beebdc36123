package application

import (
	"testing"

	"github.com/dormhub/dormhub-go/internal/domain/budget"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupBudgetService(t *testing.T) (*BudgetService, *serviceMocks) {
	m := newServiceMocks(t)
	return NewBudgetService(m.repos), m
}

func TestApplyExpense_CategoryMatchWins(t *testing.T) {
	svc, m := setupBudgetService(t)

	m.budget.EXPECT().FindActiveByCategory(uint(3), gomock.Any()).Return(budget.Budget{
		BudgetID:   2,
		UsedAmount: 10,
	}, nil)
	m.budget.EXPECT().GetUsage(uint(2), uint(9)).Return(budget.BudgetUsageRecord{}, gorm.ErrRecordNotFound)
	m.budget.EXPECT().CreateUsage(gomock.Any()).DoAndReturn(func(rec *budget.BudgetUsageRecord) error {
		assert.Equal(t, uint(2), rec.BudgetID)
		assert.Equal(t, uint(9), rec.ExpenseID)
		assert.Equal(t, float64(50), rec.UsageAmount)
		return nil
	})
	m.budget.EXPECT().UpdateUsedAmount(uint(2), float64(60)).Return(nil)

	err := svc.ApplyExpense(9, 50, ptrUint(3))
	assert.NoError(t, err)
}

func TestApplyExpense_NoActiveBudgetIsNoOp(t *testing.T) {
	svc, m := setupBudgetService(t)

	m.budget.EXPECT().FindActiveByName(budget.GeneralBudgetName, gomock.Any()).Return(budget.Budget{}, gorm.ErrRecordNotFound)
	m.budget.EXPECT().FindAnyActive(gomock.Any()).Return(budget.Budget{}, gorm.ErrRecordNotFound)

	err := svc.ApplyExpense(9, 50, nil)
	assert.NoError(t, err)
}

func TestApplyExpense_ReapplyAdjustsByDelta(t *testing.T) {
	svc, m := setupBudgetService(t)

	m.budget.EXPECT().FindActiveByName(budget.GeneralBudgetName, gomock.Any()).Return(budget.Budget{
		BudgetID:   1,
		UsedAmount: 80,
	}, nil)
	m.budget.EXPECT().GetUsage(uint(1), uint(9)).Return(budget.BudgetUsageRecord{
		RecordID:    4,
		BudgetID:    1,
		ExpenseID:   9,
		UsageAmount: 50,
	}, nil)
	m.budget.EXPECT().UpdateUsage(gomock.Any()).Return(nil)
	// 80 + (70 - 50), not 80 + 70
	m.budget.EXPECT().UpdateUsedAmount(uint(1), float64(100)).Return(nil)

	err := svc.ApplyExpense(9, 70, nil)
	assert.NoError(t, err)
}

func TestReverseExpense_MissingUsageIsNoOp(t *testing.T) {
	svc, m := setupBudgetService(t)

	m.budget.EXPECT().GetUsageByExpense(uint(9)).Return(budget.BudgetUsageRecord{}, gorm.ErrRecordNotFound)

	err := svc.ReverseExpense(9)
	assert.NoError(t, err)
}

func TestReverseExpense_SubtractsAndDeletesUsage(t *testing.T) {
	svc, m := setupBudgetService(t)

	m.budget.EXPECT().GetUsageByExpense(uint(9)).Return(budget.BudgetUsageRecord{
		RecordID:    4,
		BudgetID:    1,
		ExpenseID:   9,
		UsageAmount: 50,
	}, nil)
	m.budget.EXPECT().GetBudgetByID(uint(1)).Return(budget.Budget{
		BudgetID:   1,
		UsedAmount: 130,
	}, nil)
	m.budget.EXPECT().UpdateUsedAmount(uint(1), float64(80)).Return(nil)
	m.budget.EXPECT().DeleteUsage(uint(4)).Return(nil)

	err := svc.ReverseExpense(9)
	assert.NoError(t, err)
}
