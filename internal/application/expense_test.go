package application

import (
	"testing"

	"github.com/dormhub/dormhub-go/internal/domain/budget"
	"github.com/dormhub/dormhub-go/internal/domain/expense"
	"github.com/dormhub/dormhub-go/internal/domain/membership"
	"github.com/dormhub/dormhub-go/pkg/apperr"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupExpenseService(t *testing.T, authz *stubAuthz) (*ExpenseService, *serviceMocks) {
	m := newServiceMocks(t)
	svc := NewExpenseService(m.repos, authz, NewBudgetService(m.repos), m.notifyService(), nil)
	return svc, m
}

// --------------------- CreateExpense ---------------------

func TestCreateExpense_ResolvesDormFromActiveMembership(t *testing.T) {
	svc, m := setupExpenseService(t, &stubAuthz{})

	m.membership.EXPECT().ListByUser(uint(2)).Return([]membership.Membership{
		{UID: 2, DormID: 7, Status: string(membership.MemberStatusActive)},
	}, nil)
	m.expense.EXPECT().CreateExpense(gomock.Any()).DoAndReturn(func(e *expense.Expense) error {
		e.ExpenseID = 9
		return nil
	})

	e, err := svc.CreateExpense(nil, expense.ExpenseCreateDTO{
		Title:  "Cleaning supplies",
		Amount: 45,
	}, 2)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), e.DormID)
	assert.Equal(t, string(expense.ExpenseStatusPending), e.Status)
}

func TestCreateExpense_FallsBackToParticipantDorm(t *testing.T) {
	svc, m := setupExpenseService(t, &stubAuthz{})

	// Applicant 2 has no active membership anywhere; participant 3 is
	// active in dorm 7, which the expense lands in.
	m.membership.EXPECT().ListByUser(uint(2)).Return([]membership.Membership{
		{UID: 2, DormID: 4, Status: string(membership.MemberStatusInactive)},
	}, nil)
	m.membership.EXPECT().ListByUser(uint(3)).Return([]membership.Membership{
		{UID: 3, DormID: 7, Status: string(membership.MemberStatusActive)},
	}, nil)
	m.expense.EXPECT().CreateExpense(gomock.Any()).DoAndReturn(func(e *expense.Expense) error {
		e.ExpenseID = 9
		return nil
	})
	m.membership.EXPECT().GetByUserAndDorm(uint(3), uint(7)).Return(membership.Membership{
		UID: 3, DormID: 7, Status: string(membership.MemberStatusActive),
	}, nil)
	m.expense.EXPECT().CreateSplit(gomock.Any()).Return(nil)

	e, err := svc.CreateExpense(nil, expense.ExpenseCreateDTO{
		Title:  "Moving van",
		Amount: 45,
		Splits: []expense.SplitInputDTO{{UID: 3, Amount: 20}},
	}, 2)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), e.DormID)
}

func TestCreateExpense_NoActiveMembership(t *testing.T) {
	svc, m := setupExpenseService(t, &stubAuthz{})

	m.membership.EXPECT().ListByUser(uint(2)).Return(nil, nil)

	_, err := svc.CreateExpense(nil, expense.ExpenseCreateDTO{Title: "x", Amount: 10}, 2)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestCreateExpense_SplitTotalExceedsAmount(t *testing.T) {
	svc, m := setupExpenseService(t, &stubAuthz{})

	m.membership.EXPECT().GetByUserAndDorm(uint(2), uint(7)).Return(membership.Membership{
		UID: 2, DormID: 7, Status: string(membership.MemberStatusActive),
	}, nil)

	_, err := svc.CreateExpense(nil, expense.ExpenseCreateDTO{
		Title:  "Groceries",
		Amount: 50,
		DormID: ptrUint(7),
		Splits: []expense.SplitInputDTO{
			{UID: 2, Amount: 30},
			{UID: 3, Amount: 30},
		},
	}, 2)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestCreateExpense_SplitUserNotActive(t *testing.T) {
	svc, m := setupExpenseService(t, &stubAuthz{})

	m.membership.EXPECT().GetByUserAndDorm(uint(2), uint(7)).Return(membership.Membership{
		UID: 2, DormID: 7, Status: string(membership.MemberStatusActive),
	}, nil)
	m.expense.EXPECT().CreateExpense(gomock.Any()).Return(nil)
	m.membership.EXPECT().GetByUserAndDorm(uint(3), uint(7)).Return(membership.Membership{
		UID: 3, DormID: 7, Status: string(membership.MemberStatusInactive),
	}, nil)

	_, err := svc.CreateExpense(nil, expense.ExpenseCreateDTO{
		Title:  "Internet",
		Amount: 60,
		DormID: ptrUint(7),
		Splits: []expense.SplitInputDTO{{UID: 3, Amount: 30}},
	}, 2)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

// --------------------- ReviewExpense ---------------------

func TestReviewExpense_ApprovalChargesBudget(t *testing.T) {
	svc, m := setupExpenseService(t, &stubAuthz{approve: true})

	m.expense.EXPECT().GetExpenseByIDForUpdate(uint(9)).Return(expense.Expense{
		ExpenseID:   9,
		DormID:      7,
		ApplicantID: 2,
		Amount:      120,
		Status:      string(expense.ExpenseStatusPending),
	}, nil)
	m.expense.EXPECT().UpdateExpense(gomock.Any()).Return(nil)

	m.budget.EXPECT().FindActiveByName(budget.GeneralBudgetName, gomock.Any()).Return(budget.Budget{
		BudgetID:   1,
		UsedAmount: 30,
	}, nil)
	m.budget.EXPECT().GetUsage(uint(1), uint(9)).Return(budget.BudgetUsageRecord{}, gorm.ErrRecordNotFound)
	m.budget.EXPECT().CreateUsage(gomock.Any()).Return(nil)
	m.budget.EXPECT().UpdateUsedAmount(uint(1), float64(150)).Return(nil)

	updated, err := svc.ReviewExpense(nil, 9, expense.ReviewDTO{Status: "approved"}, 3)
	assert.NoError(t, err)
	assert.Equal(t, string(expense.ExpenseStatusApproved), updated.Status)
	assert.NotNil(t, updated.ProcessedAt)
	assert.Equal(t, ptrUint(3), updated.ReviewerID)
}

func TestReviewExpense_RejectedIsTerminalForApproval(t *testing.T) {
	svc, m := setupExpenseService(t, &stubAuthz{approve: true})

	m.expense.EXPECT().GetExpenseByIDForUpdate(uint(9)).Return(expense.Expense{
		ExpenseID: 9,
		DormID:    7,
		Status:    string(expense.ExpenseStatusRejected),
	}, nil)

	_, err := svc.ReviewExpense(nil, 9, expense.ReviewDTO{Status: "approved"}, 3)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestReviewExpense_SelfReviewDenied(t *testing.T) {
	svc, m := setupExpenseService(t, &stubAuthz{approve: true})

	m.expense.EXPECT().GetExpenseByIDForUpdate(uint(9)).Return(expense.Expense{
		ExpenseID:   9,
		DormID:      7,
		ApplicantID: 3,
		Status:      string(expense.ExpenseStatusPending),
	}, nil)

	_, err := svc.ReviewExpense(nil, 9, expense.ReviewDTO{Status: "approved"}, 3)
	assert.True(t, apperr.IsKind(err, apperr.KindPermission))
}

func TestReviewExpense_ApprovedToRejectedReversesBudget(t *testing.T) {
	svc, m := setupExpenseService(t, &stubAuthz{approve: true})

	m.expense.EXPECT().GetExpenseByIDForUpdate(uint(9)).Return(expense.Expense{
		ExpenseID:   9,
		DormID:      7,
		ApplicantID: 2,
		Amount:      120,
		Status:      string(expense.ExpenseStatusApproved),
	}, nil)
	m.expense.EXPECT().UpdateExpense(gomock.Any()).Return(nil)

	m.budget.EXPECT().GetUsageByExpense(uint(9)).Return(budget.BudgetUsageRecord{
		RecordID:    4,
		BudgetID:    1,
		ExpenseID:   9,
		UsageAmount: 120,
	}, nil)
	// Ledger drift: used amount is below the recorded usage, reversal
	// clamps at zero instead of going negative.
	m.budget.EXPECT().GetBudgetByID(uint(1)).Return(budget.Budget{
		BudgetID:   1,
		UsedAmount: 100,
	}, nil)
	m.budget.EXPECT().UpdateUsedAmount(uint(1), float64(0)).Return(nil)
	m.budget.EXPECT().DeleteUsage(uint(4)).Return(nil)

	updated, err := svc.ReviewExpense(nil, 9, expense.ReviewDTO{Status: "rejected", Comment: "duplicate"}, 3)
	assert.NoError(t, err)
	assert.Equal(t, string(expense.ExpenseStatusRejected), updated.Status)
	assert.Equal(t, "duplicate", updated.ReviewComment)
}

// --------------------- DeleteExpense ---------------------

func TestDeleteExpense_BlockedByUsageRecords(t *testing.T) {
	svc, m := setupExpenseService(t, &stubAuthz{})

	m.expense.EXPECT().GetExpenseByIDForUpdate(uint(9)).Return(expense.Expense{
		ExpenseID:   9,
		DormID:      7,
		ApplicantID: 2,
		Status:      string(expense.ExpenseStatusApproved),
	}, nil)
	m.expense.EXPECT().CountUsageRecordsByExpense(uint(9)).Return(int64(1), nil)

	err := svc.DeleteExpense(nil, 9, 2)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestDeleteExpense_ApplicantDeletesPending(t *testing.T) {
	svc, m := setupExpenseService(t, &stubAuthz{})

	m.expense.EXPECT().GetExpenseByIDForUpdate(uint(9)).Return(expense.Expense{
		ExpenseID:   9,
		DormID:      7,
		ApplicantID: 2,
		Status:      string(expense.ExpenseStatusPending),
	}, nil)
	m.expense.EXPECT().CountUsageRecordsByExpense(uint(9)).Return(int64(0), nil)
	m.expense.EXPECT().DeleteExpense(uint(9)).Return(nil)

	assert.NoError(t, svc.DeleteExpense(nil, 9, 2))
}

func TestDeleteExpense_StrangerDenied(t *testing.T) {
	svc, m := setupExpenseService(t, &stubAuthz{})

	m.expense.EXPECT().GetExpenseByIDForUpdate(uint(9)).Return(expense.Expense{
		ExpenseID:   9,
		DormID:      7,
		ApplicantID: 2,
		Status:      string(expense.ExpenseStatusPending),
	}, nil)

	err := svc.DeleteExpense(nil, 9, 5)
	assert.True(t, apperr.IsKind(err, apperr.KindPermission))
}

// --------------------- BatchReview ---------------------

func TestBatchReview_PartialFailure(t *testing.T) {
	svc, m := setupExpenseService(t, &stubAuthz{approve: true})

	m.expense.EXPECT().GetExpenseByIDForUpdate(uint(9)).Return(expense.Expense{
		ExpenseID:   9,
		DormID:      7,
		ApplicantID: 2,
		Amount:      40,
		Status:      string(expense.ExpenseStatusPending),
	}, nil)
	m.expense.EXPECT().UpdateExpense(gomock.Any()).Return(nil)
	m.budget.EXPECT().FindActiveByName(budget.GeneralBudgetName, gomock.Any()).Return(budget.Budget{}, gorm.ErrRecordNotFound)
	m.budget.EXPECT().FindAnyActive(gomock.Any()).Return(budget.Budget{}, gorm.ErrRecordNotFound)

	m.expense.EXPECT().GetExpenseByIDForUpdate(uint(10)).Return(expense.Expense{}, gorm.ErrRecordNotFound)

	result := svc.BatchReview(nil, expense.BatchReviewDTO{ExpenseIDs: []uint{9, 10}}, "approved", 3)
	assert.Equal(t, []uint{9}, result.Succeeded)
	assert.Contains(t, result.Failed, uint(10))
}
