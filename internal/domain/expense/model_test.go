package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewTarget(t *testing.T) {
	cases := []struct {
		from, to ExpenseStatus
		want     bool
	}{
		{ExpenseStatusPending, ExpenseStatusApproved, true},
		{ExpenseStatusPending, ExpenseStatusRejected, true},
		{ExpenseStatusApproved, ExpenseStatusRejected, true},
		{ExpenseStatusApproved, ExpenseStatusApproved, false},
		{ExpenseStatusRejected, ExpenseStatusApproved, false},
		{ExpenseStatusRejected, ExpenseStatusRejected, false},
		{ExpenseStatusDraft, ExpenseStatusApproved, false},
		{ExpenseStatusPending, ExpenseStatusPaid, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ReviewTarget(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}
