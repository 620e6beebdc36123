package expense

type SplitInputDTO struct {
	UID    uint    `json:"uid" form:"uid" binding:"required"`
	Amount float64 `json:"amount" form:"amount" binding:"required,gt=0"`
}

type ExpenseCreateDTO struct {
	Title       string          `json:"title" form:"title" binding:"required"`
	Description string          `json:"description" form:"description"`
	Amount      float64         `json:"amount" form:"amount" binding:"required,gt=0"`
	CategoryID  *uint           `json:"category_id" form:"category_id"`
	DormID      *uint           `json:"dorm_id" form:"dorm_id"`
	Splits      []SplitInputDTO `json:"splits" form:"splits"`
}

type ReviewDTO struct {
	Status  string `json:"status" form:"status" binding:"required,oneof=approved rejected"`
	Comment string `json:"comment" form:"comment"`
}

type BatchReviewDTO struct {
	ExpenseIDs []uint `json:"expense_ids" form:"expense_ids" binding:"required,min=1"`
	Comment    string `json:"comment" form:"comment"`
}

// BatchResult reports the outcome per expense so one bad id does not sink
// the whole batch.
type BatchResult struct {
	Succeeded []uint          `json:"succeeded"`
	Failed    map[uint]string `json:"failed,omitempty"`
}
