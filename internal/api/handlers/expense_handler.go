package handlers

import (
	"net/http"

	"github.com/dormhub/dormhub-go/internal/application"
	"github.com/dormhub/dormhub-go/internal/domain/expense"
	"github.com/dormhub/dormhub-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct {
	svc *application.ExpenseService
}

func NewExpenseHandler(svc *application.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{svc: svc}
}

// ListByDorm godoc
// @Summary List a dorm's expenses
// @Tags expenses
// @Produce json
// @Param id path int true "Dorm ID"
// @Success 200 {object} response.SuccessResponse
// @Router /dorms/{id}/expenses [get]
func (h *ExpenseHandler) ListByDorm(c *gin.Context) {
	dormID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	expenses, err := h.svc.ListByDorm(dormID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, expenses)
}

// GetExpense godoc
// @Summary Get one expense
// @Tags expenses
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	e, err := h.svc.GetExpense(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, e)
}

// CreateExpense godoc
// @Summary Submit an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param input body expense.ExpenseCreateDTO true "Expense info"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	var input expense.ExpenseCreateDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	e, err := h.svc.CreateExpense(c, input, uid)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, e)
}

// ReviewExpense godoc
// @Summary Approve or reject an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path int true "Expense ID"
// @Param input body expense.ReviewDTO true "Decision"
// @Success 200 {object} response.SuccessResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /expenses/{id}/review [put]
func (h *ExpenseHandler) ReviewExpense(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input expense.ReviewDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	e, err := h.svc.ReviewExpense(c, id, input, uid)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, e)
}

// DeleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Param id path int true "Expense ID"
// @Success 200 {object} response.MessageResponse
// @Failure 409 {object} response.ErrorResponse "Still referenced by the budget ledger"
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteExpense(c, id, uid); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "expense deleted"})
}

// BatchApprove godoc
// @Summary Approve many expenses at once
// @Tags expenses
// @Accept json
// @Produce json
// @Param input body expense.BatchReviewDTO true "Expense ids"
// @Success 200 {object} response.SuccessResponse
// @Router /expenses/batch/approve [put]
func (h *ExpenseHandler) BatchApprove(c *gin.Context) {
	h.batchReview(c, string(expense.ExpenseStatusApproved))
}

// BatchReject godoc
// @Summary Reject many expenses at once
// @Tags expenses
// @Accept json
// @Produce json
// @Param input body expense.BatchReviewDTO true "Expense ids"
// @Success 200 {object} response.SuccessResponse
// @Router /expenses/batch/reject [put]
func (h *ExpenseHandler) BatchReject(c *gin.Context) {
	h.batchReview(c, string(expense.ExpenseStatusRejected))
}

func (h *ExpenseHandler) batchReview(c *gin.Context, status string) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	var input expense.BatchReviewDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	result := h.svc.BatchReview(c, input, status, uid)
	response.OK(c, result)
}

// AttachReceipt godoc
// @Summary Upload a receipt file for an expense
// @Tags expenses
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Expense ID"
// @Param file formData file true "Receipt file"
// @Success 200 {object} response.SuccessResponse
// @Router /expenses/{id}/receipt [post]
func (h *ExpenseHandler) AttachReceipt(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "cannot read file"})
		return
	}
	defer file.Close()

	e, err := h.svc.AttachReceipt(c.Request.Context(), id, uid,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file, fileHeader.Size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, e)
}

// ReceiptURL godoc
// @Summary Get a short-lived receipt download link
// @Tags expenses
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /expenses/{id}/receipt [get]
func (h *ExpenseHandler) ReceiptURL(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	url, err := h.svc.ReceiptURL(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"url": url})
}

// ListCategories godoc
// @Summary List expense categories
// @Tags expenses
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /expense-categories [get]
func (h *ExpenseHandler) ListCategories(c *gin.Context) {
	categories, err := h.svc.ListCategories()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, categories)
}
