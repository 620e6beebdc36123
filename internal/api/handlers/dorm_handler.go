package handlers

import (
	"net/http"
	"strconv"

	"github.com/dormhub/dormhub-go/internal/application"
	"github.com/dormhub/dormhub-go/internal/domain/dorm"
	"github.com/dormhub/dormhub-go/pkg/response"
	"github.com/dormhub/dormhub-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type DormHandler struct {
	svc        *application.DormService
	membership *application.MembershipService
}

func NewDormHandler(svc *application.DormService, membership *application.MembershipService) *DormHandler {
	return &DormHandler{svc: svc, membership: membership}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

func actorID(c *gin.Context) (uint, bool) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return 0, false
	}
	return uid, true
}

// ListDorms godoc
// @Summary List dorms
// @Tags dorms
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /dorms [get]
func (h *DormHandler) ListDorms(c *gin.Context) {
	dorms, err := h.svc.ListDorms()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dorms)
}

// GetDorm godoc
// @Summary Get one dorm
// @Tags dorms
// @Produce json
// @Param id path int true "Dorm ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /dorms/{id} [get]
func (h *DormHandler) GetDorm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	d, err := h.svc.GetDorm(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, d)
}

// CreateDorm godoc
// @Summary Create a dorm
// @Tags dorms
// @Accept json
// @Produce json
// @Param input body dorm.DormCreateDTO true "Dorm info"
// @Success 201 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /dorms [post]
func (h *DormHandler) CreateDorm(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	var input dorm.DormCreateDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	d, err := h.svc.CreateDorm(c, input, uid)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, d)
}

// UpdateDorm godoc
// @Summary Update dorm fields
// @Tags dorms
// @Accept json
// @Produce json
// @Param id path int true "Dorm ID"
// @Param input body dorm.DormUpdateDTO true "Fields to update"
// @Success 200 {object} response.SuccessResponse
// @Router /dorms/{id} [put]
func (h *DormHandler) UpdateDorm(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input dorm.DormUpdateDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	d, err := h.svc.UpdateDorm(c, id, input, uid)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, d)
}

// DeleteDorm godoc
// @Summary Delete a dorm and its expenses
// @Tags dorms
// @Param id path int true "Dorm ID"
// @Success 200 {object} response.MessageResponse
// @Router /dorms/{id} [delete]
func (h *DormHandler) DeleteDorm(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteDorm(c, id, uid); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "dorm deleted"})
}

// StartDismissal godoc
// @Summary Begin dissolving a dorm
// @Tags dorms
// @Param id path int true "Dorm ID"
// @Success 201 {object} response.SuccessResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /dorms/{id}/dismissal [post]
func (h *DormHandler) StartDismissal(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	p, err := h.svc.StartDismissal(c, id, uid)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, p)
}

// ConfirmDismissal godoc
// @Summary Complete a pending dismissal
// @Tags dorms
// @Param id path int true "Dorm ID"
// @Success 200 {object} response.MessageResponse
// @Router /dorms/{id}/dismissal/confirm [put]
func (h *DormHandler) ConfirmDismissal(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.ConfirmDismissal(c, id, uid); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "dorm dissolved"})
}

// CancelDismissal godoc
// @Summary Cancel a pending dismissal
// @Tags dorms
// @Param id path int true "Dorm ID"
// @Success 200 {object} response.MessageResponse
// @Router /dorms/{id}/dismissal/cancel [put]
func (h *DormHandler) CancelDismissal(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.CancelDismissal(c, id, uid); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "dismissal cancelled"})
}

// CheckConsistency godoc
// @Summary Verify occupancy and admin pointer caches
// @Tags dorms
// @Param id path int true "Dorm ID"
// @Success 200 {object} response.MessageResponse
// @Router /dorms/{id}/consistency [get]
func (h *DormHandler) CheckConsistency(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.membership.CheckDormConsistency(id); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "consistent"})
}
