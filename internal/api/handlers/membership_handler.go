package handlers

import (
	"net/http"

	"github.com/dormhub/dormhub-go/internal/application"
	"github.com/dormhub/dormhub-go/internal/domain/membership"
	"github.com/dormhub/dormhub-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type MembershipHandler struct {
	svc *application.MembershipService
}

func NewMembershipHandler(svc *application.MembershipService) *MembershipHandler {
	return &MembershipHandler{svc: svc}
}

// ListByDorm godoc
// @Summary List a dorm's memberships
// @Tags memberships
// @Produce json
// @Param id path int true "Dorm ID"
// @Success 200 {object} response.SuccessResponse
// @Router /dorms/{id}/members [get]
func (h *MembershipHandler) ListByDorm(c *gin.Context) {
	dormID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	memberships, err := h.svc.ListByDorm(dormID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, memberships)
}

// ListMine godoc
// @Summary List the caller's memberships
// @Tags memberships
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /memberships [get]
func (h *MembershipHandler) ListMine(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	memberships, err := h.svc.ListByUser(uid)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, memberships)
}

// AddMember godoc
// @Summary Add or invite a member
// @Tags memberships
// @Accept json
// @Produce json
// @Param input body membership.AddMemberDTO true "Member info"
// @Success 201 {object} response.SuccessResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /memberships [post]
func (h *MembershipHandler) AddMember(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	var input membership.AddMemberDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	m, err := h.svc.AddMember(c, input, uid)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, m)
}

// AcceptInvite godoc
// @Summary Redeem an invite code
// @Tags memberships
// @Accept json
// @Produce json
// @Param input body membership.AcceptInviteDTO true "Invite code"
// @Success 200 {object} response.SuccessResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /memberships/accept [post]
func (h *MembershipHandler) AcceptInvite(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	var input membership.AcceptInviteDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	m, err := h.svc.AcceptInvite(c, input.InviteCode, uid)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, m)
}

// UpdateStatus godoc
// @Summary Change a membership's status
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path int true "Membership ID"
// @Param input body membership.UpdateStatusDTO true "Target status"
// @Success 200 {object} response.SuccessResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /memberships/{id}/status [put]
func (h *MembershipHandler) UpdateStatus(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input membership.UpdateStatusDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	m, err := h.svc.UpdateMemberStatus(c, id, input, uid)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, m)
}

// UpdateRole godoc
// @Summary Change a membership's role
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path int true "Membership ID"
// @Param input body membership.UpdateRoleDTO true "Target role"
// @Success 200 {object} response.SuccessResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /memberships/{id}/role [put]
func (h *MembershipHandler) UpdateRole(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input membership.UpdateRoleDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	m, err := h.svc.UpdateMemberRole(c, id, input, uid)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, m)
}

// RemoveMember godoc
// @Summary Remove a member from a dorm
// @Tags memberships
// @Accept json
// @Param id path int true "Membership ID"
// @Param input body membership.RemoveMemberDTO false "Removal options"
// @Success 200 {object} response.MessageResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /memberships/{id} [delete]
func (h *MembershipHandler) RemoveMember(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input membership.RemoveMemberDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	if err := h.svc.RemoveMember(c, id, input, uid); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "member removed"})
}
