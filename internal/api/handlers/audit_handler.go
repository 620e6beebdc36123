package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dormhub/dormhub-go/internal/application"
	"github.com/dormhub/dormhub-go/internal/repository"
	"github.com/dormhub/dormhub-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// List godoc
// @Summary Query the audit trail
// @Tags audit
// @Produce json
// @Param user_id query int false "Filter by actor"
// @Param resource_type query string false "Filter by resource type"
// @Param action query string false "Filter by action"
// @Param start query string false "RFC3339 lower bound"
// @Param end query string false "RFC3339 upper bound"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} response.SuccessResponse
// @Router /audit-logs [get]
func (h *AuditHandler) List(c *gin.Context) {
	var params repository.AuditQueryParams

	if v := c.Query("user_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid user_id"})
			return
		}
		uid := uint(id)
		params.UserID = &uid
	}
	if v := c.Query("resource_type"); v != "" {
		params.ResourceType = &v
	}
	if v := c.Query("action"); v != "" {
		params.Action = &v
	}
	if v := c.Query("start"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid start time"})
			return
		}
		params.StartTime = &ts
	}
	if v := c.Query("end"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid end time"})
			return
		}
		params.EndTime = &ts
	}
	params.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	params.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	logs, err := h.svc.ListLogs(params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, logs)
}
