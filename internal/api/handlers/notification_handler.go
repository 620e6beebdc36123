package handlers

import (
	"log"
	"net/http"

	"github.com/dormhub/dormhub-go/internal/application"
	"github.com/dormhub/dormhub-go/pkg/response"
	"github.com/dormhub/dormhub-go/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NotificationHandler struct {
	svc *application.NotificationService
	hub *application.Hub
}

func NewNotificationHandler(svc *application.NotificationService, hub *application.Hub) *NotificationHandler {
	return &NotificationHandler{svc: svc, hub: hub}
}

// List godoc
// @Summary List the caller's notifications
// @Tags notifications
// @Produce json
// @Param unread query bool false "Only unread"
// @Success 200 {object} response.SuccessResponse
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	unreadOnly := c.Query("unread") == "true"
	notifications, err := h.svc.ListByUser(uid, unreadOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, notifications)
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Param id path int true "Notification ID"
// @Success 200 {object} response.MessageResponse
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.MarkRead(id, uid); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "read"})
}

// Stream upgrades to a websocket and pushes notifications as they arrive.
// The read loop only exists to detect the peer closing.
func (h *NotificationHandler) Stream(c *gin.Context) {
	uid, ok := actorID(c)
	if !ok {
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed"})
		return
	}

	h.hub.Register(uid, conn)
	if name, nameErr := utils.GetUserNameFromContext(c); nameErr == nil {
		log.Printf("[Notify] websocket connected: %s", name)
	}
	defer func() {
		h.hub.Unregister(uid, conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
