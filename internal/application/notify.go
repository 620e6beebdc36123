package application

import (
	"log"
	"sync"

	"github.com/dormhub/dormhub-go/internal/domain/notification"
	"github.com/dormhub/dormhub-go/internal/repository"
	"github.com/gorilla/websocket"
)

// Hub fans freshly stored notifications out to connected websocket clients.
type Hub struct {
	mu    sync.RWMutex
	conns map[uint][]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[uint][]*websocket.Conn),
	}
}

func (h *Hub) Register(uid uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[uid] = append(h.conns[uid], conn)
}

func (h *Hub) Unregister(uid uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns := h.conns[uid]
	for i, c := range conns {
		if c == conn {
			h.conns[uid] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(h.conns[uid]) == 0 {
		delete(h.conns, uid)
	}
}

func (h *Hub) Push(n *notification.Notification) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, conn := range h.conns[n.UID] {
		if err := conn.WriteJSON(n); err != nil {
			log.Printf("[Notify] websocket push to user %d failed: %v", n.UID, err)
		}
	}
}

type NotificationService struct {
	Repos *repository.Repos
	Hub   *Hub
}

func NewNotificationService(repos *repository.Repos, hub *Hub) *NotificationService {
	return &NotificationService{
		Repos: repos,
		Hub:   hub,
	}
}

// Dispatch stores and pushes a notification. Best-effort: a failure is
// logged and never propagated to the caller.
func (s *NotificationService) Dispatch(n *notification.Notification) {
	if err := s.Repos.Notification.CreateNotification(n); err != nil {
		log.Printf("[Notify] failed to store notification for user %d: %v", n.UID, err)
		return
	}
	if s.Hub != nil {
		s.Hub.Push(n)
	}
}

func (s *NotificationService) ListByUser(uid uint, unreadOnly bool) ([]notification.Notification, error) {
	return s.Repos.Notification.ListByUser(uid, unreadOnly)
}

func (s *NotificationService) MarkRead(id, uid uint) error {
	return s.Repos.Notification.MarkRead(id, uid)
}
