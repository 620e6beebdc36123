package repository

import (
	"github.com/dormhub/dormhub-go/internal/domain/notification"
	"gorm.io/gorm"
)

type NotificationRepo interface {
	CreateNotification(n *notification.Notification) error
	ListByUser(uid uint, unreadOnly bool) ([]notification.Notification, error)
	MarkRead(id, uid uint) error
	WithTx(tx *gorm.DB) NotificationRepo
}

type DBNotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *DBNotificationRepo {
	return &DBNotificationRepo{
		db: db,
	}
}

func (r *DBNotificationRepo) CreateNotification(n *notification.Notification) error {
	return r.db.Create(n).Error
}

func (r *DBNotificationRepo) ListByUser(uid uint, unreadOnly bool) ([]notification.Notification, error) {
	var notifications []notification.Notification
	query := r.db.Where("u_id = ?", uid)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	err := query.Order("create_at DESC").Find(&notifications).Error
	return notifications, err
}

func (r *DBNotificationRepo) MarkRead(id, uid uint) error {
	return r.db.Model(&notification.Notification{}).
		Where("notification_id = ? AND u_id = ?", id, uid).
		Update("is_read", true).Error
}

func (r *DBNotificationRepo) WithTx(tx *gorm.DB) NotificationRepo {
	if tx == nil {
		return r
	}
	return &DBNotificationRepo{
		db: tx,
	}
}
