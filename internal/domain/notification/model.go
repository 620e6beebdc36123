package notification

import "time"

type NotificationType string

const (
	TypeInvite     NotificationType = "invite"
	TypeMembership NotificationType = "membership"
	TypeDismissal  NotificationType = "dismissal"
	TypeExpense    NotificationType = "expense"
)

type Notification struct {
	NotificationID uint      `gorm:"primaryKey;column:notification_id" json:"notification_id"`
	Title          string    `gorm:"size:100;not null" json:"title"`
	Content        string    `gorm:"size:500" json:"content"`
	Type           string    `gorm:"size:20;not null" json:"type"`
	UID            uint      `gorm:"column:u_id;not null;index" json:"uid"`
	DormID         *uint     `gorm:"column:dorm_id" json:"dorm_id"`
	SenderID       *uint     `gorm:"column:sender_id" json:"sender_id"`
	IsRead         bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt      time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}
