package dorm

import "time"

type DormStatus string

const (
	DormStatusActive      DormStatus = "active"
	DormStatusMaintenance DormStatus = "maintenance"
	DormStatusDismissing  DormStatus = "dismissing"
	DormStatusRemoved     DormStatus = "removed"
)

type DismissalStatus string

const (
	DismissalStatusPending   DismissalStatus = "pending"
	DismissalStatusCompleted DismissalStatus = "completed"
	DismissalStatusCancelled DismissalStatus = "cancelled"
)

// Dorm is a shared-housing unit. AdminID is a cached pointer derived from
// admin-role memberships; membership rows are the source of truth.
type Dorm struct {
	DormID           uint      `gorm:"primaryKey;column:dorm_id" json:"dorm_id"`
	DormCode         string    `gorm:"size:20;not null;unique" json:"dorm_code"`
	DormName         string    `gorm:"size:100;not null" json:"dorm_name"`
	Address          string    `gorm:"size:200" json:"address"`
	Status           string    `gorm:"size:20;default:'active';not null" json:"status"`
	Capacity         int       `gorm:"not null" json:"capacity"`
	CurrentOccupancy int       `gorm:"not null;default:0" json:"current_occupancy"`
	AdminID          *uint     `gorm:"column:admin_id" json:"admin_id"`
	CreatedAt        time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt        time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

// DismissalProcess tracks one attempt to disband a dorm. At most one
// pending process may exist per dorm.
type DismissalProcess struct {
	ProcessID   uint       `gorm:"primaryKey;column:process_id" json:"process_id"`
	DormID      uint       `gorm:"column:dorm_id;not null;index" json:"dorm_id"`
	Status      string     `gorm:"size:20;default:'pending';not null" json:"status"`
	InitiatorID uint       `gorm:"column:initiator_id;not null" json:"initiator_id"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt   time.Time  `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}
