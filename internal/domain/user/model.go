package user

import "time"

type UserRole string

const (
	UserRoleSysAdmin UserRole = "sysadmin"
	UserRoleAdmin    UserRole = "admin"
	UserRoleUser     UserRole = "user"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusDisabled UserStatus = "disabled"
)

type User struct {
	UID       uint      `gorm:"primaryKey;column:u_id" json:"uid"`
	Username  string    `gorm:"size:50;not null;unique" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Email     *string   `gorm:"size:100" json:"email"`
	FullName  *string   `gorm:"size:50" json:"full_name"`
	Role      string    `gorm:"size:20;default:'user';not null" json:"role"`
	Status    string    `gorm:"size:20;default:'active';not null" json:"status"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}
