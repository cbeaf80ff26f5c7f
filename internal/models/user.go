package models

import "time"

// User roles
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User is a local account mirrored from the auth server
type User struct {
	UserID    uint64    `gorm:"primaryKey;autoIncrement" json:"userid"`
	AuthID    *string   `gorm:"uniqueIndex;size:64" json:"authid,omitempty"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Role      string    `gorm:"size:32;not null;default:member" json:"role"`
	Company   string    `gorm:"size:255" json:"company,omitempty"`
	Phone     string    `gorm:"size:64" json:"phone,omitempty"`
	Profile   JSON      `json:"profile,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"createdat"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
