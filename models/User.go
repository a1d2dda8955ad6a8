package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// User is an admin-panel account. At most one user may hold the Admin role;
// the guard lives in the role-update handler, not in the schema.
type User struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	Email        string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null;column:password_hash" json:"-"`
	FirstName    string    `gorm:"type:varchar(100);column:first_name" json:"first_name"`
	LastName     string    `gorm:"type:varchar(100);column:last_name" json:"last_name"`
	Role         string    `gorm:"type:varchar(20);not null;default:'User'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
