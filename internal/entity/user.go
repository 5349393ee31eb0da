package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleCitizen      Role = "citizen"
	RoleAdmin        Role = "admin"
	RoleCentralAdmin Role = "central-admin"
)

// Valid reports whether r is one of the known account roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCitizen, RoleAdmin, RoleCentralAdmin:
		return true
	}
	return false
}

// User is an account record. Emails are stored lowercase so lookups are
// case-insensitive regardless of what the caller sends.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Mobile       string    `gorm:"size:20" json:"mobile"`
	Role         Role      `gorm:"size:20;not null;default:'citizen'" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
