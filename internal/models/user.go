package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"
	RoleAdmin   UserRole = "admin"
)

// ParseRole maps a CLI argument to a known role.
func ParseRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return UserRole(s), true
	}
	return "", false
}

type User struct {
	ID           string   `json:"id" gorm:"primaryKey;size:255"`
	Name         string   `json:"name" gorm:"not null;size:100"`
	Email        string   `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Role         UserRole `json:"role" gorm:"not null;size:20;index"`
	PasswordHash string   `json:"-" gorm:"not null;size:255"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
