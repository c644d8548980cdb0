package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleReader UserRole = "reader"
	RoleWriter UserRole = "writer"
	RoleEditor UserRole = "editor"
)

type User struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Name      string         `json:"name" gorm:"not null"`
	Email     string         `json:"email" gorm:"uniqueIndex:idx_users_email,where:deleted_at IS NULL;not null"`
	Password  string         `json:"-" gorm:"not null"`
	Role      UserRole       `json:"role" gorm:"default:'reader'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// NormalizeRole maps a raw role string to one of the two roles a user may
// hold through the API. Legacy names from the old backend ("pembaca",
// "penulis") are still accepted. Requesting editor is rejected outright,
// never silently downgraded.
func NormalizeRole(raw string) (UserRole, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))

	switch normalized {
	case "", "reader", "pembaca":
		return RoleReader, nil
	case "writer", "penulis":
		return RoleWriter, nil
	case "editor":
		return "", ErrorForbidden{Message: "editor role cannot be assigned through this operation"}
	default:
		return "", ErrorValidation{Message: `invalid role, use "reader" or "writer"`}
	}
}
