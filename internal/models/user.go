package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the owner of all other records. The API token is generated once
// at registration and is the opaque credential the auth middleware resolves
// to a user.
type User struct {
	DefaultModel
	Name  string
	Email string `gorm:"uniqueIndex"`
	Token string `gorm:"uniqueIndex"`
}

// BeforeSave trims whitespace and verifies that the email address is set.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	if u.Email == "" {
		return ErrUserEmailRequired
	}

	return nil
}

// BeforeCreate generates the API token for the user.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	_ = u.DefaultModel.BeforeCreate(tx)

	if u.Token == "" {
		u.Token = uuid.NewString()
	}

	return nil
}
