package models

import (
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Username     string    `gorm:"type:text;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	FullName     string    `gorm:"type:text" json:"full_name"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Disabled     bool      `gorm:"not null;default:false" json:"disabled"`
}

func (u *User) TableName() string {
	return "users"
}
