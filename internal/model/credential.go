package model

import "time"

// Credential stores a login identity. Owned exclusively by the auth service.
// UserKey is generated upstream by user-management so the credential and
// employee stores can be joined by user_key without a round trip.
type Credential struct {
	UserKey      string    `gorm:"primaryKey;type:varchar(36)" json:"user_key"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Username     string    `gorm:"not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Credential) TableName() string { return "credentials" }
