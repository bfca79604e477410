// Package model contains the GORM models mapped to the relational store.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username            string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Email               string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash        string    `gorm:"type:varchar(255);not null"`
	WalletAddress       *string   `gorm:"type:varchar(128);uniqueIndex"`
	EncryptedPrivateKey *string   `gorm:"type:text"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
