package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Cards []CardModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// CardModel mirrors the 'user_cards' table. The composite unique index on
// (user_id, card_number) enforces the per-user card-number uniqueness
// invariant at the storage layer.
type CardModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_cards_user_id_card_number"`
	CardholderName string    `gorm:"type:varchar(255);not null"`
	CardNumber     string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_user_cards_user_id_card_number"`
	ExpirationDate string    `gorm:"type:varchar(16);not null"`
	CVV            string    `gorm:"type:varchar(8);not null"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CardModel) TableName() string {
	return "user_cards"
}
