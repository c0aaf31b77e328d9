package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"herbverse/pkg/utils"
)

type Account struct {
	BaseModel
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         Role   `gorm:"type:varchar(16);not null;default:'user'"`

	// Password holds a plaintext waiting to be hashed on the next save.
	// It is never persisted.
	Password string `gorm:"-"`
}

// SetPassword marks the password as modified; the hash is computed on save.
func (a *Account) SetPassword(plain string) {
	a.Password = plain
}

// HashPendingPassword hashes a pending plaintext, if any. An untouched
// password keeps its stored hash.
func (a *Account) HashPendingPassword() error {
	if a.Password == "" {
		return nil
	}
	hash, err := utils.HashPassword(a.Password)
	if err != nil {
		return err
	}
	a.PasswordHash = hash
	a.Password = ""
	return nil
}

func (a *Account) MatchPassword(plain string) bool {
	return utils.ComparePasswords(a.PasswordHash, plain) == nil
}

func (a *Account) BeforeSave(tx *gorm.DB) error {
	return a.HashPendingPassword()
}

type Bookmark struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlantID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt int64     `gorm:"autoCreateTime:nano"`
}

func (Bookmark) TableName() string {
	return "account_bookmarks"
}

// Note is a free-text annotation; the composite key keeps one note per (account, plant).
type Note struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlantID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt int64     `gorm:"autoCreateTime:nano"`
	UpdatedAt int64     `gorm:"autoUpdateTime"`
}

func (Note) TableName() string {
	return "account_notes"
}
