package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"time"
)

type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt int64     `gorm:"autoCreateTime"`
	UpdatedAt int64     `gorm:"autoUpdateTime"`
}

// PrepareCreate assigns the id and both timestamps of a new record.
func (b *BaseModel) PrepareCreate() {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now().Unix()
	b.CreatedAt = now
	b.UpdatedAt = now
}

func (b *BaseModel) PrepareUpdate() {
	b.UpdatedAt = time.Now().Unix()
}

// Hooks to manage int64 timestamps
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	b.PrepareCreate()
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.PrepareUpdate()
	return nil
}
