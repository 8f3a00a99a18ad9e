package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Document struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Filename    string         `gorm:"type:varchar(255);not null"`
	StoragePath string         `gorm:"type:text;not null"`
	SizeBytes   int64          `gorm:"not null;default:0"`
	ChunkCount  int            `gorm:"not null;default:0"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;index"` // Uploader only; retrieval is not scoped to it
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Document) TableName() string {
	return "documents"
}
