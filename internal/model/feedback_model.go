package model

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionKey string    `gorm:"type:text;not null;index"`
	Rating     string    `gorm:"type:varchar(50);not null"`
	Comments   *string   `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
