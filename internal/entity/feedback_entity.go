package entity

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	Id         uuid.UUID
	SessionKey string
	Rating     string
	Comments   *string
	CreatedAt  time.Time
}
