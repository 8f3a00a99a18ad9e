package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id         uuid.UUID
	SessionKey string
	UserId     uuid.UUID
	Title      string
	ExamKey    []ExamKeyItem // nil until a quiz has been started
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}

type ChatMessage struct {
	Id            uuid.UUID
	Chat          string
	Role          string
	ChatSessionId uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}

// ExamKeyItem is one entry of the server-only quiz answer key.
type ExamKeyItem struct {
	Id            int    `json:"id"`
	CorrectAnswer string `json:"correct_answer"`
}
