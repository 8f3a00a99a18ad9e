package dto

import "time"

type ChatRequest struct {
	UserId    string `json:"user_id" validate:"required,uuid4"`
	SessionId string `json:"session_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type ChatHistoryMessage struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
