package dto

type FeedbackRequest struct {
	SessionId string  `json:"session_id" validate:"required"`
	Rating    string  `json:"rating" validate:"required"`
	Comments  *string `json:"comments"`
}
