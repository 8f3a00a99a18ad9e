package mapper

import (
	"study-buddy-be/internal/entity"
	"study-buddy-be/internal/model"
)

type FeedbackMapper struct{}

func NewFeedbackMapper() *FeedbackMapper {
	return &FeedbackMapper{}
}

func (m *FeedbackMapper) ToEntity(f *model.Feedback) *entity.Feedback {
	if f == nil {
		return nil
	}
	return &entity.Feedback{
		Id:         f.Id,
		SessionKey: f.SessionKey,
		Rating:     f.Rating,
		Comments:   f.Comments,
		CreatedAt:  f.CreatedAt,
	}
}

func (m *FeedbackMapper) ToModel(f *entity.Feedback) *model.Feedback {
	if f == nil {
		return nil
	}
	return &model.Feedback{
		Id:         f.Id,
		SessionKey: f.SessionKey,
		Rating:     f.Rating,
		Comments:   f.Comments,
		CreatedAt:  f.CreatedAt,
	}
}
