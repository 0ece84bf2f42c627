package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/yoones-dev/portfolio-api/internal/models"
)

type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

type CreateMessageInput struct {
	Username string
	Email    string
	Mobile   string
	Message  string
}

func (s *MessageService) Create(ctx context.Context, in CreateMessageInput) (*models.Message, error) {
	message := models.Message{
		Username: in.Username,
		Email:    in.Email,
		Mobile:   in.Mobile,
		Message:  in.Message,
	}

	if err := s.db.WithContext(ctx).Create(&message).Error; err != nil {
		return nil, err
	}

	return &message, nil
}
