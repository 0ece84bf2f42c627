package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yoones-dev/portfolio-api/internal/apperr"
	"github.com/yoones-dev/portfolio-api/internal/models"
)

const bcryptCost = 12

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type RegisterInput struct {
	Username string
	Email    string
	Mobile   string
	Password string
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	var existing models.User

	err := s.db.WithContext(ctx).
		Where("mobile = ? OR email = ? OR username = ?", in.Mobile, in.Email, in.Username).
		First(&existing).Error

	if err == nil {
		return nil, apperr.New(apperr.Conflict, "user with this email or mobile or username already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     in.Username,
		Email:        in.Email,
		Mobile:       in.Mobile,
		PasswordHash: string(passwordHash),
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.New(apperr.Conflict, "user with this email or mobile or username already exists")
		}
		return nil, err
	}

	return &user, nil
}

// Authenticate checks mobile/password credentials and returns the
// matching user.
func (s *UserService) Authenticate(ctx context.Context, mobile, password string) (*models.User, error) {
	var user models.User

	err := s.db.WithContext(ctx).Where("mobile = ?", mobile).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "user with this mobile not found")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.New(apperr.Unauthenticated, "password or mobile is incorrect")
	}

	return &user, nil
}
