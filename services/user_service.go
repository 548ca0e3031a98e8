package services

import (
	"github.com/jozanardo/Daily-Diet-API/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type RegisterInput struct {
	Handle   string
	Name     string
	Email    string
	Password string
}

// Register inserts the account as-is: no uniqueness check on email or
// handle, and the password is kept verbatim. Hardening either is an
// explicit non-goal of this service.
func (s *UserService) Register(in RegisterInput) (*models.User, error) {
	user := &models.User{
		ID:       uuid.NewString(),
		Handle:   in.Handle,
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
