// services/meal_service.go
package services

import (
	"errors"

	"github.com/jozanardo/Daily-Diet-API/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// Fields a client may set. SessionID and CreatedAt are never part of the
// input: the session comes from the cookie and the timestamp from insert.
type MealInput struct {
	Name           string
	Description    string
	IsOnTheDiet    bool
	CreationUserID string
}

func (s *MealService) Create(sessionID string, in MealInput) (*models.Meal, error) {
	meal := &models.Meal{
		ID:             uuid.NewString(),
		Name:           in.Name,
		Description:    in.Description,
		IsOnTheDiet:    in.IsOnTheDiet,
		CreationUserID: in.CreationUserID,
		SessionID:      sessionID,
	}
	if err := s.db.Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

// Update touches only the mutable columns of the row matching both id and
// session. A wrong id or another session's meal simply affects zero rows;
// the count is returned so callers can decide what to surface.
func (s *MealService) Update(sessionID, mealID string, in MealInput) (int64, error) {
	res := s.db.Model(&models.Meal{}).
		Where("id = ? AND session_id = ?", mealID, sessionID).
		Updates(map[string]interface{}{
			"name":             in.Name,
			"description":      in.Description,
			"is_on_the_diet":   in.IsOnTheDiet,
			"creation_user_id": in.CreationUserID,
		})
	return res.RowsAffected, res.Error
}

func (s *MealService) Delete(sessionID, mealID string) (int64, error) {
	res := s.db.
		Where("id = ? AND session_id = ?", mealID, sessionID).
		Delete(&models.Meal{})
	return res.RowsAffected, res.Error
}

func (s *MealService) Get(sessionID, mealID string) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Where("id = ? AND session_id = ?", mealID, sessionID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) List(sessionID string) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&meals).Error
	return meals, err
}
