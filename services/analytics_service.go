package services

import (
	"context"

	"github.com/jozanardo/Daily-Diet-API/models"

	"gorm.io/gorm"
)

type AnalyticsService struct{ db *gorm.DB }

func NewAnalyticsService(db *gorm.DB) *AnalyticsService { return &AnalyticsService{db: db} }

type MealMetrics struct {
	RegisteredMeals    int `json:"registeredMeals"`
	MealsWithinTheDiet int `json:"mealsWithinTheDiet"`
	MealsOffTheDiet    int `json:"mealsOffTheDiet"`
	// BestSequenceWithinDiet is the meal count of the busiest calendar day,
	// over all meals of the session, on-diet or not. The field name is
	// historical; it never measured consecutive on-diet days.
	BestDayWithinDiet      string `json:"bestDayWithinDiet"`
	BestSequenceWithinDiet int    `json:"bestSequenceWithinDiet"`
}

// MealMetrics reduces a session's whole meal history into a summary.
// Days are keyed by the date portion of created_at in server local time;
// ties on the busiest day go to the first date encountered in insertion
// order, which is why the query orders by created_at.
func (s *AnalyticsService) MealMetrics(ctx context.Context, sessionID string) (*MealMetrics, error) {
	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}

	out := &MealMetrics{RegisteredMeals: len(meals)}

	perDay := map[string]int{}
	var days []string
	for _, m := range meals {
		if m.IsOnTheDiet {
			out.MealsWithinTheDiet++
		}
		day := m.CreatedAt.Format("2006-01-02")
		if _, seen := perDay[day]; !seen {
			days = append(days, day)
		}
		perDay[day]++
	}
	out.MealsOffTheDiet = out.RegisteredMeals - out.MealsWithinTheDiet

	for _, day := range days {
		if perDay[day] > out.BestSequenceWithinDiet {
			out.BestSequenceWithinDiet = perDay[day]
			out.BestDayWithinDiet = day
		}
	}

	return out, nil
}
