package controllers

import (
	"net/http"

	"github.com/jozanardo/Daily-Diet-API/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MealController struct {
	meals     *services.MealService
	analytics *services.AnalyticsService
}

func NewMealController(meals *services.MealService, analytics *services.AnalyticsService) *MealController {
	return &MealController{meals: meals, analytics: analytics}
}

// Shared by create and update; the two endpoints take the same shape.
// IsOnTheDiet is a pointer so that an explicit false still binds.
type mealBody struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description" binding:"required"`
	IsOnTheDiet    *bool  `json:"isOnTheDiet" binding:"required"`
	CreationUserID string `json:"creationUserId" binding:"required,uuid"`
}

func (b mealBody) toInput() services.MealInput {
	return services.MealInput{
		Name:           b.Name,
		Description:    b.Description,
		IsOnTheDiet:    *b.IsOnTheDiet,
		CreationUserID: b.CreationUserID,
	}
}

// Create is the one meal endpoint reachable without a session: a first
// request mints the session token and hands it back as a year-long cookie.
func (mc *MealController) Create(c *gin.Context) {
	var body mealBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incoming, _ := c.Cookie(services.SessionCookieName)
	sessionID, isNew := services.ResolveOrCreateSession(incoming)
	if isNew {
		c.SetCookie(services.SessionCookieName, sessionID, services.SessionCookieMaxAge, "/", "", false, false)
	}

	if _, err := mc.meals.Create(sessionID, body.toInput()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Meal registered!"})
}

func (mc *MealController) List(c *gin.Context) {
	meals, err := mc.meals.List(c.GetString("sessionID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (mc *MealController) Get(c *gin.Context) {
	meal, err := mc.meals.Get(c.GetString("sessionID"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// meal stays null when the id is unknown to this session.
	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

func (mc *MealController) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid uuid"})
		return
	}

	var body mealBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := mc.meals.Update(c.GetString("sessionID"), id, body.toInput())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal updated!"})
}

func (mc *MealController) Delete(c *gin.Context) {
	rows, err := mc.meals.Delete(c.GetString("sessionID"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted!"})
}

func (mc *MealController) Metrics(c *gin.Context) {
	metrics, err := mc.analytics.MealMetrics(c.Request.Context(), c.GetString("sessionID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, metrics)
}
