package controllers

import (
	"net/http"

	"HostelHub/models"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	meals MealStore
}

func NewMealController(meals MealStore) *MealController {
	return &MealController{meals: meals}
}

// GetMeals godoc
// @Summary Get all meals
// @Tags Public - Meals
// @Produce json
// @Success 200 {array} models.Meal
// @Failure 500 {object} models.ErrorResponse
// @Router /meals [get]
func (m *MealController) GetMeals(c *gin.Context) {
	meals, err := m.meals.List(c.Request.Context())
	if err != nil {
		abortStore(c, "Failed to fetch meals", err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

// AddMeal godoc
// @Summary Add a new meal
// @Tags Public - Meals
// @Accept json
// @Produce json
// @Param meal body models.Meal true "Meal data"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /meals [post]
func (m *MealController) AddMeal(c *gin.Context) {
	var meal models.Meal
	if err := c.ShouldBindJSON(&meal); err != nil {
		abortBadBody(c, err)
		return
	}

	res, err := m.meals.Create(c.Request.Context(), meal)
	if err != nil {
		abortStore(c, "Failed to add meal", err)
		return
	}
	c.JSON(http.StatusOK, models.NewInsertResult(res))
}

// GetMeal godoc
// @Summary Get a meal
// @Description Returns null when no meal has the id.
// @Tags Public - Meals
// @Produce json
// @Param id path string true "Meal ObjectID"
// @Success 200 {object} models.Meal
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /meals/{id} [get]
func (m *MealController) GetMeal(c *gin.Context) {
	meal, err := m.meals.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortStore(c, "Failed to fetch meal", err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

// UpdateMeal godoc
// @Summary Replace a meal
// @Description Every field must be sent. Fields left out are removed from the stored meal.
// @Tags Public - Meals
// @Accept json
// @Produce json
// @Param id path string true "Meal ObjectID"
// @Param meal body models.Meal true "Complete meal"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /meals/{id} [patch]
func (m *MealController) UpdateMeal(c *gin.Context) {
	var meal models.Meal
	if err := c.ShouldBindJSON(&meal); err != nil {
		abortBadBody(c, err)
		return
	}

	res, err := m.meals.Replace(c.Request.Context(), c.Param("id"), meal)
	if err != nil {
		abortStore(c, "Failed to update meal", err)
		return
	}
	c.JSON(http.StatusOK, models.NewUpdateResult(res))
}

// DeleteMeal godoc
// @Summary Delete a meal
// @Tags Public - Meals
// @Produce json
// @Param id path string true "Meal ObjectID"
// @Success 200 {object} models.DeleteResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /meals/{id} [delete]
func (m *MealController) DeleteMeal(c *gin.Context) {
	res, err := m.meals.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortStore(c, "Failed to delete meal", err)
		return
	}
	c.JSON(http.StatusOK, models.NewDeleteResult(res))
}
