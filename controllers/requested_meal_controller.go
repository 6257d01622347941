package controllers

import (
	"errors"
	"net/http"

	"HostelHub/events"
	"HostelHub/middlewares"
	"HostelHub/models"
	"HostelHub/repository"

	"github.com/gin-gonic/gin"
)

type RequestedMealController struct {
	requests RequestedMealStore
	events   events.Publisher
}

func NewRequestedMealController(requests RequestedMealStore, pub events.Publisher) *RequestedMealController {
	return &RequestedMealController{requests: requests, events: pub}
}

// RequestMeal godoc
// @Summary Request a meal
// @Description A user can request a meal once. New requests are pending.
// @Tags Public - Requested meals
// @Accept json
// @Produce json
// @Param request body models.RequestedMeal true "Meal request"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /requestedMeal [post]
func (r *RequestedMealController) RequestMeal(c *gin.Context) {
	var req models.RequestedMeal
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadBody(c, err)
		return
	}

	res, err := r.requests.Create(c.Request.Context(), &req)
	if errors.Is(err, repository.ErrAlreadyExists) {
		middlewares.AbortWithError(c, models.KindAlreadyExists, "You have already requested this meal", err)
		return
	}
	if err != nil {
		abortStore(c, "Failed to requested meal", err)
		return
	}

	publish(c, r.events, events.MealRequestCreated, req)
	c.JSON(http.StatusOK, models.NewInsertResult(res))
}

// GetRequestedMeals godoc
// @Summary List meal requests
// @Tags Public - Requested meals
// @Produce json
// @Success 200 {array} models.RequestedMeal
// @Failure 500 {object} models.ErrorResponse
// @Router /requestedMeal [get]
func (r *RequestedMealController) GetRequestedMeals(c *gin.Context) {
	requests, err := r.requests.List(c.Request.Context())
	if err != nil {
		abortStore(c, "Failed to fetch requested meals", err)
		return
	}
	c.JSON(http.StatusOK, requests)
}
