package controllers

import (
	"net/http"

	"HostelHub/events"
	"HostelHub/models"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviews ReviewStore
	events  events.Publisher
}

func NewReviewController(reviews ReviewStore, pub events.Publisher) *ReviewController {
	return &ReviewController{reviews: reviews, events: pub}
}

// AddReview godoc
// @Summary Review a meal
// @Tags Public - Reviews
// @Accept json
// @Produce json
// @Param review body models.Review true "Review"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /reviews [post]
func (r *ReviewController) AddReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		abortBadBody(c, err)
		return
	}

	res, err := r.reviews.Create(c.Request.Context(), &review)
	if err != nil {
		abortStore(c, "Failed to review meal", err)
		return
	}

	publish(c, r.events, events.ReviewCreated, review)
	c.JSON(http.StatusOK, models.NewInsertResult(res))
}

// GetReviews godoc
// @Summary List reviews
// @Tags Public - Reviews
// @Produce json
// @Success 200 {array} models.Review
// @Failure 500 {object} models.ErrorResponse
// @Router /reviews [get]
func (r *ReviewController) GetReviews(c *gin.Context) {
	reviews, err := r.reviews.List(c.Request.Context())
	if err != nil {
		abortStore(c, "Failed to fetch reviews", err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetReviewsByEmail godoc
// @Summary List a user's reviews
// @Tags Public - Reviews
// @Produce json
// @Param email path string true "Reviewer email"
// @Success 200 {array} models.Review
// @Failure 500 {object} models.ErrorResponse
// @Router /reviews/{email} [get]
func (r *ReviewController) GetReviewsByEmail(c *gin.Context) {
	reviews, err := r.reviews.ListByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		abortStore(c, "Failed to fetch reviews", err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// DeleteReview godoc
// @Summary Delete a review
// @Tags Public - Reviews
// @Produce json
// @Param id path string true "Review ObjectID"
// @Success 200 {object} models.DeleteResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /reviews/{id} [delete]
func (r *ReviewController) DeleteReview(c *gin.Context) {
	res, err := r.reviews.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortStore(c, "Failed to delete review", err)
		return
	}
	c.JSON(http.StatusOK, models.NewDeleteResult(res))
}
