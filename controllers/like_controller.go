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

type LikeController struct {
	likes  LikeStore
	events events.Publisher
}

func NewLikeController(likes LikeStore, pub events.Publisher) *LikeController {
	return &LikeController{likes: likes, events: pub}
}

// AddLike godoc
// @Summary Like a meal
// @Description A user can like a meal once.
// @Tags Public - Likes
// @Accept json
// @Produce json
// @Param like body models.Like true "Like"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /likes [post]
func (l *LikeController) AddLike(c *gin.Context) {
	var like models.Like
	if err := c.ShouldBindJSON(&like); err != nil {
		abortBadBody(c, err)
		return
	}

	res, err := l.likes.Create(c.Request.Context(), &like)
	if errors.Is(err, repository.ErrAlreadyExists) {
		middlewares.AbortWithError(c, models.KindAlreadyExists, "You have already liked this meal", err)
		return
	}
	if err != nil {
		abortStore(c, "Failed to like meal", err)
		return
	}

	publish(c, l.events, events.LikeCreated, like)
	c.JSON(http.StatusOK, models.NewInsertResult(res))
}

// GetLikes godoc
// @Summary List likes
// @Tags Public - Likes
// @Produce json
// @Success 200 {array} models.Like
// @Failure 500 {object} models.ErrorResponse
// @Router /likes [get]
func (l *LikeController) GetLikes(c *gin.Context) {
	likes, err := l.likes.List(c.Request.Context())
	if err != nil {
		abortStore(c, "Failed to fetch likes", err)
		return
	}
	c.JSON(http.StatusOK, likes)
}
