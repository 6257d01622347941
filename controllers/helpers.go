package controllers

import (
	"context"
	"errors"
	"log/slog"

	"HostelHub/events"
	"HostelHub/middlewares"
	"HostelHub/models"
	"HostelHub/repository"

	"github.com/gin-gonic/gin"
)

// abortStore reports a failed store call. Malformed ids are the caller's
// fault; everything else is a store failure with a fixed message.
func abortStore(c *gin.Context, message string, err error) {
	if errors.Is(err, repository.ErrInvalidID) {
		middlewares.AbortWithError(c, models.KindInvalidInput, "Invalid id", err)
		return
	}
	middlewares.AbortWithError(c, models.KindStoreFailure, message, err)
}

func abortBadBody(c *gin.Context, err error) {
	middlewares.AbortWithError(c, models.KindInvalidInput, "Invalid request body", err)
}

// publish never fails the request; a lost event is only logged.
func publish(c *gin.Context, pub events.Publisher, eventType string, data interface{}) {
	if err := pub.Publish(context.WithoutCancel(c.Request.Context()), eventType, data); err != nil {
		slog.Warn("event not published",
			"type", eventType,
			"error", err,
			"request_id", c.GetString(middlewares.RequestIDKey),
		)
	}
}
