package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Home godoc
// @Summary Greeting
// @Tags Public - Health
// @Produce plain
// @Success 200 {string} string "Hello Hostel Management!"
// @Router / [get]
func Home(c *gin.Context) {
	c.String(http.StatusOK, "Hello Hostel Management!")
}

// Health pings the store so a load balancer can tell a dead database apart
// from a dead process.
// @Summary Check store connectivity
// @Tags Public - Health
// @Produce plain
// @Success 200 {string} string "OK"
// @Failure 500 {object} models.ErrorResponse
// @Router /health [get]
func Health(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			abortStore(c, "Database unreachable", err)
			return
		}
		c.String(http.StatusOK, "OK")
	}
}
