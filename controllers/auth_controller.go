package controllers

import (
	"net/http"
	"time"

	"HostelHub/models"
	"HostelHub/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	secret []byte
	ttl    time.Duration
}

func NewAuthController(secret string, ttl time.Duration) *AuthController {
	return &AuthController{secret: []byte(secret), ttl: ttl}
}

// IssueToken godoc
// @Summary Issue an access token
// @Description Sign the posted payload (usually {"email": ...}) into a bearer token valid for 365 days.
// @Tags Public - Auth
// @Accept json
// @Produce json
// @Param payload body object true "Claims to sign, e.g. {\"email\": \"student@hostel.edu\"}"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /jwt [post]
func (a *AuthController) IssueToken(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortBadBody(c, err)
		return
	}

	token, err := utils.GenerateJWT(payload, a.secret, a.ttl)
	if err != nil {
		abortStore(c, "Failed to generate token", err)
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}
