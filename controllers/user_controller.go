package controllers

import (
	"errors"
	"net/http"

	"HostelHub/middlewares"
	"HostelHub/models"
	"HostelHub/repository"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users UserStore
}

func NewUserController(users UserStore) *UserController {
	return &UserController{users: users}
}

// CreateUser godoc
// @Summary Register a user
// @Description Store the user on first login. A repeated email is answered with insertedId null, not an error. The role is always "user".
// @Tags Public - Users
// @Accept json
// @Produce json
// @Param user body models.User true "User profile"
// @Success 200 {object} models.InsertResult
// @Success 200 {object} models.UserExistsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /users [post]
func (u *UserController) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		abortBadBody(c, err)
		return
	}

	res, err := u.users.Create(c.Request.Context(), user)
	if errors.Is(err, repository.ErrAlreadyExists) {
		c.JSON(http.StatusOK, models.UserExistsResponse{Message: "user already exist", InsertedID: nil})
		return
	}
	if err != nil {
		abortStore(c, "Failed to requested users data", err)
		return
	}

	c.JSON(http.StatusOK, models.NewInsertResult(res))
}

// GetUsers godoc
// @Summary List users
// @Tags Admin - Users
// @Produce json
// @Success 200 {array} models.User
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /users [get]
// @Security BearerAuth
func (u *UserController) GetUsers(c *gin.Context) {
	users, err := u.users.List(c.Request.Context())
	if err != nil {
		abortStore(c, "Failed to fetch users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetAdminStatus godoc
// @Summary Check own admin status
// @Description Only the owner of the email may ask.
// @Tags Users
// @Produce json
// @Param email path string true "Email of the authenticated user"
// @Success 200 {object} models.AdminStatusResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /users/admin/{email} [get]
// @Security BearerAuth
func (u *UserController) GetAdminStatus(c *gin.Context) {
	email := middlewares.AuthenticatedEmail(c)

	user, err := u.users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		abortStore(c, "Failed to fetch user", err)
		return
	}

	c.JSON(http.StatusOK, models.AdminStatusResponse{Admin: user.IsAdmin()})
}

// PromoteUser godoc
// @Summary Promote a user to admin
// @Description Only an existing admin can promote other users
// @Tags Admin - Users
// @Produce json
// @Param id path string true "User ObjectID"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /users/admin/{id} [patch]
// @Security BearerAuth
func (u *UserController) PromoteUser(c *gin.Context) {
	res, err := u.users.PromoteToAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortStore(c, "Failed to patch user", err)
		return
	}
	c.JSON(http.StatusOK, models.NewUpdateResult(res))
}
