package handlers

import (
	"net/http"

	"github.com/dormhub/dormhub-go/internal/application"
	"github.com/dormhub/dormhub-go/internal/domain/user"
	"github.com/dormhub/dormhub-go/pkg/response"
	"github.com/dormhub/dormhub-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register godoc
// @Summary User registration
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.RegisterDTO true "User registration info"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Username already taken"
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.RegisterDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	u, err := h.svc.Register(input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, u)
}

// Login godoc
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginDTO true "Credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 403 {object} response.ErrorResponse "Invalid credentials"
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	token, u, err := h.svc.Login(input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie("token", token, 24*3600, "/", "", false, true)
	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UID:      u.UID,
		Username: u.Username,
		IsAdmin:  u.Role != string(user.UserRoleUser),
	})
}

// Logout godoc
// @Summary Clear the auth cookie
// @Tags auth
// @Success 200 {object} response.MessageResponse
// @Router /logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "logged out"})
}

// UpdateMe godoc
// @Summary Update the current user's profile
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.UpdateProfileDTO true "Fields to update"
// @Success 200 {object} response.SuccessResponse
// @Router /me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input user.UpdateProfileDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	u, err := h.svc.UpdateProfile(uid, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, u)
}

// Me godoc
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /me [get]
func (h *UserHandler) Me(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	u, err := h.svc.GetUser(uid)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, u)
}
