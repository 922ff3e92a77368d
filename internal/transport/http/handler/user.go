package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"exercise-tracker/internal/app"
	"exercise-tracker/internal/model"
	"exercise-tracker/internal/transport/http/response"
)

type UserHandler struct {
	userService *app.UserService
	log         zerolog.Logger
}

func NewUserHandler(userService *app.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		logBindFailure(h.log, c, err)
		req = CreateUserRequest{}
	}

	user, err := h.userService.CreateUser(c.Request.Context(), string(req.Username))
	if err != nil {
		writeServiceError(c, h.log, "create user", err)
		return
	}

	response.OK(c, user)
}

// List responds with the users wrapped in one outer array.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.log, "list users", err)
		return
	}

	response.OK(c, [][]model.User{users})
}
