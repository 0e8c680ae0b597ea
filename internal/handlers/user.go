package handlers

import (
	"fmt"

	"inventory-backend/internal/models"
	"inventory-backend/internal/services"
	"inventory-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.GetUsers(c.Request.Context())
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("uid"))
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, user)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.UserCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "User created", user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	uid := c.Param("uid")

	if err := h.userService.DeleteUser(c.Request.Context(), uid); err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, fmt.Sprintf("User %s deleted", uid), gin.H{"uid": uid})
}
