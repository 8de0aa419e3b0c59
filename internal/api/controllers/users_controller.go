package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homiehub/internal/models/request_models"
	"homiehub/internal/services"
	"homiehub/pkg/utils"
)

type UsersController struct {
	userService services.UserServiceInterface
}

func NewUsersController(userService services.UserServiceInterface) *UsersController {
	return &UsersController{
		userService: userService,
	}
}

func (u *UsersController) CreateUser(c *gin.Context) {
	var req request_models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := u.userService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, created, "User created successfully")
}

func (u *UsersController) GetUserByID(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	user, err := u.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User fetched successfully")
}
