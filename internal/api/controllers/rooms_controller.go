package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homiehub/internal/models/request_models"
	"homiehub/internal/services"
	"homiehub/pkg/utils"
)

type RoomsController struct {
	roomService services.RoomServiceInterface
}

func NewRoomsController(roomService services.RoomServiceInterface) *RoomsController {
	return &RoomsController{
		roomService: roomService,
	}
}

func (r *RoomsController) CreateRoom(c *gin.Context) {
	var req request_models.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := r.roomService.CreateRoom(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, created, "Room created successfully")
}

func (r *RoomsController) GetRoomByID(c *gin.Context) {
	roomID := c.Param("id")
	if roomID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Room ID is required")
		return
	}

	room, err := r.roomService.GetRoomByID(c.Request.Context(), roomID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, room, "Room fetched successfully")
}
