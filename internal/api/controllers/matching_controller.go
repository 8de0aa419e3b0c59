package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homiehub/internal/models/request_models"
	"homiehub/internal/services"
	"homiehub/pkg/utils"
)

type MatchingController struct {
	matchingService services.MatchingServiceInterface
}

func NewMatchingController(matchingService services.MatchingServiceInterface) *MatchingController {
	return &MatchingController{
		matchingService: matchingService,
	}
}

func (m *MatchingController) GetMatches(c *gin.Context) {
	var req request_models.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	matches, err := m.matchingService.FindBestMatch(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, matches, "Matches fetched successfully")
}
