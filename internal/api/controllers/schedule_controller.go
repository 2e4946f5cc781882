package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Abidstic/Manush-Tech/internal/services"
	"github.com/Abidstic/Manush-Tech/pkg/middleware"
	"github.com/Abidstic/Manush-Tech/pkg/utils"
)

type ScheduleController struct {
	scheduleService services.ScheduleServiceInterface
}

func NewScheduleController(scheduleService services.ScheduleServiceInterface) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// GetWeeklySchedule returns the weekly template, Sunday through Saturday.
func (sc *ScheduleController) GetWeeklySchedule(c *gin.Context) {
	schedule, err := sc.scheduleService.GetWeeklySchedule(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedule, "Fetched weekly meal schedule")
}

// GetAllUserChoices godoc
// @Summary All users' meal choices
// @Description Admin-only view of every order across all users, newest first
// @Tags Schedule
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /schedule/all [get]
func (sc *ScheduleController) GetAllUserChoices(c *gin.Context) {
	choices, err := sc.scheduleService.GetAllUserChoices(c.Request.Context(), middleware.CallerRole(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, choices, "Fetched meal choices for all users")
}

// GetUserChoices returns one user's choices; self or admin only.
func (sc *ScheduleController) GetUserChoices(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	choices, err := sc.scheduleService.GetUserChoices(
		c.Request.Context(),
		middleware.CallerRole(c),
		middleware.CallerID(c),
		uint(userID),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, choices, "Fetched meal choices for user")
}
