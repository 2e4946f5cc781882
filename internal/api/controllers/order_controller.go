package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Abidstic/Manush-Tech/internal/models/request_models"
	"github.com/Abidstic/Manush-Tech/internal/services"
	"github.com/Abidstic/Manush-Tech/pkg/middleware"
	"github.com/Abidstic/Manush-Tech/pkg/utils"
)

const dateLayout = "2006-01-02"

type OrderController struct {
	orderService services.OrderServiceInterface
}

func NewOrderController(orderService services.OrderServiceInterface) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

// UpdateChoice godoc
// @Summary Save a meal choice for one day
// @Description Idempotent upsert of a user's meal choice on a calendar date
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body request_models.UpdateChoiceRequest true "Meal choice payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /order/update-choice [post]
func (oc *OrderController) UpdateChoice(c *gin.Context) {
	var req request_models.UpdateChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	orderDate, err := time.Parse(dateLayout, req.OrderDate)
	if err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "orderDate must be an ISO-8601 date")
		return
	}

	order, err := oc.orderService.UpsertChoice(c.Request.Context(), req.UserID, req.ScheduleID, orderDate)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, order, "Meal choice saved")
}

// ScheduleMonth godoc
// @Summary Schedule meals for an entire month
// @Description Creates one order per date whose weekday has a meal choice
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body request_models.ScheduleMonthRequest true "Month scheduling payload"
// @Success 200 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /order/schedule-month [post]
func (oc *OrderController) ScheduleMonth(c *gin.Context) {
	var req request_models.ScheduleMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	result, err := oc.orderService.ScheduleMonth(c.Request.Context(), req.UserID, req.Month, req.Year, req.MealChoices)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Monthly meals scheduled")
}

// GetUserOrders returns a user's order history, oldest first; self or admin only.
func (oc *OrderController) GetUserOrders(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	orders, err := oc.orderService.GetUserOrders(
		c.Request.Context(),
		middleware.CallerRole(c),
		middleware.CallerID(c),
		uint(userID),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, orders, "Fetched user orders")
}
