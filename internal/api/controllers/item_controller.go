package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Abidstic/Manush-Tech/internal/models/request_models"
	"github.com/Abidstic/Manush-Tech/internal/services"
	"github.com/Abidstic/Manush-Tech/pkg/utils"
)

type ItemController struct {
	itemService services.ItemServiceInterface
}

func NewItemController(itemService services.ItemServiceInterface) *ItemController {
	return &ItemController{
		itemService: itemService,
	}
}

func (ic *ItemController) ListItems(c *gin.Context) {
	items, err := ic.itemService.ListItems(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Fetched items")
}

func (ic *ItemController) ListItemsByCategory(c *gin.Context) {
	items, err := ic.itemService.ListItemsByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Fetched items by category")
}

func (ic *ItemController) CreateItem(c *gin.Context) {
	var req request_models.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	item, err := ic.itemService.CreateItem(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, item, "Item created successfully")
}

func (ic *ItemController) UpdateItem(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid item id")
		return
	}

	var req request_models.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	item, err := ic.itemService.UpdateItem(c.Request.Context(), uint(itemID), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Item updated successfully")
}

func (ic *ItemController) DeleteItem(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid item id")
		return
	}

	if err := ic.itemService.DeleteItem(c.Request.Context(), uint(itemID)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Item deleted successfully")
}
