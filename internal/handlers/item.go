package handlers

import (
	"fmt"

	"inventory-backend/internal/models"
	"inventory-backend/internal/services"
	"inventory-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	itemService *services.ItemService
}

func NewItemHandler(itemService *services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

func (h *ItemHandler) GetItems(c *gin.Context) {
	items, err := h.itemService.GetItems(c.Request.Context())
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, items)
}

func (h *ItemHandler) GetItemsByCategory(c *gin.Context) {
	categoryID, ok := uintParam(c, "category_id")
	if !ok {
		return
	}

	items, err := h.itemService.GetItemsByCategory(c.Request.Context(), categoryID)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, items)
}

func (h *ItemHandler) GetItem(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	item, err := h.itemService.GetItem(c.Request.Context(), id)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, item)
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req models.ItemCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), &req)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "Item created", item)
}

func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), id); err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, fmt.Sprintf("Item %d deleted", id), gin.H{"id": id})
}
