package handlers

import (
	"fmt"

	"inventory-backend/internal/models"
	"inventory-backend/internal/services"
	"inventory-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) GetRootCategories(c *gin.Context) {
	categories, err := h.categoryService.GetRootCategories(c.Request.Context())
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, categories)
}

func (h *CategoryHandler) GetSubCategories(c *gin.Context) {
	parentID, ok := uintParam(c, "parent_id")
	if !ok {
		return
	}

	categories, err := h.categoryService.GetSubCategories(c.Request.Context(), parentID)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, categories)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, category)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CategoryCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "Category created", category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, fmt.Sprintf("Category %d deleted", id), gin.H{"id": id})
}
