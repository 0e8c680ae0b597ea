package handlers

import (
	"fmt"

	"inventory-backend/internal/models"
	"inventory-backend/internal/services"
	"inventory-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type StorageUnitHandler struct {
	storageUnitService *services.StorageUnitService
}

func NewStorageUnitHandler(storageUnitService *services.StorageUnitService) *StorageUnitHandler {
	return &StorageUnitHandler{storageUnitService: storageUnitService}
}

func (h *StorageUnitHandler) GetStorageUnit(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	unit, err := h.storageUnitService.GetStorageUnit(c.Request.Context(), id)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, unit)
}

func (h *StorageUnitHandler) GetStorageUnitsByCabinet(c *gin.Context) {
	units, err := h.storageUnitService.GetStorageUnitsByCabinet(c.Request.Context(), c.Param("cabinet_id"))
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, units)
}

func (h *StorageUnitHandler) CreateStorageUnit(c *gin.Context) {
	var req models.StorageUnitCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	unit, err := h.storageUnitService.CreateStorageUnit(c.Request.Context(), &req)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "Storage unit created", unit)
}

func (h *StorageUnitHandler) DeleteStorageUnit(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.storageUnitService.DeleteStorageUnit(c.Request.Context(), id); err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, fmt.Sprintf("Storage unit %d deleted", id), gin.H{"id": id})
}
