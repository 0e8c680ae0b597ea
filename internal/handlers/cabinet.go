package handlers

import (
	"fmt"

	"inventory-backend/internal/models"
	"inventory-backend/internal/services"
	"inventory-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type CabinetHandler struct {
	cabinetService *services.CabinetService
}

func NewCabinetHandler(cabinetService *services.CabinetService) *CabinetHandler {
	return &CabinetHandler{cabinetService: cabinetService}
}

func (h *CabinetHandler) GetCabinets(c *gin.Context) {
	cabinets, err := h.cabinetService.GetCabinets(c.Request.Context())
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, cabinets)
}

func (h *CabinetHandler) GetCabinet(c *gin.Context) {
	cabinet, err := h.cabinetService.GetCabinet(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, cabinet)
}

func (h *CabinetHandler) CreateCabinet(c *gin.Context) {
	var req models.CabinetCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	cabinet, err := h.cabinetService.CreateCabinet(c.Request.Context(), &req)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "Cabinet created", cabinet)
}

func (h *CabinetHandler) DeleteCabinet(c *gin.Context) {
	id := c.Param("id")

	if err := h.cabinetService.DeleteCabinet(c.Request.Context(), id); err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, fmt.Sprintf("Cabinet %s deleted", id), gin.H{"id": id})
}
