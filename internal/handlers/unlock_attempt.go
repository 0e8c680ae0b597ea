package handlers

import (
	"fmt"
	"strconv"

	"inventory-backend/internal/models"
	"inventory-backend/internal/services"
	"inventory-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type UnlockAttemptHandler struct {
	unlockAttemptService *services.UnlockAttemptService
}

func NewUnlockAttemptHandler(unlockAttemptService *services.UnlockAttemptService) *UnlockAttemptHandler {
	return &UnlockAttemptHandler{unlockAttemptService: unlockAttemptService}
}

func (h *UnlockAttemptHandler) GetUnlockAttempts(c *gin.Context) {
	attempts, err := h.unlockAttemptService.GetUnlockAttempts(c.Request.Context())
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, attempts)
}

func (h *UnlockAttemptHandler) GetUnlockAttemptsByCabinet(c *gin.Context) {
	attempts, err := h.unlockAttemptService.GetUnlockAttemptsByCabinet(c.Request.Context(), c.Param("cabinet_id"))
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, attempts)
}

func (h *UnlockAttemptHandler) GetUnlockAttemptsByUser(c *gin.Context) {
	attempts, err := h.unlockAttemptService.GetUnlockAttemptsByUser(c.Request.Context(), c.Param("uid"))
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, attempts)
}

func (h *UnlockAttemptHandler) GetUnlockAttemptsByCabinetAndUser(c *gin.Context) {
	attempts, err := h.unlockAttemptService.GetUnlockAttemptsByCabinetAndUser(
		c.Request.Context(), c.Param("cabinet_id"), c.Param("uid"))
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, attempts)
}

func (h *UnlockAttemptHandler) CreateUnlockAttempt(c *gin.Context) {
	var req models.UnlockAttemptCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	attempt, err := h.unlockAttemptService.CreateUnlockAttempt(c.Request.Context(), &req)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "Unlock attempt recorded", attempt)
}

func (h *UnlockAttemptHandler) PurgeUnlockAttempts(c *gin.Context) {
	days, err := strconv.Atoi(c.Param("n"))
	if err != nil || days < 0 {
		utils.BadRequest(c, "Invalid number of days")
		return
	}

	deleted, err := h.unlockAttemptService.PurgeUnlockAttempts(c.Request.Context(), days)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c,
		fmt.Sprintf("Unlock attempts older than %d days deleted", days),
		gin.H{"days": days, "deleted": deleted})
}
