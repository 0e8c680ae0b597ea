package handlers

import (
	"fmt"
	"strconv"

	"inventory-backend/internal/models"
	"inventory-backend/internal/services"
	"inventory-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type OrderRequestHandler struct {
	orderRequestService *services.OrderRequestService
}

func NewOrderRequestHandler(orderRequestService *services.OrderRequestService) *OrderRequestHandler {
	return &OrderRequestHandler{orderRequestService: orderRequestService}
}

func (h *OrderRequestHandler) GetOrderRequests(c *gin.Context) {
	orderRequests, err := h.orderRequestService.GetOrderRequests(c.Request.Context())
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, orderRequests)
}

func (h *OrderRequestHandler) GetOrderRequestsByItem(c *gin.Context) {
	itemID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	orderRequests, err := h.orderRequestService.GetOrderRequestsByItem(c.Request.Context(), itemID)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, orderRequests)
}

func (h *OrderRequestHandler) GetOrderRequestsByUser(c *gin.Context) {
	orderRequests, err := h.orderRequestService.GetOrderRequestsByUser(c.Request.Context(), c.Param("uid"))
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, orderRequests)
}

func (h *OrderRequestHandler) GetOrderRequestsByState(c *gin.Context) {
	state, err := strconv.Atoi(c.Param("state"))
	if err != nil {
		utils.BadRequest(c, "Invalid state")
		return
	}

	orderRequests, err := h.orderRequestService.GetOrderRequestsByState(c.Request.Context(), state)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, orderRequests)
}

func (h *OrderRequestHandler) CreateOrderRequest(c *gin.Context) {
	var req models.OrderRequestCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	orderRequest, err := h.orderRequestService.CreateOrderRequest(c.Request.Context(), &req)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "Order request created", orderRequest)
}

func (h *OrderRequestHandler) DeleteOrderRequest(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.orderRequestService.DeleteOrderRequest(c.Request.Context(), id); err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, fmt.Sprintf("Order request %d deleted", id), gin.H{"id": id})
}
