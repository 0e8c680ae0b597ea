package services

import (
	"context"
	"fmt"

	"inventory-backend/internal/models"
	"inventory-backend/internal/store"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type OrderRequestService struct {
	db *gorm.DB
}

func NewOrderRequestService(db *gorm.DB) *OrderRequestService {
	return &OrderRequestService{db: db}
}

func (s *OrderRequestService) GetOrderRequests(ctx context.Context) ([]models.OrderRequest, error) {
	var orderRequests []models.OrderRequest
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		orderRequests, err = store.GetAllOrderRequests(tx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list order requests: %w", err)
	}
	return orderRequests, nil
}

func (s *OrderRequestService) GetOrderRequestsByItem(ctx context.Context, itemID uint) ([]models.OrderRequest, error) {
	var orderRequests []models.OrderRequest
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		item, err := store.GetItemByID(tx, itemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if item == nil {
			return notFound("Item not found")
		}
		if orderRequests, err = store.GetOrderRequestsByItemID(tx, itemID); err != nil {
			return fmt.Errorf("list order requests: %w", err)
		}
		return nil
	})
	return orderRequests, err
}

func (s *OrderRequestService) GetOrderRequestsByUser(ctx context.Context, uid string) ([]models.OrderRequest, error) {
	var orderRequests []models.OrderRequest
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		user, err := store.GetUserByUID(tx, uid)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		if user == nil {
			return notFound("User not found")
		}
		if orderRequests, err = store.GetOrderRequestsByUserID(tx, uid); err != nil {
			return fmt.Errorf("list order requests: %w", err)
		}
		return nil
	})
	return orderRequests, err
}

func (s *OrderRequestService) GetOrderRequestsByState(ctx context.Context, state int) ([]models.OrderRequest, error) {
	var orderRequests []models.OrderRequest
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		orderRequests, err = store.GetOrderRequestsByState(tx, state)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list order requests: %w", err)
	}
	return orderRequests, nil
}

// CreateOrderRequest records a request for an item by a user. A user may
// hold at most one request per item.
func (s *OrderRequestService) CreateOrderRequest(ctx context.Context, req *models.OrderRequestCreateRequest) (*models.OrderRequest, error) {
	var orderRequest *models.OrderRequest
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		item, err := store.GetItemByID(tx, req.ItemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		user, err := store.GetUserByUID(tx, req.UserID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		if item == nil || user == nil {
			return notFound("Item or user not found")
		}

		existing, err := store.GetOrderRequestByItemAndUserID(tx, req.ItemID, req.UserID)
		if err != nil {
			return fmt.Errorf("get order request: %w", err)
		}
		if existing != nil {
			return conflict("Order already requested by this user")
		}

		if orderRequest, err = store.CreateOrderRequest(tx, req); err != nil {
			return fmt.Errorf("create order request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_request_id": orderRequest.ID,
		"item_id":          orderRequest.ItemID,
		"user_id":          orderRequest.UserID,
	}).Info("order request created")
	return orderRequest, nil
}

func (s *OrderRequestService) DeleteOrderRequest(ctx context.Context, id uint) error {
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		orderRequest, err := store.GetOrderRequestByID(tx, id)
		if err != nil {
			return fmt.Errorf("get order request: %w", err)
		}
		if orderRequest == nil {
			return notFound("Order request not found")
		}
		if err := store.DeleteOrderRequest(tx, id); err != nil {
			return fmt.Errorf("delete order request: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("order_request_id", id).Info("order request deleted")
	return nil
}
