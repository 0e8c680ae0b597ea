package services

import (
	"context"
	"fmt"

	"inventory-backend/internal/models"
	"inventory-backend/internal/store"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		users, err = store.GetAllUsers(tx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, uid string) (*models.User, error) {
	var user *models.User
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		if user, err = store.GetUserByUID(tx, uid); err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		if user == nil {
			return notFound("User not found")
		}
		return nil
	})
	return user, err
}

func (s *UserService) CreateUser(ctx context.Context, req *models.UserCreateRequest) (*models.User, error) {
	var user *models.User
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		existing, err := store.GetUserByUID(tx, req.UID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		if existing != nil {
			return conflict("User already exists")
		}

		if user, err = store.CreateUser(tx, req); err != nil {
			if isDuplicateKey(err) {
				return conflict("User already exists")
			}
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithField("uid", user.UID).Info("user created")
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, uid string) error {
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		user, err := store.GetUserByUID(tx, uid)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		if user == nil {
			return notFound("User not found")
		}
		if err := store.DeleteUser(tx, uid); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("uid", uid).Info("user deleted")
	return nil
}
