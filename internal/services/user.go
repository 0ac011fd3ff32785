package services

import (
	"context"
	"time"

	"github.com/kaiseldev-sudo/budget-buddy/internal/errs"
	"github.com/kaiseldev-sudo/budget-buddy/internal/models"
	"github.com/kaiseldev-sudo/budget-buddy/pkg/logger"
)

type userUSStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, uid string) (*models.User, error)
}

type userService struct {
	Store userUSStore
}

func NewUserService(store userUSStore) *userService {
	return &userService{
		Store: store,
	}
}

func (s *userService) Register(ctx context.Context, uid, email, fullName string) (*models.User, error) {
	// Logger from context already carries uid, request_id, method, path
	log := logger.FromContext(ctx)

	if email == "" {
		return nil, errs.NewValidationError("email is required")
	}

	user := &models.User{
		UID:       uid,
		Email:     email,
		FullName:  fullName,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.Store.CreateUser(ctx, user); err != nil {
		log.Error("failed to create user in store", "error", err)
		return nil, err
	}

	log.Info("user registered", "full_name", fullName)
	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, uid string) (*models.User, error) {
	return s.Store.GetUser(ctx, uid)
}

// UpdateProfile changes the display name on the stored profile.
func (s *userService) UpdateProfile(ctx context.Context, uid, fullName string) (*models.User, error) {
	if fullName == "" {
		return nil, errs.NewValidationError("fullName is required")
	}

	user, err := s.Store.GetUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	user.FullName = fullName
	user.UpdatedAt = time.Now()

	if err := s.Store.UpdateUser(ctx, user); err != nil {
		logger.FromContext(ctx).Error("failed to update user in store", "error", err)
		return nil, err
	}
	return user, nil
}
