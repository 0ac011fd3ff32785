package dto

import (
	"github.com/kaiseldev-sudo/budget-buddy/internal/models"
)

type RegisterPushTokenRequest struct {
	PushToken string `json:"pushToken"`
}

type UpdateNotificationSettingsRequest struct {
	NotificationSettings models.NotificationSettings `json:"notificationSettings"`
}

type RegisterUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

type UpdateUserRequest struct {
	FullName string `json:"fullName"`
}
