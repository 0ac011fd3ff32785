package models

import (
	"time"
)

// NotificationSettings mirrors the toggles the app exposes on its
// notification preferences screen. BudgetThreshold is the percent-used
// value at which a budget warning fires (exceeded alerts always fire
// at 100%).
type NotificationSettings struct {
	TransactionNotifications bool    `firestore:"transactionNotifications" json:"transactionNotifications"`
	BudgetNotifications      bool    `firestore:"budgetNotifications" json:"budgetNotifications"`
	BudgetAlerts             bool    `firestore:"budgetAlerts" json:"budgetAlerts"`
	BudgetThreshold          float64 `firestore:"budgetThreshold" json:"budgetThreshold"`
	DailyReminders           bool    `firestore:"dailyReminders" json:"dailyReminders"`
	WeeklyReports            bool    `firestore:"weeklyReports" json:"weeklyReports"`
}

func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		TransactionNotifications: true,
		BudgetNotifications:      true,
		BudgetAlerts:             true,
		BudgetThreshold:          80,
	}
}

type UserSettings struct {
	UID                  string               `firestore:"uid" json:"uid"`
	PushToken            string               `firestore:"pushToken" json:"pushToken,omitempty"`
	NotificationSettings NotificationSettings `firestore:"notificationSettings" json:"notificationSettings"`
	UpdatedAt            time.Time            `firestore:"updatedAt" json:"updatedAt"`
}
