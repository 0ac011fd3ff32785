package models

import (
	"time"
)

const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

type Budget struct {
	BudgetID   string    `firestore:"budgetId" json:"id"`
	CategoryID string    `firestore:"categoryId" json:"categoryId"`
	Amount     float64   `firestore:"amount" json:"amount"` // period limit, always positive
	Period     string    `firestore:"period" json:"period"` // daily | weekly | monthly
	StartDate  string    `firestore:"startDate" json:"startDate"`
	EndDate    string    `firestore:"endDate" json:"endDate,omitempty"`
	IsActive   bool      `firestore:"isActive" json:"isActive"`
	CreatedAt  time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `firestore:"updatedAt" json:"updatedAt"`
}
