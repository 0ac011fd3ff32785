package dto

import (
	"github.com/kaiseldev-sudo/budget-buddy/internal/models"
)

type CreateBudgetRequest struct {
	CategoryID string  `json:"categoryId"`
	Amount     float64 `json:"amount"`
	Period     string  `json:"period"` // daily | weekly | monthly
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate,omitempty"`
}

type UpdateBudgetRequest struct {
	Amount   *float64 `json:"amount,omitempty"`
	Period   *string  `json:"period,omitempty"`
	EndDate  *string  `json:"endDate,omitempty"`
	IsActive *bool    `json:"isActive,omitempty"`
}

// BudgetStatus is a budget plus its derived figures for the current
// period window. Remaining goes negative when over budget; Progress is
// percent-used and is 0 when the limit is 0.
type BudgetStatus struct {
	models.Budget
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
	Progress  float64 `json:"progress"`
}
