package models

import (
	"time"
)

const (
	CategoryTypeIncome  = "income"
	CategoryTypeExpense = "expense"
)

type Category struct {
	CategoryID string    `firestore:"categoryId" json:"id"`
	Name       string    `firestore:"name" json:"name"`
	Color      string    `firestore:"color" json:"color"`
	Icon       string    `firestore:"icon" json:"icon"`
	Type       string    `firestore:"type" json:"type"` // income | expense
	CreatedAt  time.Time `firestore:"createdAt" json:"createdAt"`
}
