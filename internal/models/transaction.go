package models

import (
	"time"
)

type Transaction struct {
	TransactionID string    `firestore:"transactionId" json:"id"`
	CategoryID    string    `firestore:"categoryId" json:"categoryId"`
	Amount        float64   `firestore:"amount" json:"amount"` // always positive; direction comes from the category type
	Description   string    `firestore:"description" json:"description"`
	Date          string    `firestore:"date" json:"date"` // YYYY-MM-DD, day granularity
	ReceiptURL    string    `firestore:"receiptUrl" json:"receiptUrl,omitempty"`
	CreatedAt     time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `firestore:"updatedAt" json:"updatedAt"`
}
