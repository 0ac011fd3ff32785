package dto

type CreateTransactionRequest struct {
	CategoryID  string  `json:"categoryId"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"` // YYYY-MM-DD
	ReceiptURL  string  `json:"receiptUrl,omitempty"`
}

// TransactionQuery narrows a transaction listing. Both bounds are
// inclusive YYYY-MM-DD dates; empty means unbounded.
type TransactionQuery struct {
	CategoryID string
	DateFrom   string
	DateTo     string
	Limit      int
}
