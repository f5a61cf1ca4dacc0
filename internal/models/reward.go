package models

// CustomerTransactionRequest is the payload for recording a customer transaction.
// Amount positivity and required fields are enforced at the binding boundary.
type CustomerTransactionRequest struct {
	CustomerID      string  `json:"customerId" binding:"required"`
	CustomerName    string  `json:"customerName" binding:"required"`
	TransactionID   string  `json:"transactionId" binding:"required"`
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	TransactionDate string  `json:"transactionDate" binding:"required"`
}

// TransactionDetail is the per-transaction entry of a reward summary
type TransactionDetail struct {
	CustomerID      string  `json:"customerId"`
	TransactionID   string  `json:"transactionId"`
	Amount          float64 `json:"amount"`
	TransactionDate string  `json:"transactionDate"` // YYYY-MM-DD
}

// MonthlyPoints holds the points earned in one calendar month.
// Month is the full month name in uppercase, e.g. "JANUARY".
type MonthlyPoints struct {
	Year   int    `json:"year"`
	Month  string `json:"month"`
	Points int    `json:"points"`
}

// RewardSummary is the reward calculation result for one customer.
// Degraded is set only by the resiliency layer when the answer was produced
// while the backing store was unreachable; a genuine answer never sets it.
type RewardSummary struct {
	CustomerID    string              `json:"customerId"`
	CustomerName  string              `json:"customerName"`
	Transactions  []TransactionDetail `json:"transactions"`
	MonthlyPoints []MonthlyPoints     `json:"monthlyPoints"`
	TotalPoints   int                 `json:"totalPoints"`
	Degraded      bool                `json:"degraded,omitempty"`
}
