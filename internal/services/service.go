package services

import (
	"context"
	"time"

	"github.com/rewardsapp/rewards-backend/internal/models"
)

// RewardService defines the interface for reward-related operations
type RewardService interface {
	// AddCustomerTransaction records a transaction, creating the customer
	// record first if the customer ID has not been seen before
	AddCustomerTransaction(ctx context.Context, customerID, customerName, transactionID string, amount float64, transactionDate time.Time) error

	// GetCustomerRewards computes the reward summary for a customer,
	// optionally restricted to transactions within [fromDate, toDate].
	// Both bounds are calendar dates; the upper bound covers its whole day.
	GetCustomerRewards(ctx context.Context, customerID string, fromDate, toDate *time.Time) (*models.RewardSummary, error)
}
