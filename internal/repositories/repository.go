package repositories

import (
	"context"
	"time"

	"github.com/rewardsapp/rewards-backend/internal/models"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	// Save upserts a customer by its natural customer ID (last write wins)
	Save(ctx context.Context, customer *models.Customer) error
	// FindByCustomerID returns the customer, or nil when no document matches
	FindByCustomerID(ctx context.Context, customerID string) (*models.Customer, error)
}

// TransactionRepository defines the interface for transaction data operations.
// Find results come back in store (insertion) order; callers must not re-sort.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	FindByCustomerID(ctx context.Context, customerID string) ([]*models.Transaction, error)
	// FindByCustomerIDAndDateRange returns transactions with
	// start <= transactionDate <= end, both bounds inclusive
	FindByCustomerIDAndDateRange(ctx context.Context, customerID string, start, end time.Time) ([]*models.Transaction, error)
}
