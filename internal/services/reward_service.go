package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rewardsapp/rewards-backend/internal/models"
	"github.com/rewardsapp/rewards-backend/internal/repositories"
	"github.com/rewardsapp/rewards-backend/internal/rewards"
	"github.com/rewardsapp/rewards-backend/internal/validation"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure RewardServiceImpl implements RewardService
var _ RewardService = (*RewardServiceImpl)(nil)

type RewardServiceImpl struct {
	customerRepo    repositories.CustomerRepository
	transactionRepo repositories.TransactionRepository
	validator       validation.Validator
	calculator      rewards.Calculator
}

func NewRewardService(customerRepo repositories.CustomerRepository, transactionRepo repositories.TransactionRepository, validator validation.Validator, calculator rewards.Calculator) *RewardServiceImpl {
	return &RewardServiceImpl{
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
		validator:       validator,
		calculator:      calculator,
	}
}

// AddCustomerTransaction persists a transaction, creating the customer first
// when the ID is unseen. Transaction IDs are deliberately not deduplicated;
// repeated IDs produce additional ledger entries.
func (s *RewardServiceImpl) AddCustomerTransaction(ctx context.Context, customerID, customerName, transactionID string, amount float64, transactionDate time.Time) error {
	if !s.validator.IsValidCustomerID(customerID) {
		slog.Warn("Rejected transaction with malformed customer ID", "customerId", customerID)
		return ErrInvalidCustomerID
	}

	existing, err := s.customerRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		slog.Error("Failed to look up customer", "error", err, "customerId", customerID)
		return fmt.Errorf("failed to look up customer: %w", err)
	}

	if existing == nil {
		customer := &models.Customer{
			CustomerID:   customerID,
			CustomerName: customerName,
		}
		slog.Info("Saving new customer", "customerId", customerID, "customerName", customerName)
		if err := s.customerRepo.Save(ctx, customer); err != nil {
			slog.Error("Failed to save customer", "error", err, "customerId", customerID)
			return fmt.Errorf("failed to save customer: %w", err)
		}
	}

	transaction := &models.Transaction{
		TransactionID:   transactionID,
		CustomerID:      customerID,
		Amount:          amount,
		TransactionDate: transactionDate,
	}
	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		slog.Error("Failed to save transaction", "error", err, "customerId", customerID, "transactionId", transactionID)
		return fmt.Errorf("failed to save transaction: %w", err)
	}

	slog.Info("Transaction saved successfully", "customerId", customerID, "transactionId", transactionID, "amount", amount)
	return nil
}

// GetCustomerRewards validates inputs, fetches the customer and its
// transactions, and assembles the reward summary. Validation failures happen
// before any store access.
func (s *RewardServiceImpl) GetCustomerRewards(ctx context.Context, customerID string, fromDate, toDate *time.Time) (*models.RewardSummary, error) {
	if !s.validator.IsValidCustomerID(customerID) {
		slog.Warn("Validation failure on customer ID", "customerId", customerID)
		return nil, ErrInvalidCustomerID
	}

	if s.validator.IsInvalidDateRange(fromDate, toDate) {
		slog.Warn("Invalid date range", "customerId", customerID, "fromDate", fromDate, "toDate", toDate)
		return nil, ErrInvalidDateRange
	}

	customer, err := s.customerRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		slog.Error("Failed to fetch customer", "error", err, "customerId", customerID)
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}

	var transactions []*models.Transaction
	if fromDate != nil && toDate != nil {
		// The upper bound extends through the entire toDate calendar day
		start := *fromDate
		end := toDate.AddDate(0, 0, 1).Add(-time.Nanosecond)
		transactions, err = s.transactionRepo.FindByCustomerIDAndDateRange(ctx, customerID, start, end)
	} else {
		transactions, err = s.transactionRepo.FindByCustomerID(ctx, customerID)
	}
	if err != nil {
		slog.Error("Failed to fetch transactions", "error", err, "customerId", customerID)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	if customer == nil || len(transactions) == 0 {
		slog.Warn("No transactions found", "customerId", customerID, "fromDate", fromDate, "toDate", toDate)
		return nil, ErrNoTransactions
	}

	summary := s.buildSummary(customer, transactions)
	slog.Info("Calculated reward points", "customerId", customerID, "totalPoints", summary.TotalPoints, "transactions", len(transactions))
	return summary, nil
}

func (s *RewardServiceImpl) buildSummary(customer *models.Customer, transactions []*models.Transaction) *models.RewardSummary {
	details := make([]models.TransactionDetail, 0, len(transactions))
	for _, tx := range transactions {
		details = append(details, models.TransactionDetail{
			CustomerID:      tx.CustomerID,
			TransactionID:   tx.TransactionID,
			Amount:          tx.Amount,
			TransactionDate: tx.TransactionDate.Format("2006-01-02"),
		})
	}

	return &models.RewardSummary{
		CustomerID:    customer.CustomerID,
		CustomerName:  customer.CustomerName,
		Transactions:  details,
		MonthlyPoints: s.calculator.MonthlyPoints(transactions),
		TotalPoints:   s.calculator.TotalPoints(transactions),
	}
}
