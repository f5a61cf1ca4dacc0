package services

import (
	"context"
	"errors"
	"time"

	"github.com/rewardsapp/rewards-backend/internal/models"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure BreakerRewardService implements RewardService
var _ RewardService = (*BreakerRewardService)(nil)

// BreakerSettings tunes the circuit breaker around the reward service
type BreakerSettings struct {
	FailureThreshold uint32
	Timeout          time.Duration
	Interval         time.Duration
	MaxRequests      uint32
}

// BreakerRewardService decorates a RewardService with a circuit breaker.
// Client-input errors (invalid arguments, not-found) never count as
// failures; only store-side errors trip the breaker. While the breaker is
// open, reads answer with a summary explicitly flagged Degraded so that an
// empty fallback can never be mistaken for a genuine zero-transaction
// result; writes propagate the breaker error.
type BreakerRewardService struct {
	inner RewardService
	read  *gobreaker.CircuitBreaker[*models.RewardSummary]
	write *gobreaker.CircuitBreaker[struct{}]
}

func NewBreakerRewardService(inner RewardService, settings BreakerSettings) *BreakerRewardService {
	threshold := settings.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	base := gobreaker.Settings{
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || IsInvalidArgument(err) || IsNotFound(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
		},
	}

	readSettings := base
	readSettings.Name = "rewardCalculationService"
	writeSettings := base
	writeSettings.Name = "customerTransactionService"

	return &BreakerRewardService{
		inner: inner,
		read:  gobreaker.NewCircuitBreaker[*models.RewardSummary](readSettings),
		write: gobreaker.NewCircuitBreaker[struct{}](writeSettings),
	}
}

func (b *BreakerRewardService) AddCustomerTransaction(ctx context.Context, customerID, customerName, transactionID string, amount float64, transactionDate time.Time) error {
	_, err := b.write.Execute(func() (struct{}, error) {
		return struct{}{}, b.inner.AddCustomerTransaction(ctx, customerID, customerName, transactionID, amount, transactionDate)
	})
	if IsUnavailable(err) {
		slog.Error("Write rejected by open circuit breaker", "customerId", customerID, "transactionId", transactionID)
	}
	return err
}

func (b *BreakerRewardService) GetCustomerRewards(ctx context.Context, customerID string, fromDate, toDate *time.Time) (*models.RewardSummary, error) {
	summary, err := b.read.Execute(func() (*models.RewardSummary, error) {
		return b.inner.GetCustomerRewards(ctx, customerID, fromDate, toDate)
	})
	if err == nil {
		return summary, nil
	}

	if IsUnavailable(err) {
		slog.Error("Serving degraded reward summary, circuit breaker open", "customerId", customerID)
		return &models.RewardSummary{
			CustomerID:    customerID,
			Transactions:  []models.TransactionDetail{},
			MonthlyPoints: []models.MonthlyPoints{},
			Degraded:      true,
		}, nil
	}
	return nil, err
}

// IsUnavailable reports whether err came from an open breaker rather
// than the wrapped call
func IsUnavailable(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
