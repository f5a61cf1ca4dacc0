package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rewardsapp/rewards-backend/internal/models"
)

type stubRewardService struct {
	summary  *models.RewardSummary
	readErr  error
	writeErr error
	reads    int
	writes   int
}

func (s *stubRewardService) AddCustomerTransaction(ctx context.Context, customerID, customerName, transactionID string, amount float64, transactionDate time.Time) error {
	s.writes++
	return s.writeErr
}

func (s *stubRewardService) GetCustomerRewards(ctx context.Context, customerID string, fromDate, toDate *time.Time) (*models.RewardSummary, error) {
	s.reads++
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.summary, nil
}

func newBreakerForTest(inner RewardService) *BreakerRewardService {
	return NewBreakerRewardService(inner, BreakerSettings{
		FailureThreshold: 2,
		Timeout:          time.Minute,
	})
}

func TestBreakerPassesThroughHealthyCalls(t *testing.T) {
	stub := &stubRewardService{summary: &models.RewardSummary{CustomerID: "CUST001", TotalPoints: 115}}
	svc := newBreakerForTest(stub)

	summary, err := svc.GetCustomerRewards(context.Background(), "CUST001", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalPoints != 115 || summary.Degraded {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestBreakerIgnoresClientErrors(t *testing.T) {
	stub := &stubRewardService{readErr: ErrInvalidCustomerID}
	svc := newBreakerForTest(stub)

	ctx := context.Background()
	for i := 0; i < 10; i++ {
		if _, err := svc.GetCustomerRewards(ctx, "BAD", nil, nil); !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("call %d: expected ErrInvalidCustomerID, got %v", i, err)
		}
	}

	// Client errors never trip the breaker, so the real service keeps
	// seeing every call
	if stub.reads != 10 {
		t.Fatalf("expected 10 inner reads, got %d", stub.reads)
	}

	stub.readErr = ErrNoTransactions
	if _, err := svc.GetCustomerRewards(ctx, "CUST001", nil, nil); !errors.Is(err, ErrNoTransactions) {
		t.Fatalf("expected ErrNoTransactions, got %v", err)
	}
}

func TestBreakerServesDegradedSummaryWhenOpen(t *testing.T) {
	stub := &stubRewardService{readErr: errors.New("store down")}
	svc := newBreakerForTest(stub)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := svc.GetCustomerRewards(ctx, "CUST001", nil, nil); err == nil {
			t.Fatalf("call %d: expected store error", i)
		}
	}

	readsBefore := stub.reads
	summary, err := svc.GetCustomerRewards(ctx, "CUST001", nil, nil)
	if err != nil {
		t.Fatalf("open breaker should answer with a degraded summary, got %v", err)
	}
	if !summary.Degraded {
		t.Fatal("fallback summary must be flagged degraded")
	}
	if summary.TotalPoints != 0 || len(summary.Transactions) != 0 || len(summary.MonthlyPoints) != 0 {
		t.Fatalf("degraded summary must carry no data: %+v", summary)
	}
	if stub.reads != readsBefore {
		t.Fatal("open breaker must not reach the inner service")
	}
}

func TestBreakerRejectsWritesWhenOpen(t *testing.T) {
	stub := &stubRewardService{writeErr: errors.New("store down")}
	svc := newBreakerForTest(stub)

	ctx := context.Background()
	when := time.Date(2025, time.April, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		if err := svc.AddCustomerTransaction(ctx, "CUST001", "Ravi", "TXN1", 60, when); err == nil {
			t.Fatalf("call %d: expected store error", i)
		}
	}

	err := svc.AddCustomerTransaction(ctx, "CUST001", "Ravi", "TXN1", 60, when)
	if !IsUnavailable(err) {
		t.Fatalf("expected breaker-open error, got %v", err)
	}
	if stub.writes != 2 {
		t.Fatalf("open breaker must not reach the inner service, writes=%d", stub.writes)
	}
}
