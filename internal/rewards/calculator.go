package rewards

import (
	"strings"

	"github.com/rewardsapp/rewards-backend/internal/models"
)

// Calculator computes tiered reward points from transaction amounts
type Calculator interface {
	// CalculatePoints maps a single transaction amount to points:
	// nothing up to 50, 1 point per whole dollar between 50 and 100,
	// 2 points per whole dollar above 100
	CalculatePoints(amount float64) int

	// TotalPoints sums CalculatePoints over all transactions
	TotalPoints(transactions []*models.Transaction) int

	// MonthlyPoints groups transactions into (year, month) buckets and sums
	// points per bucket. Buckets appear in first-seen order of the input,
	// not chronological order.
	MonthlyPoints(transactions []*models.Transaction) []models.MonthlyPoints
}

type pointsCalculator struct{}

// NewCalculator creates the default points calculator
func NewCalculator() Calculator {
	return &pointsCalculator{}
}

// CalculatePoints truncates per band before adding; band boundaries are
// strict, so exactly 50 and exactly 100 stay in the lower band.
func (c *pointsCalculator) CalculatePoints(amount float64) int {
	points := 0
	if amount > 100 {
		points += int((amount - 100) * 2)
		points += 50
	} else if amount > 50 {
		points += int(amount - 50)
	}
	return points
}

func (c *pointsCalculator) TotalPoints(transactions []*models.Transaction) int {
	total := 0
	for _, tx := range transactions {
		total += c.CalculatePoints(tx.Amount)
	}
	return total
}

type monthKey struct {
	year  int
	month string
}

func (c *pointsCalculator) MonthlyPoints(transactions []*models.Transaction) []models.MonthlyPoints {
	index := make(map[monthKey]int)
	monthly := make([]models.MonthlyPoints, 0, len(transactions))

	for _, tx := range transactions {
		points := c.CalculatePoints(tx.Amount)
		key := monthKey{
			year:  tx.TransactionDate.Year(),
			month: monthLabel(tx.TransactionDate.Month().String()),
		}

		if i, ok := index[key]; ok {
			monthly[i].Points += points
			continue
		}

		index[key] = len(monthly)
		monthly = append(monthly, models.MonthlyPoints{
			Year:   key.year,
			Month:  key.month,
			Points: points,
		})
	}

	return monthly
}

// monthLabel renders a month as its uppercase full name, e.g. "JANUARY"
func monthLabel(name string) string {
	return strings.ToUpper(name)
}
