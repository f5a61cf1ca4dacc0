package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rewardsapp/rewards-backend/internal/models"
	"github.com/rewardsapp/rewards-backend/internal/services"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
)

// RewardHandler handles reward-related HTTP requests
type RewardHandler struct {
	rewardService services.RewardService
}

// NewRewardHandler creates a new RewardHandler
func NewRewardHandler(rewardService services.RewardService) *RewardHandler {
	return &RewardHandler{
		rewardService: rewardService,
	}
}

// AddCustomerTransaction handles POST /rewards/transaction
func (h *RewardHandler) AddCustomerTransaction(c *gin.Context) {
	var req models.CustomerTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transactionDate, err := parseDateTime(req.TransactionDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction date format (YYYY-MM-DDTHH:MM:SS)"})
		return
	}

	err = h.rewardService.AddCustomerTransaction(c, req.CustomerID, req.CustomerName, req.TransactionID, req.Amount, transactionDate)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer and Transaction saved successfully!"})
}

// GetCustomerRewards handles GET /rewards/customers/:customerId
func (h *RewardHandler) GetCustomerRewards(c *gin.Context) {
	customerID := c.Param("customerId")

	fromDate, err := parseOptionalDate(c.Query("fromDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date format (YYYY-MM-DD)"})
		return
	}

	toDate, err := parseOptionalDate(c.Query("toDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date format (YYYY-MM-DD)"})
		return
	}

	summary, err := h.rewardService.GetCustomerRewards(c, customerID, fromDate, toDate)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// writeError maps service errors onto HTTP statuses
func (h *RewardHandler) writeError(c *gin.Context, err error) {
	switch {
	case services.IsInvalidArgument(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case services.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case services.IsUnavailable(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable. Please try again later."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred. Please try again later."})
	}
}

// parseOptionalDate parses a YYYY-MM-DD query parameter, nil when omitted
func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseDateTime accepts a local date-time with an optional zone offset
func parseDateTime(value string) (time.Time, error) {
	if t, err := time.Parse(dateTimeLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
