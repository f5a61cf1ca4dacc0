package services

import "errors"

// Error messages are part of the API contract; the handler layer forwards
// them verbatim.
var (
	// ErrInvalidCustomerID rejects a malformed customer ID
	ErrInvalidCustomerID = errors.New("Invalid Customer ID.")

	// ErrInvalidDateRange rejects a half-open or inverted date range
	ErrInvalidDateRange = errors.New("Invalid date range. From-date should be before to-date.")

	// ErrNoTransactions means the inputs were valid but no customer or
	// transaction data matched
	ErrNoTransactions = errors.New("No transactions found for the given inputs.")
)

// IsInvalidArgument reports whether err is a client-input error
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidCustomerID) || errors.Is(err, ErrInvalidDateRange)
}

// IsNotFound reports whether err is a no-matching-data error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNoTransactions)
}
