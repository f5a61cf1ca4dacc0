package validation

import (
	"regexp"
	"time"
)

// Customer IDs are "CUST" followed by exactly three digits, 7 characters
// total. This is the canonical rule; a looser any-digit-suffix variant that
// once existed is not honoured.
var customerIDPattern = regexp.MustCompile(`^CUST\d{3}$`)

// Validator checks request inputs before any store access happens
type Validator interface {
	IsValidCustomerID(customerID string) bool
	// IsInvalidDateRange reports whether the optional date range is unusable:
	// exactly one bound supplied, or from after to. Both bounds absent, or
	// both present with from <= to, is a valid range.
	IsInvalidDateRange(from, to *time.Time) bool
}

type inputValidator struct{}

// NewValidator creates the default input validator
func NewValidator() Validator {
	return &inputValidator{}
}

func (v *inputValidator) IsValidCustomerID(customerID string) bool {
	return customerIDPattern.MatchString(customerID)
}

func (v *inputValidator) IsInvalidDateRange(from, to *time.Time) bool {
	if (from != nil && to == nil) || (from == nil && to != nil) {
		return true
	}
	if from != nil && to != nil && from.After(*to) {
		return true
	}
	return false
}
