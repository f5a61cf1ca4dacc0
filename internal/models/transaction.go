package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction represents a purchase transaction document
type Transaction struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TransactionID   string             `bson:"transactionId" json:"transactionId"`
	CustomerID      string             `bson:"customerId" json:"customerId"`
	Amount          float64            `bson:"amount" json:"amount"`
	TransactionDate time.Time          `bson:"transactionDate" json:"transactionDate"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}
