package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer represents a customer document
type Customer struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CustomerID   string             `bson:"customerId" json:"customerId"`
	CustomerName string             `bson:"customerName" json:"customerName"`
}
