package mongodb

import (
	"context"
	"errors"

	"github.com/rewardsapp/rewards-backend/internal/models"
	"github.com/rewardsapp/rewards-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CustomerRepository implements the repositories.CustomerRepository interface
type CustomerRepository struct {
	collection *mongo.Collection
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(db *mongo.Database) repositories.CustomerRepository {
	return &CustomerRepository{
		collection: db.Collection("customers"),
	}
}

// Save upserts a customer keyed by its customer ID. Concurrent first-time
// writes for the same ID both land here; last write wins.
func (r *CustomerRepository) Save(ctx context.Context, customer *models.Customer) error {
	filter := bson.M{"customerId": customer.CustomerID}
	update := bson.M{"$set": bson.M{
		"customerId":   customer.CustomerID,
		"customerName": customer.CustomerName,
	}}
	opts := options.Update().SetUpsert(true)

	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// FindByCustomerID finds a customer by customer ID, returning nil when absent
func (r *CustomerRepository) FindByCustomerID(ctx context.Context, customerID string) (*models.Customer, error) {
	var customer models.Customer
	err := r.collection.FindOne(ctx, bson.M{"customerId": customerID}).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}
