package mongodb

import (
	"context"
	"time"

	"github.com/rewardsapp/rewards-backend/internal/models"
	"github.com/rewardsapp/rewards-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// TransactionRepository implements the repositories.TransactionRepository interface
type TransactionRepository struct {
	collection *mongo.Collection
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db *mongo.Database) repositories.TransactionRepository {
	return &TransactionRepository{
		collection: db.Collection("transactions"),
	}
}

// Create inserts a new transaction. Transaction IDs are not unique by
// contract; a second document with the same transactionId is accepted.
func (r *TransactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	transaction.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, transaction)
	return err
}

// FindByCustomerID finds all transactions for a customer ID in natural
// (insertion) order. No sort is applied on purpose.
func (r *TransactionRepository) FindByCustomerID(ctx context.Context, customerID string) ([]*models.Transaction, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"customerId": customerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var transactions []*models.Transaction
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// FindByCustomerIDAndDateRange finds transactions for a customer ID within
// the inclusive [start, end] range, in natural (insertion) order
func (r *TransactionRepository) FindByCustomerIDAndDateRange(ctx context.Context, customerID string, start, end time.Time) ([]*models.Transaction, error) {
	filter := bson.M{
		"customerId": customerID,
		"transactionDate": bson.M{
			"$gte": start,
			"$lte": end,
		},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var transactions []*models.Transaction
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}
