package expense

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"expense-tracker-backend/config"
)

// Store is the record store the handlers and the aggregation core run
// against. Results of FindByOwnerAndWindow carry no ordering guarantee;
// callers that need an order sort for themselves.
type Store interface {
	FindByOwnerAndWindow(ctx context.Context, owner string, w Window) ([]Expense, error)
	FindByID(ctx context.Context, id string) (Expense, error)
	Insert(ctx context.Context, e Expense) error
	Update(ctx context.Context, e Expense) error
	DeleteByID(ctx context.Context, id string) error
}

type MongoStore struct {
	mongoClient *mongo.Client
	config      *config.Config
}

func NewMongoStore(mongoClient *mongo.Client, config *config.Config) *MongoStore {
	return &MongoStore{
		mongoClient: mongoClient,
		config:      config,
	}
}

func (s *MongoStore) collection() *mongo.Collection {
	return s.mongoClient.Database(s.config.DatabaseName).Collection(s.config.CollectionExpensesName)
}

func (s *MongoStore) FindByOwnerAndWindow(ctx context.Context, owner string, w Window) ([]Expense, error) {
	filter := bson.M{"user_id": owner}
	if w.Bounded {
		filter["date"] = bson.M{
			"$gte": w.Start,
			"$lt":  w.End,
		}
	}

	cursor, err := s.collection().Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	var expenses []Expense = make([]Expense, 0)
	if err = cursor.All(ctx, &expenses); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return expenses, nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (Expense, error) {
	var e Expense
	err := s.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if err == mongo.ErrNoDocuments {
		return Expense{}, ErrNotFound
	} else if err != nil {
		return Expense{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return e, nil
}

func (s *MongoStore) Insert(ctx context.Context, e Expense) error {
	if _, err := s.collection().InsertOne(ctx, e); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (s *MongoStore) Update(ctx context.Context, e Expense) error {
	result, err := s.collection().ReplaceOne(ctx, bson.M{"_id": e.ID}, e)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteByID(ctx context.Context, id string) error {
	result, err := s.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
