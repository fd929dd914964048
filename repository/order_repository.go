package repository

import (
	"context"
	"time"

	"foodie/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection("orders")}
}

func (r *OrderRepository) Insert(ctx context.Context, order *entity.Order) error {
	res, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}
	return nil
}

// FindAll returns every order, newest first.
func (r *OrderRepository) FindAll(ctx context.Context) ([]entity.Order, error) {
	return r.find(ctx, bson.M{})
}

// FindByCustomer returns the given customer's orders, newest first.
func (r *OrderRepository) FindByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]entity.Order, error) {
	return r.find(ctx, bson.M{"customerId": customerID})
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]entity.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	orders := make([]entity.Order, 0)
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus sets the status and returns the updated order.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*entity.Order, error) {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order entity.Order
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}
