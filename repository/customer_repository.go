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

// excludePassword keeps credential hashes out of principal lookups.
var excludePassword = options.FindOne().SetProjection(bson.M{"password": 0})

type CustomerRepository struct {
	coll *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{coll: db.Collection("customers")}
}

// FindByEmail returns the full document including the password hash,
// for credential checks only.
func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var customer entity.Customer
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Customer, error) {
	var customer entity.Customer
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}, excludePassword).Decode(&customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"email": email})
}

func (r *CustomerRepository) Insert(ctx context.Context, customer *entity.Customer) error {
	res, err := r.coll.InsertOne(ctx, customer)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		customer.ID = oid
	}
	return nil
}

// Update applies the non-nil patch fields and returns the updated profile
// without the password hash.
func (r *CustomerRepository) Update(ctx context.Context, id primitive.ObjectID, patch *entity.CustomerPatch) (*entity.Customer, error) {
	set := bson.M{"updatedAt": time.Now()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}
	if patch.Address != nil {
		set["address"] = *patch.Address
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"password": 0})

	var customer entity.Customer
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&customer)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}
