package repository

import (
	"context"

	"foodie/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminRepository struct {
	coll *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{coll: db.Collection("admins")}
}

// FindByEmail returns the full document including the password hash,
// for credential checks only.
func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var admin entity.Admin
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Admin, error) {
	var admin entity.Admin
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}, excludePassword).Decode(&admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"email": email})
}

func (r *AdminRepository) Insert(ctx context.Context, admin *entity.Admin) error {
	res, err := r.coll.InsertOne(ctx, admin)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		admin.ID = oid
	}
	return nil
}
