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

type MenuRepository struct {
	coll *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{coll: db.Collection("menuitems")}
}

// Find returns items, optionally filtered to an exact category.
func (r *MenuRepository) Find(ctx context.Context, category string) ([]entity.MenuItem, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]entity.MenuItem, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FindAll returns every item, newest first.
func (r *MenuRepository) FindAll(ctx context.Context) ([]entity.MenuItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	items := make([]entity.MenuItem, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Insert(ctx context.Context, item *entity.MenuItem) error {
	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}
	return nil
}

// Update applies the non-nil patch fields and returns the updated item.
func (r *MenuRepository) Update(ctx context.Context, id primitive.ObjectID, patch *entity.MenuItemPatch) (*entity.MenuItem, error) {
	set := bson.M{"updatedAt": time.Now()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.ImageURL != nil {
		set["imageUrl"] = *patch.ImageURL
	}
	if patch.IsVeg != nil {
		set["isVeg"] = *patch.IsVeg
	}
	if patch.IsAvailable != nil {
		set["isAvailable"] = *patch.IsAvailable
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var item entity.MenuItem
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes the item and returns the removed document.
func (r *MenuRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// ToggleAvailability flips isAvailable in a single atomic update.
func (r *MenuRepository) ToggleAvailability(ctx context.Context, id primitive.ObjectID) (*entity.MenuItem, error) {
	pipeline := bson.A{bson.M{"$set": bson.M{
		"isAvailable": bson.M{"$not": "$isAvailable"},
		"updatedAt":   time.Now(),
	}}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var item entity.MenuItem
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, pipeline, opts).Decode(&item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
