package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"foodie/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MenuStore is the catalog persistence the service needs; satisfied by
// repository.MenuRepository.
type MenuStore interface {
	Find(ctx context.Context, category string) ([]entity.MenuItem, error)
	FindAll(ctx context.Context) ([]entity.MenuItem, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.MenuItem, error)
	Insert(ctx context.Context, item *entity.MenuItem) error
	Update(ctx context.Context, id primitive.ObjectID, patch *entity.MenuItemPatch) (*entity.MenuItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*entity.MenuItem, error)
	ToggleAvailability(ctx context.Context, id primitive.ObjectID) (*entity.MenuItem, error)
}

type MenuService struct {
	store MenuStore
}

func NewMenuService(store MenuStore) *MenuService {
	return &MenuService{store: store}
}

// List returns catalog items, optionally filtered by exact category.
func (s *MenuService) List(ctx context.Context, category string) ([]entity.MenuItem, error) {
	return s.store.Find(ctx, category)
}

// ListAll returns every item newest first, for the admin dashboard.
func (s *MenuService) ListAll(ctx context.Context) ([]entity.MenuItem, error) {
	return s.store.FindAll(ctx)
}

func (s *MenuService) Get(ctx context.Context, id string) (*entity.MenuItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	item, err := s.store.FindByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	return item, err
}

type CreateMenuItemInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	ImageURL    string
	IsVeg       bool
	IsAvailable bool
}

func (s *MenuService) Create(ctx context.Context, in *CreateMenuItemInput) (*entity.MenuItem, error) {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.Category) == "" {
		return nil, validationErr("name, description, price and category are required")
	}
	if in.Price < 0 {
		return nil, validationErr("price must be non-negative")
	}

	now := time.Now()
	item := &entity.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		IsVeg:       in.IsVeg,
		IsAvailable: in.IsAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Insert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Update(ctx context.Context, id string, patch *entity.MenuItemPatch) (*entity.MenuItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	if patch.Price != nil && *patch.Price < 0 {
		return nil, validationErr("price must be non-negative")
	}

	item, err := s.store.Update(ctx, oid, patch)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	return item, err
}

func (s *MenuService) Delete(ctx context.Context, id string) (*entity.MenuItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	item, err := s.store.Delete(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	return item, err
}

func (s *MenuService) ToggleAvailability(ctx context.Context, id string) (*entity.MenuItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	item, err := s.store.ToggleAvailability(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	return item, err
}
