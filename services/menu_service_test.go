package services

import (
	"context"
	"errors"
	"testing"

	"foodie/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeMenuStore struct {
	items map[primitive.ObjectID]entity.MenuItem
}

func newFakeMenuStore() *fakeMenuStore {
	return &fakeMenuStore{items: make(map[primitive.ObjectID]entity.MenuItem)}
}

func (f *fakeMenuStore) Find(_ context.Context, category string) ([]entity.MenuItem, error) {
	out := make([]entity.MenuItem, 0)
	for _, it := range f.items {
		if category == "" || it.Category == category {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeMenuStore) FindAll(_ context.Context) ([]entity.MenuItem, error) {
	return f.Find(context.Background(), "")
}

func (f *fakeMenuStore) FindByID(_ context.Context, id primitive.ObjectID) (*entity.MenuItem, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &it, nil
}

func (f *fakeMenuStore) Insert(_ context.Context, item *entity.MenuItem) error {
	item.ID = primitive.NewObjectID()
	f.items[item.ID] = *item
	return nil
}

func (f *fakeMenuStore) Update(_ context.Context, id primitive.ObjectID, patch *entity.MenuItemPatch) (*entity.MenuItem, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if patch.Name != nil {
		it.Name = *patch.Name
	}
	if patch.Description != nil {
		it.Description = *patch.Description
	}
	if patch.Price != nil {
		it.Price = *patch.Price
	}
	if patch.Category != nil {
		it.Category = *patch.Category
	}
	if patch.ImageURL != nil {
		it.ImageURL = *patch.ImageURL
	}
	if patch.IsVeg != nil {
		it.IsVeg = *patch.IsVeg
	}
	if patch.IsAvailable != nil {
		it.IsAvailable = *patch.IsAvailable
	}
	f.items[id] = it
	return &it, nil
}

func (f *fakeMenuStore) Delete(_ context.Context, id primitive.ObjectID) (*entity.MenuItem, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(f.items, id)
	return &it, nil
}

func (f *fakeMenuStore) ToggleAvailability(_ context.Context, id primitive.ObjectID) (*entity.MenuItem, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	it.IsAvailable = !it.IsAvailable
	f.items[id] = it
	return &it, nil
}

func validMenuInput() *CreateMenuItemInput {
	return &CreateMenuItemInput{
		Name:        "Classic Burger",
		Description: "Beef patty with cheddar",
		Price:       8.5,
		Category:    "Burger",
		ImageURL:    "https://img.example/burger.jpg",
		IsVeg:       false,
		IsAvailable: true,
	}
}

func TestMenuCreateThenGetRoundTrips(t *testing.T) {
	svc := NewMenuService(newFakeMenuStore())

	created, err := svc.Create(context.Background(), validMenuInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID.Hex())
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Name != created.Name || got.Description != created.Description ||
		got.Price != created.Price || got.Category != created.Category ||
		got.ImageURL != created.ImageURL || got.IsVeg != created.IsVeg ||
		got.IsAvailable != created.IsAvailable {
		t.Errorf("fetched item differs from created:\ngot  %+v\nwant %+v", got, created)
	}
}

func TestMenuCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *CreateMenuItemInput)
	}{
		{"missing name", func(in *CreateMenuItemInput) { in.Name = "" }},
		{"missing description", func(in *CreateMenuItemInput) { in.Description = "  " }},
		{"missing category", func(in *CreateMenuItemInput) { in.Category = "" }},
		{"negative price", func(in *CreateMenuItemInput) { in.Price = -0.01 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeMenuStore()
			svc := NewMenuService(store)

			in := validMenuInput()
			tt.mutate(in)

			if _, err := svc.Create(context.Background(), in); !IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(store.items) != 0 {
				t.Errorf("nothing should be persisted, found %d items", len(store.items))
			}
		})
	}
}

func TestMenuList_FiltersByCategory(t *testing.T) {
	svc := NewMenuService(newFakeMenuStore())

	burger := validMenuInput()
	pizza := validMenuInput()
	pizza.Name = "Margherita"
	pizza.Category = "Pizza"

	for _, in := range []*CreateMenuItemInput{burger, pizza} {
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	items, err := svc.List(context.Background(), "Pizza")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(items) != 1 || items[0].Category != "Pizza" {
		t.Errorf("List(Pizza) = %+v, want the single pizza item", items)
	}

	all, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("List(\"\") returned %d items, want 2", len(all))
	}
}

func TestMenuUpdate_Partial(t *testing.T) {
	svc := NewMenuService(newFakeMenuStore())

	created, err := svc.Create(context.Background(), validMenuInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	newPrice := 9.75
	updated, err := svc.Update(context.Background(), created.ID.Hex(), &entity.MenuItemPatch{Price: &newPrice})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Price != newPrice {
		t.Errorf("Price = %v, want %v", updated.Price, newPrice)
	}
	if updated.Name != created.Name {
		t.Errorf("Name changed on partial update: %q", updated.Name)
	}

	negative := -5.0
	if _, err := svc.Update(context.Background(), created.ID.Hex(), &entity.MenuItemPatch{Price: &negative}); !IsValidation(err) {
		t.Fatalf("expected validation error for negative price, got %v", err)
	}
}

func TestMenuToggleAvailability(t *testing.T) {
	svc := NewMenuService(newFakeMenuStore())

	created, err := svc.Create(context.Background(), validMenuInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	toggled, err := svc.ToggleAvailability(context.Background(), created.ID.Hex())
	if err != nil {
		t.Fatalf("ToggleAvailability returned error: %v", err)
	}
	if toggled.IsAvailable {
		t.Error("expected isAvailable=false after toggle")
	}

	toggled, err = svc.ToggleAvailability(context.Background(), created.ID.Hex())
	if err != nil {
		t.Fatalf("ToggleAvailability returned error: %v", err)
	}
	if !toggled.IsAvailable {
		t.Error("expected isAvailable=true after second toggle")
	}
}

func TestMenuNotFoundAndBadID(t *testing.T) {
	svc := NewMenuService(newFakeMenuStore())

	if _, err := svc.Get(context.Background(), primitive.NewObjectID().Hex()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get unknown id: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Delete(context.Background(), primitive.NewObjectID().Hex()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete unknown id: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "not-an-object-id"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Get bad id: expected ErrInvalidID, got %v", err)
	}
}
