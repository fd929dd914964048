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

// OrderStore is the order persistence the service needs; satisfied by
// repository.OrderRepository.
type OrderStore interface {
	Insert(ctx context.Context, order *entity.Order) error
	FindAll(ctx context.Context) ([]entity.Order, error)
	FindByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]entity.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*entity.Order, error)
}

type OrderService struct {
	store OrderStore
}

func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{store: store}
}

type OrderLineIn struct {
	MenuItemID string
	Name       string
	Price      float64
	Quantity   int
}

type CreateOrderInput struct {
	CustomerName string
	Email        string
	Phone        string
	Address      string
	Note         string
	Items        []OrderLineIn

	// Customer is the optionally resolved caller identity; nil for a
	// guest order.
	Customer *entity.Customer
}

// Create validates the cart, computes the total server-side from the
// line-item snapshots and persists the order as pending. Snapshots are
// taken as submitted; they are not checked against live catalog prices.
func (s *OrderService) Create(ctx context.Context, in *CreateOrderInput) (*entity.Order, error) {
	name := strings.TrimSpace(in.CustomerName)
	if in.Customer != nil && in.Customer.Name != "" {
		name = in.Customer.Name
	}

	if name == "" {
		return nil, validationErr("customerName is required")
	}
	if strings.TrimSpace(in.Phone) == "" {
		return nil, validationErr("phone is required")
	}
	if strings.TrimSpace(in.Address) == "" {
		return nil, validationErr("address is required")
	}
	if len(in.Items) == 0 {
		return nil, validationErr("items must not be empty")
	}

	items := make([]entity.OrderItem, 0, len(in.Items))
	total := 0.0
	for _, line := range in.Items {
		oid, err := primitive.ObjectIDFromHex(line.MenuItemID)
		if err != nil {
			return nil, validationErr("invalid menu item id: " + line.MenuItemID)
		}
		if strings.TrimSpace(line.Name) == "" {
			return nil, validationErr("item name is required")
		}
		if line.Quantity < 1 {
			return nil, validationErr("quantity must be at least 1")
		}
		if line.Price < 0 {
			return nil, validationErr("price must be non-negative")
		}

		items = append(items, entity.OrderItem{
			MenuItem: oid,
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
		total += line.Price * float64(line.Quantity)
	}

	now := time.Now()
	order := &entity.Order{
		CustomerName: name,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		Note:         in.Note,
		Items:        items,
		TotalAmount:  total,
		Status:       entity.OrderStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.Customer != nil {
		id := in.Customer.ID
		order.CustomerID = &id
	}

	if err := s.store.Insert(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListAll returns every order, newest first.
func (s *OrderService) ListAll(ctx context.Context) ([]entity.Order, error) {
	return s.store.FindAll(ctx)
}

// ListForCustomer returns the caller's orders, newest first.
func (s *OrderService) ListForCustomer(ctx context.Context, customerID primitive.ObjectID) ([]entity.Order, error) {
	return s.store.FindByCustomer(ctx, customerID)
}

// UpdateStatus moves an order to the target status. Only enum membership
// is validated; transitions are otherwise unconstrained.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*entity.Order, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	order, err := s.store.UpdateStatus(ctx, oid, status)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	return order, err
}
