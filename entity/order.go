package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderStatusPending        = "pending"
	OrderStatusConfirmed      = "confirmed"
	OrderStatusPreparing      = "preparing"
	OrderStatusOutForDelivery = "out-for-delivery"
	OrderStatusCompleted      = "completed"
	OrderStatusCancelled      = "cancelled"
)

// OrderStatuses lists every status an order may hold. Any status may move
// to any other; only membership is enforced.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusOutForDelivery,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// OrderItem is a cart line captured at checkout. Name and price are
// snapshots; they are never re-read from the catalog after creation.
type OrderItem struct {
	MenuItem primitive.ObjectID `bson:"menuItem" json:"menuItem"`
	Name     string             `bson:"name" json:"name"`
	Price    float64            `bson:"price" json:"price"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

type Order struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	CustomerID   *primitive.ObjectID `bson:"customerId,omitempty" json:"customerId,omitempty"`
	CustomerName string              `bson:"customerName" json:"customerName"`
	Email        string              `bson:"email" json:"email"`
	Phone        string              `bson:"phone" json:"phone"`
	Address      string              `bson:"address" json:"address"`
	Note         string              `bson:"note,omitempty" json:"note,omitempty"`
	Items        []OrderItem         `bson:"items" json:"items"`
	TotalAmount  float64             `bson:"totalAmount" json:"totalAmount"`
	Status       string              `bson:"status" json:"status"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt" json:"updatedAt"`
}
