package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const OrderStatusCompleted = "completed"

// Order is an immutable record of a completed checkout. Items holds a JSON
// snapshot of the purchased lines so later product edits cannot rewrite
// history.
type Order struct {
	gorm.Model
	Reference      string         `json:"reference" gorm:"size:64"`
	UserID         int            `json:"userId"`
	Items          datatypes.JSON `json:"items"`
	Subtotal       float64        `json:"subtotal"`
	DiscountAmount float64        `json:"discountAmount"`
	TotalAmount    float64        `json:"totalAmount"`
	CouponCode     string         `json:"couponCode,omitempty"`
	Status         string         `json:"status"`
}

// OrderLine is one entry of the order snapshot.
type OrderLine struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type CheckoutData struct {
	CouponCode string `json:"couponCode"`
}
