package models

import "gorm.io/gorm"

type Cart struct {
	gorm.Model
	UserID int        `json:"userId" gorm:"uniqueIndex"`
	Items  []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// CartItem holds one (product, quantity) line. At most one line exists per
// (cart, product); duplicate adds are merged by incrementing the quantity.
type CartItem struct {
	gorm.Model
	CartID    int     `json:"cartId"`
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product" gorm:"foreignKey:ProductID"`
}

type AddCartItemData struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity"`
}

type UpdateCartItemData struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity"`
}

type RemoveCartItemData struct {
	ProductID int `json:"productId" binding:"required"`
}
