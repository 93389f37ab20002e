package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Category    string  `json:"category" binding:"required"`
	Stock       int     `json:"stock"`
	InStock     bool    `json:"inStock"`
	SellerID    int     `json:"sellerId"`
}
