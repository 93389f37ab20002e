package models

import "gorm.io/gorm"

type Coupon struct {
	gorm.Model
	Code     string  `json:"code" gorm:"uniqueIndex;size:191"`
	Discount float64 `json:"discount"`
	IsActive bool    `json:"isActive" gorm:"default:true"`
	SellerID int     `json:"sellerId"`
}

type CouponData struct {
	Code     string  `json:"code" binding:"required"`
	Discount float64 `json:"discount" binding:"required"`
}

type CouponCodeData struct {
	Code string `json:"code" binding:"required"`
}
