package models

import "gorm.io/gorm"

const (
	RoleBuyer  = "BUYER"
	RoleSeller = "SELLER"
)

type User struct {
	gorm.Model
	Email    string  `json:"email" gorm:"uniqueIndex;size:191"`
	Password string  `json:"-"`
	Role     string  `json:"role" gorm:"default:BUYER"`
	Balance  float64 `json:"balance"`
}

type RegisterData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AddFundsData struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}
