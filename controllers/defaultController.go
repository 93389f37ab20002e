package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to Duka API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/register" - Create user account
- POST "/auth/login" - Access user account

PRODUCT
- GET "/products" - Browse in-stock products
- GET "/products/search" - Search products
- GET "/products/{id}" - Get product by ID
- POST "/products" - Create new product (sellers)
- DELETE "/products/{id}" - Delete product (owning seller)

CART
- GET "/cart" - Get your cart
- POST "/cart/add" - Add item to cart
- PATCH "/cart/update" - Update cart item quantity
- DELETE "/cart/remove" - Remove item from cart

ORDERS
- POST "/orders/checkout" - Convert cart to order
- GET "/orders" - List your orders

COUPONS
- POST "/coupons" - Create coupon (sellers)
- GET "/coupons" - List own coupons (sellers)
- PATCH "/coupons/{id}/toggle" - Toggle coupon (owning seller)
- DELETE "/coupons/{id}" - Delete coupon (owning seller)
- POST "/coupons/validate" - Validate a coupon code

USER
- GET "/user/profile" - Get your profile
- GET "/user/balance" - Get your balance
- POST "/user/add-funds" - Add funds to your balance`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
