package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwihoti/duka-api/models"
	"gorm.io/gorm"
)

func getOrCreateCart(db *gorm.DB, userId int) (models.Cart, error) {
	var cart models.Cart
	err := db.Where("user_id = ?", userId).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userId}
		err = db.Create(&cart).Error
	}
	return cart, err
}

// AddToCart adds a product to the caller's cart, creating the cart lazily.
// Adding a product already in the cart increments the existing line instead
// of duplicating it.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := currentUserID(ctx)

		var input models.AddCartItemData
		if err := ctx.ShouldBindJSON(&input); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		quantity := input.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if quantity < 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, "Quantity must be greater than zero")
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
			} else {
				sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to validate product")
			}
			return
		}

		if !product.InStock || product.Stock < quantity {
			sendErrorResponse(ctx, http.StatusBadRequest, "Product out of stock or insufficient quantity")
			return
		}

		cart, err := getOrCreateCart(db, userId)
		if err != nil {
			log.Println("Cart lookup error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
			return
		}

		var item models.CartItem
		err = db.Where("cart_id = ? AND product_id = ?", cart.ID, input.ProductID).First(&item).Error
		if err == nil {
			item.Quantity += quantity
			if err := db.Save(&item).Error; err != nil {
				sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to update cart item")
				return
			}
			item.Product = product

			sendJSONResponse(ctx, http.StatusOK, gin.H{
				"message":  "Cart updated successfully",
				"cartItem": item,
			})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch cart item")
			return
		}

		item = models.CartItem{
			CartID:    int(cart.ID),
			ProductID: input.ProductID,
			Quantity:  quantity,
		}
		if err := db.Create(&item).Error; err != nil {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to add item to cart")
			return
		}
		item.Product = product

		sendJSONResponse(ctx, http.StatusCreated, gin.H{
			"message":  "Item added to cart",
			"cartItem": item,
		})
	}
}

// UpdateCartItem overwrites a line's quantity; a quantity of zero removes
// the line.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := currentUserID(ctx)

		var input models.UpdateCartItemData
		if err := ctx.ShouldBindJSON(&input); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userId).First(&cart).Error; err != nil {
			sendErrorResponse(ctx, http.StatusNotFound, "Cart not found")
			return
		}

		var item models.CartItem
		err := db.Preload("Product").
			Where("cart_id = ? AND product_id = ?", cart.ID, input.ProductID).
			First(&item).Error
		if err != nil {
			sendErrorResponse(ctx, http.StatusNotFound, "Item not found in cart")
			return
		}

		if input.Quantity <= 0 {
			if err := db.Delete(&item).Error; err != nil {
				sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to remove item")
				return
			}
			sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Item removed from cart"})
			return
		}

		if item.Product.Stock < input.Quantity {
			sendErrorResponse(ctx, http.StatusBadRequest, "Insufficient stock")
			return
		}

		item.Quantity = input.Quantity
		if err := db.Save(&item).Error; err != nil {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update cart item")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message":  "Cart updated successfully",
			"cartItem": item,
		})
	}
}

// RemoveFromCart deletes a line from the caller's cart.
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := currentUserID(ctx)

		var input models.RemoveCartItemData
		if err := ctx.ShouldBindJSON(&input); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userId).First(&cart).Error; err != nil {
			sendErrorResponse(ctx, http.StatusNotFound, "Cart not found")
			return
		}

		result := db.Where("cart_id = ? AND product_id = ?", cart.ID, input.ProductID).
			Delete(&models.CartItem{})
		if result.Error != nil {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to remove item")
			return
		}
		if result.RowsAffected == 0 {
			sendErrorResponse(ctx, http.StatusNotFound, "Item not found in cart")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}

// GetCart returns the caller's cart lines joined with product details plus
// the running total. Users without a cart get an empty representation.
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := currentUserID(ctx)

		var cart models.Cart
		err := db.Preload("Items.Product").Where("user_id = ?", userId).First(&cart).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendJSONResponse(ctx, http.StatusOK, gin.H{
					"id":     nil,
					"userId": userId,
					"items":  []models.CartItem{},
					"total":  0,
				})
				return
			}
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
			return
		}

		var total float64
		for _, item := range cart.Items {
			total += float64(item.Quantity) * item.Product.Price
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"id":     cart.ID,
			"userId": cart.UserID,
			"items":  cart.Items,
			"total":  total,
		})
	}
}
