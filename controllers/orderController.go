package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mwihoti/duka-api/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Checkout converts the caller's cart into an order. Steps 1-5 validate
// against a consistent read of current state; the commit runs in a single
// transaction whose stock and balance decrements re-check their
// preconditions, so a concurrent checkout can never oversell a product or
// overdraw a balance. A lost race rolls everything back and surfaces as a
// retryable 409.
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := currentUserID(ctx)

		var checkoutData models.CheckoutData
		if ctx.Request.ContentLength > 0 {
			if err := ctx.ShouldBindJSON(&checkoutData); err != nil {
				sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
				return
			}
		}

		// Load the cart with lines and referenced products.
		var cart models.Cart
		err := db.Preload("Items.Product").Where("user_id = ?", userId).First(&cart).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) || len(cart.Items) == 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, "Cart is empty")
			return
		}

		// Verify stock per line and compute the subtotal. Quantity equal to
		// remaining stock is allowed.
		var subtotal float64
		for _, item := range cart.Items {
			if item.Quantity > item.Product.Stock {
				sendErrorResponse(ctx, http.StatusBadRequest,
					"Not enough stock for product: "+item.Product.Name)
				return
			}
			subtotal += float64(item.Quantity) * item.Product.Price
		}

		// Apply the coupon, if one was supplied.
		var discount float64
		var couponCode string
		if checkoutData.CouponCode != "" {
			var coupon models.Coupon
			if err := db.Where("code = ?", checkoutData.CouponCode).First(&coupon).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					sendErrorResponse(ctx, http.StatusBadRequest, "Invalid coupon code")
				} else {
					sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to validate coupon")
				}
				return
			}
			if !coupon.IsActive {
				sendErrorResponse(ctx, http.StatusBadRequest, "This coupon is no longer active")
				return
			}
			discount = subtotal * coupon.Discount / 100
			couponCode = coupon.Code
		}
		total := subtotal - discount

		var user models.User
		if err := db.First(&user, userId).Error; err != nil {
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
		if user.Balance < total {
			sendErrorResponse(ctx, http.StatusBadRequest, "Insufficient balance")
			return
		}

		// Snapshot the purchased lines so the order stays immutable even if
		// products change later.
		lines := make([]models.OrderLine, 0, len(cart.Items))
		for _, item := range cart.Items {
			lines = append(lines, models.OrderLine{
				ProductID: item.ProductID,
				Name:      item.Product.Name,
				Price:     item.Product.Price,
				Quantity:  item.Quantity,
			})
		}
		snapshot, err := json.Marshal(lines)
		if err != nil {
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		order := models.Order{
			Reference:      uuid.NewString(),
			UserID:         userId,
			Items:          datatypes.JSON(snapshot),
			Subtotal:       subtotal,
			DiscountAmount: discount,
			TotalAmount:    total,
			CouponCode:     couponCode,
			Status:         models.OrderStatusCompleted,
		}

		tx := db.Begin()
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
			}
		}()

		if err := tx.Create(&order).Error; err != nil {
			tx.Rollback()
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
			return
		}

		// Guarded decrements: the WHERE clause re-checks the precondition
		// under the transaction, and in_stock is assigned before stock so
		// both read the pre-update value.
		for _, item := range cart.Items {
			result := tx.Exec(
				"UPDATE products SET in_stock = stock - ? > 0, stock = stock - ? WHERE id = ? AND stock >= ? AND deleted_at IS NULL",
				item.Quantity, item.Quantity, item.ProductID, item.Quantity,
			)
			if result.Error != nil {
				tx.Rollback()
				sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update stock")
				return
			}
			if result.RowsAffected == 0 {
				tx.Rollback()
				sendErrorResponse(ctx, http.StatusConflict,
					"Checkout conflicted with another purchase, please retry")
				return
			}
		}

		result := tx.Exec(
			"UPDATE users SET balance = balance - ? WHERE id = ? AND balance >= ? AND deleted_at IS NULL",
			total, userId, total,
		)
		if result.Error != nil {
			tx.Rollback()
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update balance")
			return
		}
		if result.RowsAffected == 0 {
			tx.Rollback()
			sendErrorResponse(ctx, http.StatusConflict,
				"Checkout conflicted with another purchase, please retry")
			return
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			tx.Rollback()
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to clear cart")
			return
		}

		if err := tx.Commit().Error; err != nil {
			log.Println("Checkout commit error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to place order")
			return
		}

		sendJSONResponse(ctx, http.StatusCreated, gin.H{
			"message":         "Order placed successfully.",
			"order":           order,
			"discountApplied": discount > 0,
			"discountAmount":  discount,
			"finalTotal":      total,
		})
	}
}

// GetOrders lists the caller's past orders, newest first.
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		orders := []models.Order{}
		result := db.Where("user_id = ?", currentUserID(ctx)).
			Order("created_at desc").
			Find(&orders)
		if result.Error != nil {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
	}
}
