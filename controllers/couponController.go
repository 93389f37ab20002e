package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mwihoti/duka-api/models"
	"gorm.io/gorm"
)

// findOwnedCoupon loads a coupon and checks it belongs to the seller. The
// returned status is 0 when the coupon is found and owned.
func findOwnedCoupon(db *gorm.DB, couponId, sellerId int) (models.Coupon, int, string) {
	var coupon models.Coupon
	if err := db.First(&coupon, couponId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return coupon, http.StatusNotFound, "Coupon not found"
		}
		return coupon, http.StatusInternalServerError, msgInternalServerError
	}
	if coupon.SellerID != sellerId {
		return coupon, http.StatusForbidden, "You don't have permission to modify this coupon"
	}
	return coupon, 0, ""
}

// CreateCoupon registers a new discount code for the calling seller.
func CreateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input models.CouponData
		if err := ctx.ShouldBindJSON(&input); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		if input.Discount <= 0 || input.Discount > 100 {
			sendErrorResponse(ctx, http.StatusBadRequest, "Valid code and discount percentage (1-100) are required")
			return
		}

		var existing models.Coupon
		result := db.Where("code = ?", input.Code).Find(&existing)
		if result.Error != nil {
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
		if result.RowsAffected > 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, "Coupon code already exists")
			return
		}

		coupon := models.Coupon{
			Code:     input.Code,
			Discount: input.Discount,
			IsActive: true,
			SellerID: currentUserID(ctx),
		}
		if err := db.Create(&coupon).Error; err != nil {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create coupon")
			return
		}

		sendJSONResponse(ctx, http.StatusCreated, gin.H{
			"message": "Coupon created successfully",
			"coupon":  coupon,
		})
	}
}

// GetSellerCoupons lists the calling seller's own coupons.
func GetSellerCoupons(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		coupons := []models.Coupon{}
		if err := db.Where("seller_id = ?", currentUserID(ctx)).Find(&coupons).Error; err != nil {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch coupons")
			return
		}

		ctx.JSON(http.StatusOK, coupons)
	}
}

// ToggleCouponStatus flips a coupon between active and inactive.
func ToggleCouponStatus(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		couponId, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid coupon ID")
			return
		}

		coupon, status, message := findOwnedCoupon(db, couponId, currentUserID(ctx))
		if status != 0 {
			sendErrorResponse(ctx, status, message)
			return
		}

		coupon.IsActive = !coupon.IsActive
		if err := db.Model(&coupon).Update("is_active", coupon.IsActive).Error; err != nil {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update coupon")
			return
		}

		statusMessage := "Coupon deactivated"
		if coupon.IsActive {
			statusMessage = "Coupon activated"
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": statusMessage,
			"coupon":  coupon,
		})
	}
}

// DeleteCoupon removes a coupon owned by the calling seller.
func DeleteCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		couponId, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid coupon ID")
			return
		}

		coupon, status, message := findOwnedCoupon(db, couponId, currentUserID(ctx))
		if status != 0 {
			sendErrorResponse(ctx, status, message)
			return
		}

		if err := db.Delete(&coupon).Error; err != nil {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete coupon")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Coupon deleted successfully"})
	}
}

// ValidateCoupon checks a code on behalf of a buyer before checkout.
func ValidateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input models.CouponCodeData
		if err := ctx.ShouldBindJSON(&input); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Coupon code is required")
			return
		}

		var coupon models.Coupon
		if err := db.Where("code = ?", input.Code).First(&coupon).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, "Invalid coupon code")
			} else {
				sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to validate coupon")
			}
			return
		}

		if !coupon.IsActive {
			sendErrorResponse(ctx, http.StatusBadRequest, "This coupon is no longer active")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"valid":    true,
			"discount": coupon.Discount,
		})
	}
}
