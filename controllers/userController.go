package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwihoti/duka-api/models"
	"gorm.io/gorm"
)

// GetProfile returns the authenticated user's account details.
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var user models.User
		if err := db.First(&user, currentUserID(ctx)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, "User not found")
			} else {
				sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			}
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"id":      user.ID,
			"email":   user.Email,
			"role":    user.Role,
			"balance": user.Balance,
		})
	}
}

// GetBalance returns the user's spendable credit.
func GetBalance(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var user models.User
		if err := db.First(&user, currentUserID(ctx)).Error; err != nil {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"balance": user.Balance})
	}
}

// AddFunds credits the user's balance.
func AddFunds(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := currentUserID(ctx)

		var input models.AddFundsData
		if err := ctx.ShouldBindJSON(&input); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Valid amount is required")
			return
		}

		result := db.Model(&models.User{}).
			Where("id = ?", userId).
			Update("balance", gorm.Expr("balance + ?", input.Amount))
		if result.Error != nil {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to add funds")
			return
		}

		var user models.User
		if err := db.First(&user, userId).Error; err != nil {
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "Funds added successfully",
			"user": gin.H{
				"id":      user.ID,
				"email":   user.Email,
				"balance": user.Balance,
			},
		})
	}
}
