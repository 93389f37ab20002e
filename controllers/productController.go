package controllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mwihoti/duka-api/models"
	"gorm.io/gorm"
)

// CreateProduct registers a new product owned by the calling seller.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var product models.Product
		if err := ctx.ShouldBindJSON(&product); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		if product.Stock < 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, "Stock cannot be negative")
			return
		}

		product.SellerID = currentUserID(ctx)
		product.InStock = product.Stock > 0

		if err := db.Create(&product).Error; err != nil {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create product")
			return
		}

		sendJSONResponse(ctx, http.StatusCreated, gin.H{
			"message": "Product created successfully",
			"product": product,
		})
	}
}

// GetProducts lists products currently in stock.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		products := []models.Product{}
		if err := db.Where("in_stock = ?", true).Find(&products).Error; err != nil {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch products")
			return
		}

		ctx.JSON(http.StatusOK, products)
	}
}

// SearchProducts filters the catalog by name substring, category and price
// range, with pagination.
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		query := db.Model(&models.Product{})

		if search := ctx.Query("query"); search != "" {
			query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
		}
		if category := ctx.Query("category"); category != "" {
			query = query.Where("LOWER(category) = ?", strings.ToLower(category))
		}
		if minPrice := ctx.Query("minPrice"); minPrice != "" {
			if price, err := strconv.ParseFloat(minPrice, 64); err == nil {
				query = query.Where("price >= ?", price)
			}
		}
		if maxPrice := ctx.Query("maxPrice"); maxPrice != "" {
			if price, err := strconv.ParseFloat(maxPrice, 64); err == nil {
				query = query.Where("price <= ?", price)
			}
		}

		page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
		if limit < 1 {
			limit = 10
		}
		offset := (page - 1) * limit

		var count int64
		if err := query.Count(&count).Error; err != nil {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to search products")
			return
		}

		products := []models.Product{}
		if err := query.Limit(limit).Offset(offset).Find(&products).Error; err != nil {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to search products")
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"totalProducts": count,
			"totalPages":    int(math.Ceil(float64(count) / float64(limit))),
			"currentPage":   page,
			"products":      products,
		})
	}
}

func GetProduct(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		productId, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
			return
		}

		var product models.Product
		if err := db.First(&product, productId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
			} else {
				sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to retrieve product")
			}
			return
		}

		ctx.JSON(http.StatusOK, product)
	}
}

// DeleteProduct removes a product; only the owning seller may do so.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		productId, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
			return
		}

		var product models.Product
		if err := db.First(&product, productId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
			} else {
				sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to retrieve product")
			}
			return
		}

		if product.SellerID != currentUserID(ctx) {
			sendErrorResponse(ctx, http.StatusForbidden, "You do not own this product")
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete product")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
