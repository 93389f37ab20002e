package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mwihoti/duka-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countOrders(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	return count
}

func loadProduct(t *testing.T, db *gorm.DB, productId int) models.Product {
	t.Helper()
	var product models.Product
	require.NoError(t, db.First(&product, productId).Error)
	return product
}

func countCartItems(t *testing.T, db *gorm.DB, userId int) int64 {
	t.Helper()
	var cart models.Cart
	err := db.Where("user_id = ?", userId).First(&cart).Error
	if err != nil {
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
		return 0
	}
	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count).Error)
	return count
}

func TestCheckoutWithCouponDiscount(t *testing.T) {
	server, _ := setupServer(t)
	sellerToken, _ := registerUser(t, server, "seller@example.com", "SELLER")
	buyerToken, _ := registerUser(t, server, "buyer@example.com", "BUYER")
	productId := createProduct(t, server, sellerToken, "Speaker", 50, 10)
	createCoupon(t, server, sellerToken, "SAVE25", 25)

	addFunds(t, server, buyerToken, 200)
	addToCart(t, server, buyerToken, productId, 2)

	w := doRequest(t, server, http.MethodPost, "/orders/checkout", buyerToken, gin.H{
		"couponCode": "SAVE25",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["discountApplied"])
	assert.InDelta(t, 25, body["discountAmount"].(float64), 0.001)
	assert.InDelta(t, 75, body["finalTotal"].(float64), 0.001)

	order := body["order"].(map[string]any)
	assert.InDelta(t, 100, order["subtotal"].(float64), 0.001)
	assert.InDelta(t, 75, order["totalAmount"].(float64), 0.001)
	assert.Equal(t, "SAVE25", order["couponCode"])
	assert.Equal(t, "completed", order["status"])
	assert.NotEmpty(t, order["reference"])

	// Exactly the discounted total was debited.
	assert.InDelta(t, 125, getBalance(t, server, buyerToken), 0.001)
}

func TestCheckoutEmptyCart(t *testing.T) {
	server, _ := setupServer(t)
	buyerToken, _ := registerUser(t, server, "buyer@example.com", "BUYER")

	w := doRequest(t, server, http.MethodPost, "/orders/checkout", buyerToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cart is empty", decodeBody(t, w)["message"])
}

func TestCheckoutInsufficientStockNoMutation(t *testing.T) {
	server, db := setupServer(t)
	sellerToken, _ := registerUser(t, server, "seller@example.com", "SELLER")
	buyerToken, buyerId := registerUser(t, server, "buyer@example.com", "BUYER")
	productId := createProduct(t, server, sellerToken, "Scarce", 50, 10)

	addFunds(t, server, buyerToken, 500)
	addToCart(t, server, buyerToken, productId, 2)

	// Stock drops below the cart quantity after the item was added.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", productId).
		Update("stock", 1).Error)

	w := doRequest(t, server, http.MethodPost, "/orders/checkout", buyerToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w)["message"], "Scarce")

	// Nothing changed: no order, stock and balance intact, cart untouched.
	assert.EqualValues(t, 0, countOrders(t, db))
	assert.Equal(t, 1, loadProduct(t, db, productId).Stock)
	assert.InDelta(t, 500, getBalance(t, server, buyerToken), 0.001)
	assert.EqualValues(t, 1, countCartItems(t, db, buyerId))
}

func TestCheckoutInsufficientBalanceNoMutation(t *testing.T) {
	server, db := setupServer(t)
	sellerToken, _ := registerUser(t, server, "seller@example.com", "SELLER")
	buyerToken, buyerId := registerUser(t, server, "buyer@example.com", "BUYER")
	productId := createProduct(t, server, sellerToken, "Pricey", 50, 10)

	addFunds(t, server, buyerToken, 60)
	addToCart(t, server, buyerToken, productId, 2)

	w := doRequest(t, server, http.MethodPost, "/orders/checkout", buyerToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Insufficient balance", decodeBody(t, w)["message"])

	assert.EqualValues(t, 0, countOrders(t, db))
	assert.Equal(t, 10, loadProduct(t, db, productId).Stock)
	assert.InDelta(t, 60, getBalance(t, server, buyerToken), 0.001)
	assert.EqualValues(t, 1, countCartItems(t, db, buyerId))
}

func TestCheckoutClearsCartAndAdjustsStock(t *testing.T) {
	server, db := setupServer(t)
	sellerToken, _ := registerUser(t, server, "seller@example.com", "SELLER")
	buyerToken, buyerId := registerUser(t, server, "buyer@example.com", "BUYER")
	productId := createProduct(t, server, sellerToken, "Last Units", 25, 2)

	addFunds(t, server, buyerToken, 50)
	// Quantity equal to remaining stock is allowed.
	addToCart(t, server, buyerToken, productId, 2)

	w := doRequest(t, server, http.MethodPost, "/orders/checkout", buyerToken, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["discountApplied"])
	assert.InDelta(t, 50, body["finalTotal"].(float64), 0.001)

	product := loadProduct(t, db, productId)
	assert.Equal(t, 0, product.Stock)
	assert.False(t, product.InStock)

	assert.EqualValues(t, 0, countCartItems(t, db, buyerId))
	assert.InDelta(t, 0, getBalance(t, server, buyerToken), 0.001)
	assert.EqualValues(t, 1, countOrders(t, db))

	// The sold-out product disappears from the browse listing.
	w = doRequest(t, server, http.MethodGet, "/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestCheckoutFullDiscountCoupon(t *testing.T) {
	server, _ := setupServer(t)
	sellerToken, _ := registerUser(t, server, "seller@example.com", "SELLER")
	buyerToken, _ := registerUser(t, server, "buyer@example.com", "BUYER")
	productId := createProduct(t, server, sellerToken, "Freebie", 30, 5)
	createCoupon(t, server, sellerToken, "FREE100", 100)

	// No funds at all: a 100% discount still checks out.
	addToCart(t, server, buyerToken, productId, 1)

	w := doRequest(t, server, http.MethodPost, "/orders/checkout", buyerToken, gin.H{
		"couponCode": "FREE100",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.InDelta(t, 0, body["finalTotal"].(float64), 0.001)
	assert.InDelta(t, 30, body["discountAmount"].(float64), 0.001)
}

func TestCheckoutInvalidCoupon(t *testing.T) {
	server, _ := setupServer(t)
	sellerToken, _ := registerUser(t, server, "seller@example.com", "SELLER")
	buyerToken, _ := registerUser(t, server, "buyer@example.com", "BUYER")
	productId := createProduct(t, server, sellerToken, "Thing", 10, 5)

	addFunds(t, server, buyerToken, 100)
	addToCart(t, server, buyerToken, productId, 1)

	w := doRequest(t, server, http.MethodPost, "/orders/checkout", buyerToken, gin.H{
		"couponCode": "NO-SUCH-CODE",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid coupon code", decodeBody(t, w)["message"])
}

func TestCheckoutInactiveCoupon(t *testing.T) {
	server, db := setupServer(t)
	sellerToken, _ := registerUser(t, server, "seller@example.com", "SELLER")
	buyerToken, _ := registerUser(t, server, "buyer@example.com", "BUYER")
	productId := createProduct(t, server, sellerToken, "Thing", 10, 5)
	createCoupon(t, server, sellerToken, "DISABLED", 50)
	require.NoError(t, db.Model(&models.Coupon{}).Where("code = ?", "DISABLED").
		Update("is_active", false).Error)

	addFunds(t, server, buyerToken, 100)
	addToCart(t, server, buyerToken, productId, 1)

	w := doRequest(t, server, http.MethodPost, "/orders/checkout", buyerToken, gin.H{
		"couponCode": "DISABLED",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "This coupon is no longer active", decodeBody(t, w)["message"])
}

func TestGetOrdersListsOwnOrders(t *testing.T) {
	server, _ := setupServer(t)
	sellerToken, _ := registerUser(t, server, "seller@example.com", "SELLER")
	buyerToken, _ := registerUser(t, server, "buyer@example.com", "BUYER")
	otherToken, _ := registerUser(t, server, "other@example.com", "BUYER")
	productId := createProduct(t, server, sellerToken, "Thing", 10, 5)

	addFunds(t, server, buyerToken, 100)
	addToCart(t, server, buyerToken, productId, 1)
	w := doRequest(t, server, http.MethodPost, "/orders/checkout", buyerToken, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, server, http.MethodGet, "/orders", buyerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["orders"].([]any), 1)

	w = doRequest(t, server, http.MethodGet, "/orders", otherToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["orders"])
}
