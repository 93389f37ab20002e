package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mwihoti/duka-api/models"
	"github.com/mwihoti/duka-api/routes"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupServer builds a gin engine with the real route wiring on top of an
// in-memory database.
func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every new connection to :memory: would get its own empty database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Coupon{},
		&models.Order{},
	))

	server := gin.New()
	routes.AuthRoutes(server, db)
	routes.ProductRoutes(server, db)
	routes.CartRoutes(server, db)
	routes.OrderRoutes(server, db)
	routes.CouponRoutes(server, db)
	routes.UserRoutes(server, db)
	return server, db
}

func doRequest(t *testing.T, server *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func registerUser(t *testing.T, server *gin.Engine, email, role string) (token string, userId int) {
	t.Helper()

	w := doRequest(t, server, http.MethodPost, "/auth/register", "", gin.H{
		"email":    email,
		"password": "password123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	user := body["user"].(map[string]any)
	return body["token"].(string), int(user["id"].(float64))
}

func createProduct(t *testing.T, server *gin.Engine, token, name string, price float64, stock int) int {
	t.Helper()

	w := doRequest(t, server, http.MethodPost, "/products", token, gin.H{
		"name":        name,
		"description": "test product",
		"price":       price,
		"category":    "general",
		"stock":       stock,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	product := decodeBody(t, w)["product"].(map[string]any)
	return int(product["ID"].(float64))
}

func createCoupon(t *testing.T, server *gin.Engine, token, code string, discount float64) int {
	t.Helper()

	w := doRequest(t, server, http.MethodPost, "/coupons", token, gin.H{
		"code":     code,
		"discount": discount,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	coupon := decodeBody(t, w)["coupon"].(map[string]any)
	return int(coupon["ID"].(float64))
}

func addFunds(t *testing.T, server *gin.Engine, token string, amount float64) {
	t.Helper()

	w := doRequest(t, server, http.MethodPost, "/user/add-funds", token, gin.H{"amount": amount})
	require.Equal(t, http.StatusOK, w.Code)
}

func addToCart(t *testing.T, server *gin.Engine, token string, productId, quantity int) {
	t.Helper()

	w := doRequest(t, server, http.MethodPost, "/cart/add", token, gin.H{
		"productId": productId,
		"quantity":  quantity,
	})
	require.Contains(t, []int{http.StatusOK, http.StatusCreated}, w.Code)
}

func getBalance(t *testing.T, server *gin.Engine, token string) float64 {
	t.Helper()

	w := doRequest(t, server, http.MethodGet, "/user/balance", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	return decodeBody(t, w)["balance"].(float64)
}
