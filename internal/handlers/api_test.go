// internal/handlers/api_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/atjshop/storefront/internal/config"
	"github.com/atjshop/storefront/internal/middleware"
	"github.com/atjshop/storefront/internal/services"
	"github.com/atjshop/storefront/internal/store/memory"
	"github.com/atjshop/storefront/internal/utils"
)

const (
	testAdminEmail    = "jessica@admin.com"
	testAdminPassword = "@jessicaA1"
)

type APITestSuite struct {
	suite.Suite
	router *gin.Engine
	st     *memory.Store
}

func (suite *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.st = memory.New(memory.Options{})
	suite.Require().NoError(suite.st.Seed(testAdminEmail, testAdminPassword))

	cfg := &config.Config{
		Environment: "test",
		JWT:         config.JWTConfig{SecretKey: "test-secret", AccessTokenTTL: 1},
	}
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	authService := services.NewAuthService(suite.st, cfg)
	productService := services.NewProductService(suite.st)
	cartService := services.NewCartService(suite.st)
	orderService := services.NewOrderService(suite.st, cartService)
	reviewService := services.NewReviewService(suite.st)
	adminService := services.NewAdminService(suite.st)

	authHandler := NewAuthHandler(authService)
	productHandler := NewProductHandler(productService)
	cartHandler := NewCartHandler(cartService)
	orderHandler := NewOrderHandler(orderService)
	reviewHandler := NewReviewHandler(reviewService, authService)
	adminHandler := NewAdminHandler(adminService)

	suite.router = gin.New()

	auth := suite.router.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
	}

	products := suite.router.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/featured", productHandler.GetFeaturedProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.GET("/:id/reviews", reviewHandler.GetProductReviews)
	}

	suite.router.GET("/categories", productHandler.GetCategories)

	cart := suite.router.Group("/cart", middleware.OptionalAuth())
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddItem)
		cart.PUT("/items/:productId", cartHandler.UpdateQuantity)
		cart.DELETE("/items/:productId", cartHandler.RemoveItem)
		cart.DELETE("", cartHandler.ClearCart)
	}

	orders := suite.router.Group("/orders", middleware.OptionalAuth())
	{
		orders.POST("", orderHandler.Checkout)
		orders.GET("/:id", orderHandler.TrackOrder)
	}

	admin := suite.router.Group("/admin", middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/dashboard/stats", adminHandler.GetDashboardStats)
		admin.GET("/orders", orderHandler.GetOrders)
		admin.PUT("/orders/:id/status", orderHandler.UpdateOrderStatus)
		admin.POST("/orders/:id/cancel", orderHandler.CancelOrder)
	}
}

func (suite *APITestSuite) do(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *APITestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (suite *APITestSuite) login(email, password string) string {
	w := suite.do("POST", "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	resp := suite.decode(w)
	authData := resp["data"].(map[string]interface{})["auth"].(map[string]interface{})
	return authData["access_token"].(string)
}

func (suite *APITestSuite) TestSignupAndProfile() {
	w := suite.do("POST", "/auth/signup", map[string]string{
		"name":     "New Customer",
		"email":    "new@example.com",
		"password": "supersecret1",
	}, nil)
	suite.Equal(http.StatusCreated, w.Code)

	resp := suite.decode(w)
	suite.True(resp["success"].(bool))
	authData := resp["data"].(map[string]interface{})["auth"].(map[string]interface{})
	token := authData["access_token"].(string)
	suite.NotEmpty(token)

	w = suite.do("GET", "/auth/me", nil, map[string]string{"Authorization": "Bearer " + token})
	suite.Equal(http.StatusOK, w.Code)
	resp = suite.decode(w)
	user := resp["data"].(map[string]interface{})["user"].(map[string]interface{})
	suite.Equal("new@example.com", user["email"])
}

func (suite *APITestSuite) TestSignupDuplicateEmail() {
	payload := map[string]string{
		"name":     "New Customer",
		"email":    "dup@example.com",
		"password": "supersecret1",
	}

	w := suite.do("POST", "/auth/signup", payload, nil)
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.do("POST", "/auth/signup", payload, nil)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *APITestSuite) TestLoginWrongPassword() {
	w := suite.do("POST", "/auth/login", map[string]string{
		"email":    testAdminEmail,
		"password": "wrong-password",
	}, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *APITestSuite) TestGetProducts() {
	w := suite.do("GET", "/products", nil, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("8", w.Header().Get("X-Total-Count"))

	resp := suite.decode(w)
	suite.True(resp["success"].(bool))
	suite.Len(resp["data"].([]interface{}), 8)
}

func (suite *APITestSuite) TestGetProductsFiltered() {
	w := suite.do("GET", "/products?category=Cameras&min_rating=4.8", nil, nil)
	suite.Equal(http.StatusOK, w.Code)

	resp := suite.decode(w)
	data := resp["data"].([]interface{})
	suite.Require().Len(data, 1)
	suite.Equal("p8", data[0].(map[string]interface{})["id"])
}

func (suite *APITestSuite) TestGetProductNotFound() {
	w := suite.do("GET", "/products/nope", nil, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestGetProductReviews() {
	w := suite.do("GET", "/products/p1/reviews", nil, nil)
	suite.Equal(http.StatusOK, w.Code)

	resp := suite.decode(w)
	reviews := resp["data"].(map[string]interface{})["reviews"].([]interface{})
	suite.Len(reviews, 2)
}

func (suite *APITestSuite) TestCartSessionIssuedForAnonymousClient() {
	w := suite.do("GET", "/cart", nil, nil)
	suite.Equal(http.StatusOK, w.Code)

	session := w.Header().Get("X-Cart-Session")
	suite.NotEmpty(session)

	// A provided session id is echoed back unchanged.
	w = suite.do("GET", "/cart", nil, map[string]string{"X-Cart-Session": session})
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(session, w.Header().Get("X-Cart-Session"))
}

func (suite *APITestSuite) TestCartAddAndRetrieve() {
	headers := map[string]string{"X-Cart-Session": "sess-test"}

	w := suite.do("POST", "/cart/items", map[string]interface{}{
		"product_id": "p1",
		"quantity":   2,
		"color":      "#000000",
	}, headers)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do("GET", "/cart", nil, headers)
	suite.Equal(http.StatusOK, w.Code)

	resp := suite.decode(w)
	data := resp["data"].(map[string]interface{})
	suite.EqualValues(2, data["item_count"])
	suite.InDelta(99.99*2, data["total"].(float64), 0.001)
}

func (suite *APITestSuite) TestCartAddUnknownProduct() {
	w := suite.do("POST", "/cart/items", map[string]interface{}{
		"product_id": "missing",
	}, map[string]string{"X-Cart-Session": "sess-test"})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestCheckoutFlow() {
	headers := map[string]string{"X-Cart-Session": "sess-checkout"}

	w := suite.do("POST", "/cart/items", map[string]interface{}{
		"product_id": "p2",
		"quantity":   1,
	}, headers)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.do("POST", "/orders", map[string]string{
		"name":    "Alice Buyer",
		"email":   "alice@example.com",
		"address": "12 High Street, Springfield",
		"country": "United States",
	}, headers)
	suite.Require().Equal(http.StatusCreated, w.Code)

	resp := suite.decode(w)
	order := resp["data"].(map[string]interface{})["order"].(map[string]interface{})
	suite.Equal("pending", order["status"])
	suite.InDelta(39.99, order["total_amount"].(float64), 0.001)

	// The cart is consumed by checkout.
	w = suite.do("GET", "/cart", nil, headers)
	suite.Equal(http.StatusOK, w.Code)
	data := suite.decode(w)["data"].(map[string]interface{})
	suite.EqualValues(0, data["item_count"])

	// The new order is publicly trackable.
	w = suite.do("GET", "/orders/"+order["id"].(string), nil, nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *APITestSuite) TestCheckoutEmptyCart() {
	w := suite.do("POST", "/orders", map[string]string{
		"name":    "Alice Buyer",
		"email":   "alice@example.com",
		"address": "12 High Street, Springfield",
		"country": "United States",
	}, map[string]string{"X-Cart-Session": "sess-empty"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestTrackOrderNotFound() {
	w := suite.do("GET", "/orders/ORD-00000", nil, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestAdminEndpointsRequireAdmin() {
	w := suite.do("GET", "/admin/orders", nil, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)

	// A regular customer token is not enough.
	w = suite.do("POST", "/auth/signup", map[string]string{
		"name":     "Plain Customer",
		"email":    "plain@example.com",
		"password": "supersecret1",
	}, nil)
	suite.Require().Equal(http.StatusCreated, w.Code)
	resp := suite.decode(w)
	token := resp["data"].(map[string]interface{})["auth"].(map[string]interface{})["access_token"].(string)

	w = suite.do("GET", "/admin/orders", nil, map[string]string{"Authorization": "Bearer " + token})
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *APITestSuite) TestAdminUpdateOrderStatus() {
	token := suite.login(testAdminEmail, testAdminPassword)
	headers := map[string]string{"Authorization": "Bearer " + token}

	w := suite.do("PUT", "/admin/orders/ORD-12347/status", map[string]string{"status": "shipped"}, headers)
	suite.Require().Equal(http.StatusOK, w.Code)

	resp := suite.decode(w)
	order := resp["data"].(map[string]interface{})["order"].(map[string]interface{})
	suite.Equal("shipped", order["status"])
	suite.NotEmpty(order["tracking_id"])
}

func (suite *APITestSuite) TestAdminInvalidTransitionConflicts() {
	token := suite.login(testAdminEmail, testAdminPassword)
	headers := map[string]string{"Authorization": "Bearer " + token}

	// ORD-12345 is already delivered.
	w := suite.do("PUT", "/admin/orders/ORD-12345/status", map[string]string{"status": "pending"}, headers)
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do("POST", "/admin/orders/ORD-12345/cancel", nil, headers)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *APITestSuite) TestAdminDashboardStats() {
	token := suite.login(testAdminEmail, testAdminPassword)

	w := suite.do("GET", "/admin/dashboard/stats", nil, map[string]string{"Authorization": "Bearer " + token})
	suite.Require().Equal(http.StatusOK, w.Code)

	resp := suite.decode(w)
	stats := resp["data"].(map[string]interface{})["stats"].(map[string]interface{})
	suite.EqualValues(8, stats["total_products"])
	suite.EqualValues(3, stats["total_orders"])
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
