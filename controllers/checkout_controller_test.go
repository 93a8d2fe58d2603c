package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"frushh/middleware"
	"frushh/models"
	"frushh/repositories"
	"frushh/repositories/mocks"
	"frushh/services"
	"frushh/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	router    *gin.Engine
	token     string
	orders    *mocks.MockOrderRepository
	discounts *mocks.MockDiscountRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockCatalogRepository(ctrl)
	customers := mocks.NewMockCustomerRepository(ctrl)
	loyalty := mocks.NewMockLoyaltyRepository(ctrl)
	env := &testEnv{
		orders:    mocks.NewMockOrderRepository(ctrl),
		discounts: mocks.NewMockDiscountRepository(ctrl),
	}

	catalog.EXPECT().GetProduct(gomock.Any(), 1).Return(&models.Product{
		ID: 1, Name: "Chocolate Peanut Butter", Price250ml: 79, Price350ml: 99, Protein250ml: 15, Protein350ml: 22, IsActive: true,
	}, nil).AnyTimes()
	catalog.EXPECT().GetAddons(gomock.Any(), []int{1}).Return([]models.CatalogAddon{
		{ID: 1, Name: "Chia Seeds", Price: 10, IsActive: true},
	}, nil).AnyTimes()

	customers.EXPECT().FindByID(gomock.Any(), 1).Return(&models.User{ID: 1, Name: "Asha", Email: "asha@example.com"}, nil).AnyTimes()
	customers.EXPECT().TierMultiplier(gomock.Any(), 1).Return(1.0, nil).AnyTimes()
	customers.EXPECT().IsFirstTimeCustomer(gomock.Any(), 1, "asha@example.com", "").Return(true, nil).AnyTimes()
	customers.EXPECT().RecordFirstOrder(gomock.Any(), "asha@example.com", "").Return(nil).AnyTimes()
	loyalty.EXPECT().CreditOrderPoints(gomock.Any(), 1, gomock.Any(), 10, gomock.Any()).Return(nil).AnyTimes()

	logger := testr.New(t)
	cartService := services.NewCartService(catalog)
	discountService := services.NewDiscountService(env.discounts)
	customerService := services.NewCustomerService(customers)
	orderService := services.NewOrderService(services.OrderDeps{
		Orders:    env.orders,
		Discounts: env.discounts,
		Customers: customers,
		Loyalty:   loyalty,
	}, cartService, discountService, customerService, services.OrderConfig{
		BaseOrderPoints:   10,
		SideEffectRetries: 1,
		RetryInterval:     time.Millisecond,
	}, logger)

	checkoutCtrl := NewCheckoutController(cartService, discountService, customerService, orderService)
	orderCtrl := NewOrderController(orderService)

	router := gin.New()
	authed := router.Group("/", middleware.AuthMiddleware())
	authed.POST("/cart/price", checkoutCtrl.PriceCart)
	authed.POST("/checkout/discount", checkoutCtrl.ApplyDiscount)
	authed.POST("/checkout", checkoutCtrl.Checkout)
	authed.PATCH("/admin/orders/:number/status", middleware.AdminMiddleware(), orderCtrl.UpdateOrderStatus)
	env.router = router

	token, err := utils.GenerateToken(1, "asha@example.com", models.RoleAdmin)
	require.NoError(t, err)
	env.token = token
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.token)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	return w, decoded
}

var scenarioItems = []map[string]any{
	{"product_id": 1, "size": "250ml", "quantity": 1},
	{"product_id": 1, "size": "350ml", "quantity": 1, "addon_ids": []int{1}},
}

var delivery = map[string]any{"address": "12 MG Road", "slot_name": "Morning", "slot_start": "7 AM", "slot_end": "9 AM"}

func TestPriceCartEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.do(t, http.MethodPost, "/cart/price", map[string]any{"items": scenarioItems}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	totals := body["data"].(map[string]any)["totals"].(map[string]any)
	assert.EqualValues(t, 188, totals["subtotal"])
	assert.EqualValues(t, 37, totals["total_protein"])
}

func TestPriceCartEndpoint_BadSize(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.do(t, http.MethodPost, "/cart/price", map[string]any{
		"items": []map[string]any{{"product_id": 1, "size": "1l", "quantity": 1}},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestApplyDiscountEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.discounts.EXPECT().FindActiveCoupon(gomock.Any(), "WELCOME25").Return(&models.Coupon{
		ID: 1, Code: "WELCOME25", DiscountType: models.DiscountFlat, DiscountValue: 25, IsFirstOrderOnly: true, IsActive: true,
	}, nil)
	env.discounts.EXPECT().FindActiveCoupon(gomock.Any(), "NOPE").Return(nil, repositories.ErrNotFound)
	env.discounts.EXPECT().FindActiveReferralCode(gomock.Any(), "NOPE").Return(nil, repositories.ErrNotFound)

	w, body := env.do(t, http.MethodPost, "/checkout/discount", map[string]any{"code": "welcome25", "items": scenarioItems}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	quote := body["data"].(map[string]any)
	assert.EqualValues(t, 25, quote["discount"])
	assert.EqualValues(t, 163, quote["total"])
	assert.Equal(t, "coupon", quote["type"])

	w, body = env.do(t, http.MethodPost, "/checkout/discount", map[string]any{"code": "nope", "items": scenarioItems}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, services.ErrInvalidCode.Error(), body["error"])
}

func TestCheckoutEndpoint_IdempotentReplay(t *testing.T) {
	env := newTestEnv(t)

	var stored *models.Order
	env.orders.EXPECT().FindByIdempotencyKey(gomock.Any(), 1, "abc123").DoAndReturn(
		func(context.Context, int, string) (*models.Order, error) {
			if stored == nil {
				return nil, repositories.ErrNotFound
			}
			return stored, nil
		}).AnyTimes()
	env.orders.EXPECT().OrderNumberExists(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	env.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o *models.Order) error {
			stored = o
			return nil
		}).Times(1)

	payload := map[string]any{"items": scenarioItems, "delivery": delivery}
	headers := map[string]string{idempotencyHeader: "abc123"}

	w, body := env.do(t, http.MethodPost, "/checkout", payload, headers)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	first := body["data"].(map[string]any)
	order := first["order"].(map[string]any)
	assert.EqualValues(t, 188, order["total"])
	assert.Equal(t, "pending", order["status"])
	assert.EqualValues(t, 10, first["points_awarded"])

	w, body = env.do(t, http.MethodPost, "/checkout", payload, headers)
	require.Equal(t, http.StatusOK, w.Code)
	second := body["data"].(map[string]any)
	assert.Equal(t, true, second["replayed"])
	assert.Equal(t, order["order_number"], second["order"].(map[string]any)["order_number"])
}

func TestCheckoutEndpoint_KeyFromBody(t *testing.T) {
	env := newTestEnv(t)
	env.orders.EXPECT().FindByIdempotencyKey(gomock.Any(), 1, "body-key").Return(nil, repositories.ErrNotFound).Times(2)
	env.orders.EXPECT().OrderNumberExists(gomock.Any(), gomock.Any()).Return(false, nil)
	env.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	w, _ := env.do(t, http.MethodPost, "/checkout", map[string]any{
		"idempotency_key": "body-key", "items": scenarioItems, "delivery": delivery,
	}, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCheckoutEndpoint_Errors(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.do(t, http.MethodPost, "/checkout", map[string]any{"items": scenarioItems, "delivery": delivery}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, services.ErrMissingIdempotencyKey.Error(), body["error"])

	env.orders.EXPECT().FindByIdempotencyKey(gomock.Any(), 1, "empty").Return(nil, repositories.ErrNotFound)
	w, body = env.do(t, http.MethodPost, "/checkout", map[string]any{"delivery": delivery}, map[string]string{idempotencyHeader: "empty"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, services.ErrEmptyCart.Error(), body["error"])
}

func TestCheckoutEndpoint_RejectedCodeChargesFullPrice(t *testing.T) {
	env := newTestEnv(t)
	env.orders.EXPECT().FindByIdempotencyKey(gomock.Any(), 1, "k-full").Return(nil, repositories.ErrNotFound).Times(2)
	env.orders.EXPECT().OrderNumberExists(gomock.Any(), gomock.Any()).Return(false, nil)
	env.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	env.discounts.EXPECT().FindActiveCoupon(gomock.Any(), "NOPE").Return(nil, repositories.ErrNotFound)
	env.discounts.EXPECT().FindActiveReferralCode(gomock.Any(), "NOPE").Return(nil, repositories.ErrNotFound)

	w, body := env.do(t, http.MethodPost, "/checkout", map[string]any{
		"items": scenarioItems, "delivery": delivery, "discount_code": "nope",
	}, map[string]string{idempotencyHeader: "k-full"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := body["data"].(map[string]any)
	assert.Equal(t, services.ErrInvalidCode.Error(), data["discount_rejected"])
	assert.EqualValues(t, 188, data["order"].(map[string]any)["total"])
	assert.Equal(t, "Order placed at full price, discount not applied", body["message"])
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.orders.EXPECT().FindByNumber(gomock.Any(), "FRS1").Return(&models.Order{ID: "o1", OrderNumber: "FRS1", Status: models.StatusDelivered}, nil)
	env.orders.EXPECT().FindByNumber(gomock.Any(), "FRS404").Return(nil, repositories.ErrNotFound)

	w, _ := env.do(t, http.MethodPatch, "/admin/orders/FRS1/status", map[string]any{"status": "cancelled"}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = env.do(t, http.MethodPatch, "/admin/orders/FRS404/status", map[string]any{"status": "confirmed"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
