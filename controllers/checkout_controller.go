package controllers

import (
	"errors"
	"net/http"
	"strings"

	"frushh/middleware"
	"frushh/models"
	"frushh/services"

	"github.com/gin-gonic/gin"
)

const idempotencyHeader = "Idempotency-Key"

type CheckoutController struct {
	cartService     *services.CartService
	discountService *services.DiscountService
	customerService *services.CustomerService
	orderService    *services.OrderService
}

func NewCheckoutController(
	cartService *services.CartService,
	discountService *services.DiscountService,
	customerService *services.CustomerService,
	orderService *services.OrderService,
) *CheckoutController {
	return &CheckoutController{
		cartService:     cartService,
		discountService: discountService,
		customerService: customerService,
		orderService:    orderService,
	}
}

// @Summary Price cart
// @Description Price cart lines from catalog prices
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.PriceCartRequest true "Cart lines"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/price [post]
func (ctrl *CheckoutController) PriceCart(c *gin.Context) {
	var req models.PriceCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	cart, err := ctrl.cartService.BuildCart(c.Request.Context(), req.Items)
	if err != nil {
		respondError(c, "Failed to price cart", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart priced",
		Data: gin.H{
			"lines":  cart.Lines,
			"totals": services.PriceCart(cart),
		},
	})
}

// @Summary Apply discount
// @Description Resolve a coupon or referral code against the cart
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ApplyDiscountRequest true "Code and cart lines"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /checkout/discount [post]
func (ctrl *CheckoutController) ApplyDiscount(c *gin.Context) {
	var req models.ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx := c.Request.Context()
	customer, err := ctrl.customerService.Identify(ctx, middleware.CustomerID(c))
	if err != nil {
		respondError(c, "Failed to load customer", err)
		return
	}

	cart, err := ctrl.cartService.BuildCart(ctx, req.Items)
	if err != nil {
		respondError(c, "Failed to price cart", err)
		return
	}
	subtotal := services.PriceCart(cart).Subtotal

	resolution, err := ctrl.discountService.Resolve(ctx, req.Code, subtotal, *customer)
	if err != nil {
		respondError(c, "Discount not applied", err)
		return
	}

	quote := models.DiscountQuote{
		Code:     resolution.DiscountCode(),
		Type:     resolution.Kind(),
		Discount: resolution.DiscountAmount(),
		Subtotal: subtotal,
		Total:    subtotal - resolution.DiscountAmount(),
	}
	if r, ok := resolution.(models.ReferralDiscount); ok {
		quote.Referrer = r.ReferrerName
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Discount applied",
		Data:    quote,
	})
}

// @Summary Place order
// @Description Place a cash-on-delivery order. Retrying with the same idempotency key returns the original order. A discount code that cannot be applied does not block the order; it is placed at full price and discount_rejected says why.
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key (or idempotency_key in the body)"
// @Param request body models.CheckoutRequest true "Checkout Request"
// @Success 201 {object} models.Response
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	key := strings.TrimSpace(c.GetHeader(idempotencyHeader))
	if key == "" {
		key = strings.TrimSpace(req.IdempotencyKey)
	}

	result, err := ctrl.orderService.Checkout(c.Request.Context(), services.CheckoutInput{
		UserID:         middleware.CustomerID(c),
		IdempotencyKey: key,
		Items:          req.Items,
		DiscountCode:   req.DiscountCode,
		Delivery:       req.Delivery,
		Notes:          req.Notes,
	})
	if err != nil {
		respondError(c, "Checkout failed", err)
		return
	}

	status, message := http.StatusCreated, "Order placed successfully"
	if result.Replayed {
		status, message = http.StatusOK, "Order already placed"
	}

	data := models.CheckoutResponse{
		Order:         result.Order,
		PointsAwarded: result.PointsAwarded,
		Replayed:      result.Replayed,
		Summary:       result.Summary,
		WhatsAppURL:   result.WhatsAppURL,
	}
	if result.DiscountRejection != nil {
		message = "Order placed at full price, discount not applied"
		data.DiscountRejected = discountRejectionMessage(result.DiscountRejection)
	}

	c.JSON(status, models.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// discountRejectionMessage keeps storage details out of the response.
func discountRejectionMessage(err error) string {
	if errors.Is(err, services.ErrDiscountUnavailable) {
		return services.ErrDiscountUnavailable.Error()
	}
	return err.Error()
}
