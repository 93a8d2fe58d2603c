package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"frushh/models"
	"frushh/repositories"
	"frushh/utils"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName           = "frushh/services"
	orderNumberAttempts  = 5
	defaultRetryInterval = 100 * time.Millisecond
)

type OrderConfig struct {
	OrderPrefix       string
	BaseOrderPoints   int
	SideEffectRetries uint
	RetryInterval     time.Duration
	WhatsAppNumber    string
}

type OrderDeps struct {
	Orders    repositories.OrderRepository
	Discounts repositories.DiscountRepository
	Customers repositories.CustomerRepository
	Loyalty   repositories.LoyaltyRepository
	Locker    repositories.IdempotencyLocker
}

type OrderService struct {
	orderRepo    repositories.OrderRepository
	discountRepo repositories.DiscountRepository
	customerRepo repositories.CustomerRepository
	loyaltyRepo  repositories.LoyaltyRepository
	locker       repositories.IdempotencyLocker

	carts     *CartService
	discounts *DiscountService
	customers *CustomerService

	cfg        OrderConfig
	log        logr.Logger
	now        func() time.Time
	randSuffix func() int
	newID      func() string
}

func NewOrderService(deps OrderDeps, carts *CartService, discounts *DiscountService, customers *CustomerService, cfg OrderConfig, logger logr.Logger) *OrderService {
	if cfg.OrderPrefix == "" {
		cfg.OrderPrefix = "FRS"
	}
	if cfg.SideEffectRetries == 0 {
		cfg.SideEffectRetries = 1
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = defaultRetryInterval
	}
	if logger.GetSink() == nil {
		logger = logr.Discard()
	}

	return &OrderService{
		orderRepo:    deps.Orders,
		discountRepo: deps.Discounts,
		customerRepo: deps.Customers,
		loyaltyRepo:  deps.Loyalty,
		locker:       deps.Locker,
		carts:        carts,
		discounts:    discounts,
		customers:    customers,
		cfg:          cfg,
		log:          logger.WithName("orders"),
		now:          time.Now,
		randSuffix:   func() int { return rand.IntN(1000) },
		newID:        uuid.NewString,
	}
}

type PlaceOrderInput struct {
	IdempotencyKey string
	Customer       models.Customer
	Cart           models.Cart
	Discount       models.DiscountResolution
	Delivery       models.Delivery
	Notes          string
}

type PlaceOrderResult struct {
	Order         *models.Order
	PointsAwarded int
	Replayed      bool
	Summary       string
	WhatsAppURL   string
	// DiscountRejection is set when Checkout dropped the submitted code and
	// placed the order at full price.
	DiscountRejection error
}

// idempotencyScope namespaces a client key by customer. Two customers may
// send the same key without ever seeing each other's order.
func idempotencyScope(userID int, key string) string {
	return strconv.Itoa(userID) + ":" + key
}

// PlaceOrder persists a priced cart as a pending order. Calling it again
// with the same idempotency key for the same customer returns the order
// created the first time.
// Only persistence failures are returned once the order is valid; usage,
// referral, points and first-order bookkeeping failures are logged.
func (s *OrderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*PlaceOrderResult, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "OrderService.PlaceOrder")
	defer span.End()

	key := strings.TrimSpace(in.IdempotencyKey)
	if key == "" {
		return nil, ErrMissingIdempotencyKey
	}
	span.SetAttributes(attribute.String("order.idempotency_key", key))

	release, err := s.lock(ctx, idempotencyScope(in.Customer.ID, key))
	if err != nil {
		return nil, err
	}
	defer release()

	existing, err := s.orderRepo.FindByIdempotencyKey(ctx, in.Customer.ID, key)
	switch {
	case err == nil:
		return s.replay(ctx, existing), nil
	case !errors.Is(err, repositories.ErrNotFound):
		span.RecordError(err)
		span.SetStatus(codes.Error, "idempotency lookup failed")
		return nil, fmt.Errorf("%w: lookup idempotency key: %w", ErrOrderPlacementFailed, err)
	}

	if in.Cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	for i, line := range in.Cart.Lines {
		if err := utils.ValidateStruct(line); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidCartItem, i, err)
		}
	}
	if err := utils.ValidateStruct(in.Delivery); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDelivery, err)
	}

	totals := PriceCart(in.Cart)
	if totals.Subtotal <= 0 {
		return nil, ErrEmptyCart
	}

	discount := 0
	if in.Discount != nil {
		discount = in.Discount.DiscountAmount()
	}
	total := totals.Subtotal - discount
	if total < 0 || discount < 0 {
		return nil, ErrNegativeTotal
	}

	orderNumber, err := s.generateOrderNumber(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "order number generation failed")
		return nil, fmt.Errorf("%w: %w", ErrOrderPlacementFailed, err)
	}

	now := s.now()
	order := &models.Order{
		ID:             s.newID(),
		OrderNumber:    orderNumber,
		IdempotencyKey: key,
		UserID:         in.Customer.ID,
		Status:         models.StatusPending,
		Items:          in.Cart.Snapshot(),
		Subtotal:       totals.Subtotal,
		TotalProtein:   totals.TotalProtein,
		Discount:       discount,
		Total:          total,
		PointsEarned:   utils.ScalePoints(s.cfg.BaseOrderPoints, in.Customer.TierMultiplier),
		FirstOrder:     in.Customer.IsFirstOrder,
		Delivery:       in.Delivery,
		Customer:       in.Customer.Snapshot(),
		Notes:          strings.TrimSpace(in.Notes),
		PaymentMethod:  models.PaymentMethodCOD,
		PaymentStatus:  models.PaymentStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	attachDiscount(order, in.Discount)

	if err := s.orderRepo.Create(ctx, order); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			winner, findErr := s.orderRepo.FindByIdempotencyKey(ctx, in.Customer.ID, key)
			if findErr == nil {
				return s.replay(ctx, winner), nil
			}
			err = errors.Join(err, findErr)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "order persistence failed")
		return nil, fmt.Errorf("%w: %w", ErrOrderPlacementFailed, err)
	}

	span.SetAttributes(attribute.String("order.number", order.OrderNumber), attribute.Int("order.total", order.Total))
	s.log.Info("order placed", "order", order.OrderNumber, "user", order.UserID, "total", order.Total)

	s.applySideEffects(ctx, order)
	return s.result(order, false), nil
}

type CheckoutInput struct {
	UserID         int
	IdempotencyKey string
	Items          []models.CartItemRequest
	DiscountCode   string
	Delivery       models.Delivery
	Notes          string
}

// Checkout builds the cart from catalog prices, resolves the discount code
// against the server-side subtotal and places the order. A code that cannot
// be applied does not stop the order: it is placed at full price and the
// reason is returned in DiscountRejection.
func (s *OrderService) Checkout(ctx context.Context, in CheckoutInput) (*PlaceOrderResult, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "OrderService.Checkout")
	defer span.End()

	key := strings.TrimSpace(in.IdempotencyKey)
	if key == "" {
		return nil, ErrMissingIdempotencyKey
	}

	// A retry must succeed even if the catalog changed since the first attempt.
	if existing, err := s.orderRepo.FindByIdempotencyKey(ctx, in.UserID, key); err == nil {
		return s.replay(ctx, existing), nil
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("%w: lookup idempotency key: %w", ErrOrderPlacementFailed, err)
	}

	customer, err := s.customers.Identify(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.BuildCart(ctx, in.Items)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	var (
		discount  models.DiscountResolution
		rejection error
	)
	if code := NormalizeCode(in.DiscountCode); code != "" {
		discount, err = s.discounts.Resolve(ctx, code, PriceCart(cart).Subtotal, *customer)
		switch {
		case err == nil:
		case errors.Is(err, ErrEmptyCart):
			return nil, err
		case IsDiscountRejection(err):
			discount, rejection = nil, err
		default:
			s.log.Error(err, "discount lookup failed, charging full price", "code", code, "user", customer.ID)
			discount, rejection = nil, fmt.Errorf("%w: %w", ErrDiscountUnavailable, err)
		}
		if rejection != nil {
			span.SetAttributes(attribute.String("discount.rejected", rejection.Error()))
		}
	}

	res, err := s.PlaceOrder(ctx, PlaceOrderInput{
		IdempotencyKey: key,
		Customer:       *customer,
		Cart:           cart,
		Discount:       discount,
		Delivery:       in.Delivery,
		Notes:          in.Notes,
	})
	if err != nil {
		return nil, err
	}
	if !res.Replayed {
		res.DiscountRejection = rejection
	}
	return res, nil
}

func (s *OrderService) lock(ctx context.Context, key string) (func(), error) {
	if s.locker == nil {
		return func() {}, nil
	}

	token, acquired, err := s.locker.Acquire(ctx, key)
	if err != nil {
		// The unique index on idempotency_key still guards duplicates.
		s.log.Error(err, "idempotency lock unavailable", "key", key)
		return func() {}, nil
	}
	if !acquired {
		return nil, ErrCheckoutInProgress
	}

	return func() {
		if err := s.locker.Release(context.WithoutCancel(ctx), key, token); err != nil {
			s.log.Error(err, "release idempotency lock", "key", key)
		}
	}, nil
}

func (s *OrderService) replay(ctx context.Context, order *models.Order) *PlaceOrderResult {
	s.log.V(1).Info("idempotent replay", "order", order.OrderNumber)
	s.applySideEffects(ctx, order)
	return s.result(order, true)
}

func (s *OrderService) result(order *models.Order, replayed bool) *PlaceOrderResult {
	summary := BuildOrderSummary(order)
	return &PlaceOrderResult{
		Order:         order,
		PointsAwarded: order.PointsEarned,
		Replayed:      replayed,
		Summary:       summary,
		WhatsAppURL:   WhatsAppURL(s.cfg.WhatsAppNumber, summary),
	}
}

func attachDiscount(order *models.Order, d models.DiscountResolution) {
	if d == nil {
		return
	}

	code := d.DiscountCode()
	kind := d.Kind()
	order.DiscountCode = &code
	order.DiscountKind = &kind

	switch v := d.(type) {
	case models.CouponDiscount:
		order.CouponID = &v.CouponID
	case models.ReferralDiscount:
		order.ReferralCodeID = &v.ReferralCodeID
		order.ReferrerUserID = &v.ReferrerUserID
	}
}

func (s *OrderService) newOrderNumber() string {
	stamp := strings.ToUpper(strconv.FormatInt(s.now().UnixMilli(), 36))
	return fmt.Sprintf("%s%s%03d", s.cfg.OrderPrefix, stamp, s.randSuffix())
}

func (s *OrderService) generateOrderNumber(ctx context.Context) (string, error) {
	for range orderNumberAttempts {
		candidate := s.newOrderNumber()
		exists, err := s.orderRepo.OrderNumberExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check order number: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", errors.New("could not generate a unique order number")
}

// applySideEffects runs the bookkeeping that follows a persisted order.
// Every write is deduplicated by the store so replays are safe.
func (s *OrderService) applySideEffects(ctx context.Context, order *models.Order) {
	ctx = context.WithoutCancel(ctx)
	ctx, span := otel.Tracer(tracerName).Start(ctx, "OrderService.applySideEffects")
	defer span.End()

	switch d := order.AppliedDiscount().(type) {
	case models.CouponDiscount:
		s.bestEffort(ctx, "coupon_usage", order, func() error {
			return s.discountRepo.RecordCouponUsage(ctx, d.CouponID, order.UserID, order.ID, d.Amount)
		})
	case models.ReferralDiscount:
		s.bestEffort(ctx, "referral_tracking", order, func() error {
			return s.discountRepo.RecordReferral(ctx, d, order.UserID, order.ID)
		})
	}

	if order.PointsEarned > 0 {
		s.bestEffort(ctx, "loyalty_points", order, func() error {
			return s.loyaltyRepo.CreditOrderPoints(ctx, order.UserID, order.ID, order.PointsEarned,
				fmt.Sprintf("Points earned from order #%s", order.OrderNumber))
		})
	}

	if order.FirstOrder {
		s.bestEffort(ctx, "first_order_marker", order, func() error {
			return s.customerRepo.RecordFirstOrder(ctx, order.Customer.Email, order.Customer.Phone)
		})
	}
}

func (s *OrderService) bestEffort(ctx context.Context, effect string, order *models.Order, op func() error) {
	if err := utils.Retry(ctx, s.cfg.SideEffectRetries, s.cfg.RetryInterval, op); err != nil {
		span := trace.SpanFromContext(ctx)
		span.RecordError(err, trace.WithAttributes(attribute.String("side_effect", effect)))
		s.log.Error(err, "side effect failed", "effect", effect, "order", order.OrderNumber, "user", order.UserID)
	}
}

func (s *OrderService) GetOrder(ctx context.Context, orderNumber string) (*models.OrderDetail, error) {
	order, err := s.orderRepo.FindByNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("load order: %w", err)
	}

	history, err := s.orderRepo.StatusHistory(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("load status history: %w", err)
	}
	return &models.OrderDetail{Order: order, History: history}, nil
}

// GetCustomerOrder hides orders that belong to someone else.
func (s *OrderService) GetCustomerOrder(ctx context.Context, userID int, orderNumber string) (*models.OrderDetail, error) {
	detail, err := s.GetOrder(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if detail.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return detail, nil
}

func (s *OrderService) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.orderRepo.List(ctx, filter)
}

func (s *OrderService) ListCustomerOrders(ctx context.Context, userID int, filter models.OrderFilter) ([]models.Order, int, error) {
	filter.UserID = &userID
	return s.ListOrders(ctx, filter)
}

// UpdateStatus moves an order forward through fulfilment or cancels it.
func (s *OrderService) UpdateStatus(ctx context.Context, orderNumber, status, notes string) (*models.Order, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "OrderService.UpdateStatus")
	defer span.End()

	next, ok := models.ParseOrderStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidStatusTransition, status)
	}

	order, err := s.orderRepo.FindByNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("load order: %w", err)
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, order.Status, next)
	}

	if err := s.orderRepo.UpdateStatus(ctx, order.ID, order.Status, next, notes); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, fmt.Errorf("%w: order was updated concurrently", ErrInvalidStatusTransition)
		}
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.log.Info("order status updated", "order", order.OrderNumber, "from", order.Status, "to", next)
	order.Status = next
	order.UpdatedAt = s.now()
	return order, nil
}
