package repositories

//go:generate mockgen -destination=mocks/mock_repositories.go -package=mocks frushh/repositories CatalogRepository,DiscountRepository,OrderRepository,CustomerRepository,LoyaltyRepository,IdempotencyLocker

import (
	"context"
	"errors"

	"frushh/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
	ErrConflict  = errors.New("record changed concurrently")
)

type CatalogRepository interface {
	GetProduct(ctx context.Context, id int) (*models.Product, error)
	GetAddons(ctx context.Context, ids []int) ([]models.CatalogAddon, error)
}

type DiscountRepository interface {
	FindActiveCoupon(ctx context.Context, code string) (*models.Coupon, error)
	FindActiveReferralCode(ctx context.Context, code string) (*models.ReferralCode, error)
	ListPublicCoupons(ctx context.Context) ([]models.Coupon, error)
	// CreateReferralCode fills in the generated ID. A code that is already
	// taken returns ErrDuplicate.
	CreateReferralCode(ctx context.Context, code *models.ReferralCode) error
	// RecordCouponUsage inserts the usage row and bumps used_count only when
	// the (coupon, order) pair is new.
	RecordCouponUsage(ctx context.Context, couponID, userID int, orderID string, discount int) error
	// RecordReferral inserts a completed tracking row and bumps times_used
	// only when the (code, order) pair is new.
	RecordReferral(ctx context.Context, d models.ReferralDiscount, referredUserID int, orderID string) error
}

type OrderRepository interface {
	// Create persists the order and its first status history entry together.
	// A clash on the customer's idempotency key returns ErrDuplicate.
	Create(ctx context.Context, order *models.Order) error
	// FindByIdempotencyKey only sees orders placed by userID.
	FindByIdempotencyKey(ctx context.Context, userID int, key string) (*models.Order, error)
	FindByNumber(ctx context.Context, orderNumber string) (*models.Order, error)
	OrderNumberExists(ctx context.Context, orderNumber string) (bool, error)
	List(ctx context.Context, filter models.OrderFilter) ([]models.Order, int, error)
	// UpdateStatus only succeeds while the stored status still equals from.
	UpdateStatus(ctx context.Context, orderID string, from, to models.OrderStatus, notes string) error
	StatusHistory(ctx context.Context, orderID string) ([]models.OrderStatusHistory, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	TierMultiplier(ctx context.Context, userID int) (float64, error)
	IsFirstTimeCustomer(ctx context.Context, userID int, email, phone string) (bool, error)
	RecordFirstOrder(ctx context.Context, email, phone string) error
}

type LoyaltyRepository interface {
	EnsureAccount(ctx context.Context, userID int) error
	// CreditOrderPoints is a no-op when points for this order were already
	// credited.
	CreditOrderPoints(ctx context.Context, userID int, orderID string, points int, description string) error
}

// IdempotencyLocker hands out a token on Acquire; Release only drops the
// lock while it is still held under that token.
type IdempotencyLocker interface {
	Acquire(ctx context.Context, key string) (token string, acquired bool, err error)
	Release(ctx context.Context, key, token string) error
}
