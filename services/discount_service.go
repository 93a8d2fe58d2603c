package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"frushh/models"
	"frushh/repositories"
	"frushh/utils"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

type DiscountService struct {
	discountRepo repositories.DiscountRepository
}

func NewDiscountService(discountRepo repositories.DiscountRepository) *DiscountService {
	return &DiscountService{discountRepo: discountRepo}
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Resolve turns a code into a discount for the given subtotal. Coupons are
// checked before referral codes. The customer's first-order flag is taken
// as given and never looked up here.
func (s *DiscountService) Resolve(ctx context.Context, code string, subtotal int, customer models.Customer) (models.DiscountResolution, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "DiscountService.Resolve")
	defer span.End()

	code = NormalizeCode(code)
	span.SetAttributes(attribute.String("discount.code", code), attribute.Int("cart.subtotal", subtotal))
	if code == "" {
		return nil, ErrInvalidCode
	}
	if subtotal <= 0 {
		return nil, ErrEmptyCart
	}

	coupon, err := s.discountRepo.FindActiveCoupon(ctx, code)
	switch {
	case err == nil:
		return resolveCoupon(coupon, subtotal, customer)
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, fmt.Errorf("lookup coupon: %w", err)
	}

	referral, err := s.discountRepo.FindActiveReferralCode(ctx, code)
	switch {
	case err == nil:
		return resolveReferral(referral, subtotal, customer)
	case errors.Is(err, repositories.ErrNotFound):
		return nil, ErrInvalidCode
	default:
		return nil, fmt.Errorf("lookup referral code: %w", err)
	}
}

func (s *DiscountService) ListPublicCoupons(ctx context.Context) ([]models.Coupon, error) {
	return s.discountRepo.ListPublicCoupons(ctx)
}

func resolveCoupon(c *models.Coupon, subtotal int, customer models.Customer) (models.DiscountResolution, error) {
	if c.IsFirstOrderOnly && !customer.IsFirstOrder {
		return nil, ErrFirstOrderOnly
	}
	if subtotal < c.MinOrder {
		return nil, fmt.Errorf("%w: minimum order ₹%d required", ErrMinimumOrderNotMet, c.MinOrder)
	}
	if limit, ok := positive(c.UsageLimit); ok && c.UsedCount >= limit {
		return nil, ErrUsageLimitExceeded
	}

	var amount int
	switch c.DiscountType {
	case models.DiscountFlat:
		amount = c.DiscountValue
	case models.DiscountPercent:
		amount = utils.PercentOf(subtotal, c.DiscountValue)
		if maxDiscount, ok := positive(c.MaxDiscount); ok {
			amount = min(amount, maxDiscount)
		}
	default:
		return nil, fmt.Errorf("%w: unknown discount type %q", ErrInvalidCode, c.DiscountType)
	}

	return models.CouponDiscount{
		CouponID: c.ID,
		Code:     c.Code,
		Amount:   clampDiscount(amount, subtotal),
	}, nil
}

func resolveReferral(r *models.ReferralCode, subtotal int, customer models.Customer) (models.DiscountResolution, error) {
	if r.UserID == customer.ID {
		return nil, ErrSelfReferral
	}

	amount := utils.PercentOf(subtotal, r.DiscountPercent)
	if r.MaxDiscount > 0 {
		amount = min(amount, r.MaxDiscount)
	}
	return models.ReferralDiscount{
		ReferralCodeID: r.ID,
		Code:           r.Code,
		ReferrerUserID: r.UserID,
		ReferrerName:   r.OwnerName,
		Amount:         clampDiscount(amount, subtotal),
	}, nil
}

// positive treats a missing or non-positive cap as no cap at all.
func positive(v *int) (int, bool) {
	if v == nil || *v <= 0 {
		return 0, false
	}
	return *v, true
}

func clampDiscount(amount, subtotal int) int {
	return max(0, min(amount, subtotal))
}
