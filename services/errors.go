package services

import "errors"

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidCode        = errors.New("invalid coupon code")
	ErrFirstOrderOnly     = errors.New("this coupon is only valid for first orders")
	ErrMinimumOrderNotMet = errors.New("minimum order value not met")
	ErrUsageLimitExceeded = errors.New("coupon usage limit reached")
	ErrSelfReferral       = errors.New("you can't use your own referral code")

	ErrDiscountUnavailable  = errors.New("discount could not be applied right now")
	ErrNegativeTotal        = errors.New("order total cannot be negative")
	ErrOrderPlacementFailed = errors.New("failed to place order")

	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrCheckoutInProgress      = errors.New("checkout with this idempotency key is already in progress")
	ErrMissingIdempotencyKey   = errors.New("idempotency key is required")
	ErrInvalidDelivery         = errors.New("invalid delivery details")
	ErrInvalidCartItem         = errors.New("invalid cart item")
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrEmailTaken              = errors.New("email already registered")
	ErrInvalidCredentials      = errors.New("invalid email or password")
)

// IsDiscountRejection reports whether err means the code was looked at and
// refused, as opposed to a storage failure.
func IsDiscountRejection(err error) bool {
	return errors.Is(err, ErrInvalidCode) ||
		errors.Is(err, ErrFirstOrderOnly) ||
		errors.Is(err, ErrMinimumOrderNotMet) ||
		errors.Is(err, ErrUsageLimitExceeded) ||
		errors.Is(err, ErrSelfReferral)
}
