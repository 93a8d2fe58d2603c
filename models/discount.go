package models

import "time"

type DiscountType string

const (
	DiscountFlat    DiscountType = "flat"
	DiscountPercent DiscountType = "percent"
)

type Coupon struct {
	ID               int          `json:"id"`
	Code             string       `json:"code"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	DiscountType     DiscountType `json:"discount_type"`
	DiscountValue    int          `json:"discount_value"`
	MinOrder         int          `json:"min_order"`
	MaxDiscount      *int         `json:"max_discount,omitempty"`
	UsageLimit       *int         `json:"usage_limit,omitempty"`
	UsedCount        int          `json:"used_count"`
	IsFirstOrderOnly bool         `json:"is_first_order_only"`
	IsActive         bool         `json:"is_active"`
	IsPublic         bool         `json:"is_public"`
	CreatedAt        time.Time    `json:"created_at"`
}

// Every new customer gets a referral code worth this much to the people
// they invite.
const (
	ReferralDiscountPercent = 20
	ReferralMaxDiscount     = 25
)

type ReferralCode struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user_id"`
	OwnerName       string    `json:"owner_name"`
	Code            string    `json:"code"`
	DiscountPercent int       `json:"discount_percent"`
	MaxDiscount     int       `json:"max_discount"`
	TimesUsed       int       `json:"times_used"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

type DiscountKind string

const (
	DiscountKindCoupon   DiscountKind = "coupon"
	DiscountKindReferral DiscountKind = "referral"
)

// DiscountResolution is either a CouponDiscount or a ReferralDiscount.
type DiscountResolution interface {
	Kind() DiscountKind
	DiscountCode() string
	DiscountAmount() int
	isDiscountResolution()
}

type CouponDiscount struct {
	CouponID int    `json:"coupon_id"`
	Code     string `json:"code"`
	Amount   int    `json:"amount"`
}

func (d CouponDiscount) Kind() DiscountKind   { return DiscountKindCoupon }
func (d CouponDiscount) DiscountCode() string { return d.Code }
func (d CouponDiscount) DiscountAmount() int  { return d.Amount }
func (CouponDiscount) isDiscountResolution()  {}

type ReferralDiscount struct {
	ReferralCodeID int    `json:"referral_code_id"`
	Code           string `json:"code"`
	ReferrerUserID int    `json:"referrer_user_id"`
	ReferrerName   string `json:"referrer_name"`
	Amount         int    `json:"amount"`
}

func (d ReferralDiscount) Kind() DiscountKind   { return DiscountKindReferral }
func (d ReferralDiscount) DiscountCode() string { return d.Code }
func (d ReferralDiscount) DiscountAmount() int  { return d.Amount }
func (ReferralDiscount) isDiscountResolution()  {}
