package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusPreparing, true},
		{StatusConfirmed, StatusOutForDelivery, true},
		{StatusOutForDelivery, StatusDelivered, true},
		{StatusPreparing, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusPending, StatusPending, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusPending, OrderStatus("shipped"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestParseOrderStatus(t *testing.T) {
	s, ok := ParseOrderStatus("out_for_delivery")
	assert.True(t, ok)
	assert.Equal(t, StatusOutForDelivery, s)

	_, ok = ParseOrderStatus("lost")
	assert.False(t, ok)
}

func TestDelivery_Labels(t *testing.T) {
	d := Delivery{Address: "12 MG Road", Landmark: "near metro", SlotName: "Morning", SlotStart: "7 AM", SlotEnd: "9 AM"}
	assert.Equal(t, "12 MG Road, near metro", d.FullAddress())
	assert.Equal(t, "Morning (7 AM - 9 AM)", d.SlotLabel())

	d = Delivery{Address: "12 MG Road", SlotName: "Morning (7 AM - 9 AM)"}
	assert.Equal(t, "12 MG Road", d.FullAddress())
	assert.Equal(t, "Morning (7 AM - 9 AM)", d.SlotLabel())
}

func TestOrder_AppliedDiscount(t *testing.T) {
	code := "WELCOME25"
	coupon := DiscountKindCoupon
	couponID := 4
	o := &Order{Discount: 25, DiscountCode: &code, DiscountKind: &coupon, CouponID: &couponID}
	assert.Equal(t, CouponDiscount{CouponID: 4, Code: "WELCOME25", Amount: 25}, o.AppliedDiscount())

	ref := "ASHA20"
	referral := DiscountKindReferral
	codeID, referrer := 7, 12
	o = &Order{Discount: 25, DiscountCode: &ref, DiscountKind: &referral, ReferralCodeID: &codeID, ReferrerUserID: &referrer}
	assert.Equal(t, ReferralDiscount{ReferralCodeID: 7, Code: "ASHA20", ReferrerUserID: 12, Amount: 25}, o.AppliedDiscount())

	assert.Nil(t, (&Order{}).AppliedDiscount())
}
