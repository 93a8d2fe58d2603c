package models

import "time"

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

var statusRank = map[OrderStatus]int{
	StatusPending:        0,
	StatusConfirmed:      1,
	StatusPreparing:      2,
	StatusOutForDelivery: 3,
	StatusDelivered:      4,
}

func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(s)
	return status, status.Valid()
}

func (s OrderStatus) Valid() bool {
	if s == StatusCancelled {
		return true
	}
	_, ok := statusRank[s]
	return ok
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo allows moving forward along the fulfilment sequence, or to
// cancelled from any non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() || !next.Valid() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	return statusRank[next] > statusRank[s]
}

const (
	PaymentMethodCOD     = "cod"
	PaymentStatusPending = "pending"
)

type Delivery struct {
	Address   string `json:"address" validate:"required"`
	Landmark  string `json:"landmark,omitempty"`
	Area      string `json:"area,omitempty"`
	SlotName  string `json:"slot_name" validate:"required"`
	SlotStart string `json:"slot_start,omitempty"`
	SlotEnd   string `json:"slot_end,omitempty"`
	Date      string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (d Delivery) FullAddress() string {
	if d.Landmark != "" {
		return d.Address + ", " + d.Landmark
	}
	return d.Address
}

func (d Delivery) SlotLabel() string {
	if d.SlotStart != "" && d.SlotEnd != "" {
		return d.SlotName + " (" + d.SlotStart + " - " + d.SlotEnd + ")"
	}
	return d.SlotName
}

// CustomerSnapshot is copied into the order so later profile edits do not
// rewrite history.
type CustomerSnapshot struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type Order struct {
	ID             string           `json:"id"`
	OrderNumber    string           `json:"order_number"`
	IdempotencyKey string           `json:"-"`
	UserID         int              `json:"user_id"`
	Status         OrderStatus      `json:"status"`
	Items          []CartLine       `json:"items"`
	Subtotal       int              `json:"subtotal"`
	TotalProtein   int              `json:"total_protein"`
	Discount       int              `json:"discount"`
	DiscountCode   *string          `json:"discount_code,omitempty"`
	DiscountKind   *DiscountKind    `json:"discount_type,omitempty"`
	CouponID       *int             `json:"coupon_id,omitempty"`
	ReferralCodeID *int             `json:"referral_code_id,omitempty"`
	ReferrerUserID *int             `json:"referrer_user_id,omitempty"`
	DeliveryFee    int              `json:"delivery_fee"`
	Total          int              `json:"total"`
	PointsEarned   int              `json:"points_earned"`
	FirstOrder     bool             `json:"first_order"`
	Delivery       Delivery         `json:"delivery"`
	Customer       CustomerSnapshot `json:"customer"`
	Notes          string           `json:"notes,omitempty"`
	PaymentMethod  string           `json:"payment_method"`
	PaymentStatus  string           `json:"payment_status"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// AppliedDiscount rebuilds the discount that produced this order, or nil.
func (o *Order) AppliedDiscount() DiscountResolution {
	if o.DiscountKind == nil || o.DiscountCode == nil {
		return nil
	}
	switch *o.DiscountKind {
	case DiscountKindCoupon:
		if o.CouponID == nil {
			return nil
		}
		return CouponDiscount{CouponID: *o.CouponID, Code: *o.DiscountCode, Amount: o.Discount}
	case DiscountKindReferral:
		if o.ReferralCodeID == nil || o.ReferrerUserID == nil {
			return nil
		}
		return ReferralDiscount{
			ReferralCodeID: *o.ReferralCodeID,
			Code:           *o.DiscountCode,
			ReferrerUserID: *o.ReferrerUserID,
			Amount:         o.Discount,
		}
	}
	return nil
}

type OrderStatusHistory struct {
	ID        int         `json:"id"`
	OrderID   string      `json:"order_id"`
	Status    OrderStatus `json:"status"`
	Notes     string      `json:"notes"`
	CreatedAt time.Time   `json:"created_at"`
}

type OrderFilter struct {
	UserID *int
	Status string
	Search string
	Limit  int
	Offset int
}

type OrderDetail struct {
	*Order
	History []OrderStatusHistory `json:"history"`
}
