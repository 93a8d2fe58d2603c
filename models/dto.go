package models

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	Name     string `json:"name" form:"name" binding:"required,min=3"`
	Phone    string `json:"phone" form:"phone" binding:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type CartItemRequest struct {
	ProductID int    `json:"product_id" binding:"required"`
	Size      Size   `json:"size" binding:"required,oneof=250ml 350ml"`
	AddonIDs  []int  `json:"addon_ids"`
	Quantity  int    `json:"quantity" binding:"required,min=1,max=10"`
	LineID    string `json:"line_id,omitempty"`
}

type PriceCartRequest struct {
	Items []CartItemRequest `json:"items" binding:"dive"`
}

type ApplyDiscountRequest struct {
	Code  string            `json:"code" binding:"required"`
	Items []CartItemRequest `json:"items" binding:"dive"`
}

type CheckoutRequest struct {
	IdempotencyKey string            `json:"idempotency_key"`
	Items          []CartItemRequest `json:"items" binding:"dive"`
	DiscountCode   string            `json:"discount_code"`
	Delivery       Delivery          `json:"delivery"`
	Notes          string            `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required"`
	Notes  string `json:"notes" form:"notes"`
}

type DiscountQuote struct {
	Code     string       `json:"code"`
	Type     DiscountKind `json:"type"`
	Discount int          `json:"discount"`
	Subtotal int          `json:"subtotal"`
	Total    int          `json:"total"`
	Referrer string       `json:"referrer_name,omitempty"`
}

type CheckoutResponse struct {
	Order         *Order `json:"order"`
	PointsAwarded int    `json:"points_awarded"`
	Replayed      bool   `json:"replayed"`
	Summary       string `json:"summary"`
	WhatsAppURL   string `json:"whatsapp_url,omitempty"`
	// DiscountRejected explains why the submitted code was not applied.
	DiscountRejected string `json:"discount_rejected,omitempty"`
}
