package models

import "time"

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Customer is the identity view checkout works with.
type Customer struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email"`
	TierMultiplier float64 `json:"tier_multiplier"`
	IsFirstOrder   bool    `json:"is_first_order"`
}

func (c *Customer) Snapshot() CustomerSnapshot {
	return CustomerSnapshot{Name: c.Name, Phone: c.Phone, Email: c.Email}
}
