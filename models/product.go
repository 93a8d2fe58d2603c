package models

import "time"

type Product struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Price250ml   int       `json:"price_250ml"`
	Price350ml   int       `json:"price_350ml"`
	Protein250ml int       `json:"protein_250ml"`
	Protein350ml int       `json:"protein_350ml"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Variant returns the price and protein for a size.
func (p *Product) Variant(size Size) (price, protein int, ok bool) {
	switch size {
	case Size250ml:
		return p.Price250ml, p.Protein250ml, true
	case Size350ml:
		return p.Price350ml, p.Protein350ml, true
	}
	return 0, 0, false
}

type CatalogAddon struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	IsActive bool   `json:"is_active"`
}
