package models

import (
	"errors"
	"fmt"
)

const (
	MinLineQuantity = 1
	MaxLineQuantity = 10
)

var (
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 10")
	ErrInvalidSize     = errors.New("invalid size, choose 250ml or 350ml")
	ErrLineNotFound    = errors.New("cart line not found")
)

type Size string

const (
	Size250ml Size = "250ml"
	Size350ml Size = "350ml"
)

func (s Size) Valid() bool {
	return s == Size250ml || s == Size350ml
}

type Addon struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// CartLine is a frozen product configuration. Prices are copied from the
// catalog when the line is built and never looked up again.
type CartLine struct {
	ID          string  `json:"id"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"name"`
	Size        Size    `json:"size"`
	UnitPrice   int     `json:"price"`
	Protein     int     `json:"protein"`
	Addons      []Addon `json:"addons"`
	Quantity    int     `json:"quantity" validate:"min=1,max=10"`
}

func (l CartLine) AddonsTotal() int {
	total := 0
	for _, a := range l.Addons {
		total += a.Price
	}
	return total
}

// LinePrice is the price of one unit including add-ons.
func (l CartLine) LinePrice() int {
	return l.UnitPrice + l.AddonsTotal()
}

type Cart struct {
	Lines []CartLine `json:"lines"`
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) AddLine(line CartLine) error {
	if line.Quantity < MinLineQuantity || line.Quantity > MaxLineQuantity {
		return ErrInvalidQuantity
	}
	if !line.Size.Valid() {
		return ErrInvalidSize
	}
	if line.ID == "" {
		line.ID = fmt.Sprintf("%d-%s-%d", line.ProductID, line.Size, len(c.Lines)+1)
	}
	c.Lines = append(c.Lines, line)
	return nil
}

func (c *Cart) RemoveLine(lineID string) {
	kept := c.Lines[:0]
	for _, l := range c.Lines {
		if l.ID != lineID {
			kept = append(kept, l)
		}
	}
	c.Lines = kept
}

// UpdateQuantity removes the line when quantity drops below one. Quantities
// above the maximum are rejected and leave the cart unchanged.
func (c *Cart) UpdateQuantity(lineID string, quantity int) error {
	if quantity < MinLineQuantity {
		for _, l := range c.Lines {
			if l.ID == lineID {
				c.RemoveLine(lineID)
				return nil
			}
		}
		return ErrLineNotFound
	}
	if quantity > MaxLineQuantity {
		return ErrInvalidQuantity
	}
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			c.Lines[i].Quantity = quantity
			return nil
		}
	}
	return ErrLineNotFound
}

func (c *Cart) Clear() {
	c.Lines = nil
}

// Snapshot returns a deep copy so later cart edits cannot leak into an order.
func (c Cart) Snapshot() []CartLine {
	lines := make([]CartLine, len(c.Lines))
	for i, l := range c.Lines {
		l.Addons = append([]Addon(nil), l.Addons...)
		lines[i] = l
	}
	return lines
}

type CartTotals struct {
	Subtotal     int `json:"subtotal"`
	TotalProtein int `json:"total_protein"`
	LineCount    int `json:"line_count"`
	ItemCount    int `json:"item_count"`
}
