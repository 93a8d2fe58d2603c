package services

import "frushh/models"

// PriceCart totals a cart. It reads nothing but the cart itself.
func PriceCart(cart models.Cart) models.CartTotals {
	var totals models.CartTotals
	for _, line := range cart.Lines {
		totals.Subtotal += line.LinePrice() * line.Quantity
		totals.TotalProtein += line.Protein * line.Quantity
		totals.ItemCount += line.Quantity
	}
	totals.LineCount = len(cart.Lines)
	return totals
}
