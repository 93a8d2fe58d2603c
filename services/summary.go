package services

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"frushh/models"
)

// BuildOrderSummary renders the plain-text message handed to the shop's
// messaging channel. Nothing is sent from here.
func BuildOrderSummary(order *models.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*NEW ORDER - #%s*\n\n", order.OrderNumber)
	fmt.Fprintf(&b, "*Customer:* %s\n", order.Customer.Name)
	fmt.Fprintf(&b, "*Phone:* %s\n\n", order.Customer.Phone)

	b.WriteString("*Items:*\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "• %s (%s) x%d", item.ProductName, item.Size, item.Quantity)
		if len(item.Addons) > 0 {
			names := make([]string, len(item.Addons))
			for i, a := range item.Addons {
				names[i] = a.Name
			}
			fmt.Fprintf(&b, " +%s", strings.Join(names, ", "))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n*Subtotal:* ₹%d\n", order.Subtotal)
	if order.Discount > 0 && order.DiscountCode != nil {
		fmt.Fprintf(&b, "*Discount:* -₹%d (%s)\n", order.Discount, *order.DiscountCode)
	}
	fmt.Fprintf(&b, "*Total:* ₹%d\n\n", order.Total)

	fmt.Fprintf(&b, "*Address:* %s\n", order.Delivery.FullAddress())
	fmt.Fprintf(&b, "*Slot:* %s\n", order.Delivery.SlotLabel())
	if order.Delivery.Date != "" {
		date := order.Delivery.Date
		if t, err := time.Parse("2006-01-02", date); err == nil {
			date = t.Format("Mon, 2 Jan")
		}
		fmt.Fprintf(&b, "*Date:* %s\n", date)
	}
	if order.Notes != "" {
		fmt.Fprintf(&b, "\n*Notes:* %s\n", order.Notes)
	}
	b.WriteString("\n*Payment:* Cash on Delivery")

	return b.String()
}

// WhatsAppURL builds a wa.me hand-off link. An empty number yields "".
func WhatsAppURL(number, text string) string {
	number = strings.TrimPrefix(strings.TrimSpace(number), "+")
	if number == "" {
		return ""
	}
	return "https://wa.me/" + number + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
