// Package format renders orders, products and stats into Telegram message
// text. Everything here is a pure function over models; the status emoji/label
// pairs come from the single table in models.StatusDisplay.
package format

import (
	"fmt"
	"strings"

	"menstyle-shop/internal/models"
)

// NoOrdersMessage is shown whenever a list of zero orders is formatted.
const NoOrdersMessage = "You have no orders yet. Place your first order in our shop!"

// OrderForAdmin renders the full admin-facing view of an order: customer
// contact details plus the itemized list.
func OrderForAdmin(order *models.Order, items []models.OrderItem) string {
	status := models.StatusDisplay(order.Status)

	var b strings.Builder
	fmt.Fprintf(&b, "🛍 *New order #%s*\n\n", ShortID(order.ID))
	fmt.Fprintf(&b, "👤 *Customer:* %s\n", order.CustomerName)
	fmt.Fprintf(&b, "📞 *Phone:* %s\n", order.CustomerPhone)
	fmt.Fprintf(&b, "📍 *Address:* %s\n", order.DeliveryAddress)
	if order.DeliveryNotes != "" {
		fmt.Fprintf(&b, "📝 *Notes:* %s\n", order.DeliveryNotes)
	}
	fmt.Fprintf(&b, "🚚 *Delivery:* %s\n", deliveryLabel(order.DeliveryMethod))
	fmt.Fprintf(&b, "💰 *Total:* %s ₽\n", Price(order.TotalAmount))
	fmt.Fprintf(&b, "📊 *Status:* %s %s\n", status.Emoji, status.Label)
	fmt.Fprintf(&b, "📅 *Date:* %s\n\n", order.CreatedAt.Format("02.01.2006"))
	writeItems(&b, items, true)
	return b.String()
}

// OrderForUser renders the customer-facing view of an order.
func OrderForUser(order *models.Order, items []models.OrderItem) string {
	status := models.StatusDisplay(order.Status)

	var b strings.Builder
	fmt.Fprintf(&b, "🛍 *Order #%s*\n\n", ShortID(order.ID))
	fmt.Fprintf(&b, "💰 *Total:* %s ₽\n", Price(order.TotalAmount))
	fmt.Fprintf(&b, "📊 *Status:* %s %s\n", status.Emoji, status.Label)
	fmt.Fprintf(&b, "📅 *Date:* %s\n\n", order.CreatedAt.Format("02.01.2006"))
	writeItems(&b, items, false)
	return b.String()
}

// OrdersList renders a compact summary of many orders.
func OrdersList(orders []models.Order) string {
	if len(orders) == 0 {
		return NoOrdersMessage
	}

	var b strings.Builder
	b.WriteString("🛍 *Your orders:*\n\n")
	for _, order := range orders {
		status := models.StatusDisplay(order.Status)
		fmt.Fprintf(&b, "%s *Order #%s*\n", status.Emoji, ShortID(order.ID))
		fmt.Fprintf(&b, "💰 Total: %s ₽\n", Price(order.TotalAmount))
		fmt.Fprintf(&b, "📅 Date: %s\n\n", order.CreatedAt.Format("02.01.2006"))
	}
	return b.String()
}

// Stats renders the shop-wide order statistics.
func Stats(stats *models.OrderStats) string {
	var b strings.Builder
	b.WriteString("📊 *Order statistics:*\n\n")
	fmt.Fprintf(&b, "📦 Total orders: %d\n", stats.Total)
	fmt.Fprintf(&b, "⏳ Pending: %d\n", stats.Pending)
	fmt.Fprintf(&b, "✅ Confirmed: %d\n", stats.Confirmed)
	fmt.Fprintf(&b, "🚚 Shipped: %d\n", stats.Shipped)
	fmt.Fprintf(&b, "🎉 Delivered: %d\n", stats.Delivered)
	fmt.Fprintf(&b, "❌ Cancelled: %d\n\n", stats.Cancelled)
	fmt.Fprintf(&b, "💰 Total revenue: %s ₽", Price(stats.TotalRevenue))
	return b.String()
}

// Product renders a product card.
func Product(p *models.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🛍 *%s*\n\n", p.Name)
	fmt.Fprintf(&b, "📝 %s\n\n", p.Description)

	if eff := p.EffectivePrice(); eff < p.Price {
		discount := int((1 - float64(eff)/float64(p.Price)) * 100)
		fmt.Fprintf(&b, "💰 Price: %s ₽ instead of %s ₽ (-%d%%)\n", Price(eff), Price(p.Price), discount)
	} else {
		fmt.Fprintf(&b, "💰 Price: %s ₽\n", Price(p.Price))
	}

	fmt.Fprintf(&b, "📦 In stock: %d pcs.\n", p.StockQuantity)

	if len(p.Sizes) > 0 {
		fmt.Fprintf(&b, "📏 Sizes: %s\n", strings.Join(p.Sizes, ", "))
	}
	if len(p.Colors) > 0 {
		fmt.Fprintf(&b, "🎨 Colors: %s\n", strings.Join(p.Colors, ", "))
	}
	return b.String()
}

// Price formats an amount with thin-space thousand groups: 6999 -> "6 999".
func Price(amount int64) string {
	s := fmt.Sprintf("%d", amount)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)

	out := strings.Join(groups, " ")
	if neg {
		return "-" + out
	}
	return out
}

// ShortID returns the display form of an order id (first 8 characters).
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func deliveryLabel(method string) string {
	if method == models.DeliveryPickup {
		return "Pickup"
	}
	return "Courier"
}

func writeItems(b *strings.Builder, items []models.OrderItem, withOptions bool) {
	if len(items) == 0 {
		return
	}
	b.WriteString("*Items:*\n")
	for i, item := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, item.ProductName)
		fmt.Fprintf(b, "   %d pcs. × %s ₽\n", item.Quantity, Price(item.UnitPrice))
		if withOptions {
			if item.Size != "" {
				fmt.Fprintf(b, "   Size: %s\n", item.Size)
			}
			if item.Color != "" {
				fmt.Fprintf(b, "   Color: %s\n", item.Color)
			}
		}
		b.WriteString("\n")
	}
}
