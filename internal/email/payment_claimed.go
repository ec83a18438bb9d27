package email

import (
	"fmt"
	"html"
	"strings"

	"github.com/clorywears/storefront/internal/domain/models"
	"github.com/clorywears/storefront/internal/lib/format"
)

// BuildPaymentClaimed собирает письмо оператору о том, что покупатель
// нажал "я оплатил": шапка заказа, адрес доставки, суммы, позиции и ссылка на чек.
func BuildPaymentClaimed(order *models.Order, items []*models.OrderItem) (subject, text, htmlBody string) {
	subject = fmt.Sprintf("CLORY WEARS: Payment claimed — %s", order.Reference)

	lines := []string{
		`A customer has clicked "I have made payment".`,
		"",
		"Order Reference: " + order.Reference,
		"Order ID: " + order.ID,
		fmt.Sprintf("Customer: %s (%s)", order.CustomerFullName, order.CustomerEmail),
		"Phone: " + order.CustomerPhone,
		"",
		"Delivery Address:",
		joinAddress(order.ShippingAddress1, order.ShippingAddress2),
		fmt.Sprintf("%s, %s", order.ShippingCity, order.ShippingState),
	}
	if order.ShippingNote != "" {
		lines = append(lines, "Note: "+order.ShippingNote)
	}
	lines = append(lines,
		"",
		"Pricing:",
		"Subtotal: "+format.Naira(order.SubtotalNGN),
		"Shipping: "+format.Naira(order.ShippingNGN),
		"Total: "+format.Naira(order.GrandTotalNGN),
		"",
		"Receipt: "+order.ReceiptURL,
		"",
		"Items:",
	)
	for _, it := range items {
		lines = append(lines,
			fmt.Sprintf("• %s (%s)", it.Name, it.Category),
			fmt.Sprintf("  - Color: %s, Size: %s, Qty: %d", it.Color, it.Size, it.Quantity),
			"  - Line total: "+format.Naira(it.PriceNGN*it.Quantity),
		)
	}
	text = strings.Join(lines, "\n")

	var b strings.Builder
	b.WriteString(`<div style="font-family:sans-serif;line-height:1.5;">`)
	fmt.Fprintf(&b, `<h2>Payment claimed — %s</h2>`, html.EscapeString(order.Reference))
	b.WriteString(`<p>A customer has clicked <b>I have made payment</b>. Please review the receipt.</p>`)

	fmt.Fprintf(&b, `<p><b>%s</b> — %s<br>Phone: %s</p>`,
		html.EscapeString(order.CustomerFullName),
		html.EscapeString(order.CustomerEmail),
		html.EscapeString(order.CustomerPhone))

	fmt.Fprintf(&b, `<p>%s<br>%s, %s`,
		html.EscapeString(joinAddress(order.ShippingAddress1, order.ShippingAddress2)),
		html.EscapeString(order.ShippingCity),
		html.EscapeString(order.ShippingState))
	if order.ShippingNote != "" {
		fmt.Fprintf(&b, `<br>Note: %s`, html.EscapeString(order.ShippingNote))
	}
	b.WriteString(`</p>`)

	fmt.Fprintf(&b, `<p><a href="%s">View uploaded receipt</a></p>`, html.EscapeString(order.ReceiptURL))

	b.WriteString(`<table style="width:100%;border-collapse:collapse;"><tbody>`)
	for _, it := range items {
		fmt.Fprintf(&b,
			`<tr><td style="padding:6px 0;border-bottom:1px solid #eee;">%s<br><small>%s • Color: %s • Size: %s • Qty: %d</small></td><td style="text-align:right;">%s</td></tr>`,
			html.EscapeString(it.Name),
			html.EscapeString(it.Category),
			html.EscapeString(it.Color),
			html.EscapeString(it.Size),
			it.Quantity,
			format.Naira(it.PriceNGN*it.Quantity))
	}
	b.WriteString(`</tbody></table>`)

	fmt.Fprintf(&b, `<p>Subtotal: %s<br>Shipping: %s<br><b>Total: %s</b></p>`,
		format.Naira(order.SubtotalNGN),
		format.Naira(order.ShippingNGN),
		format.Naira(order.GrandTotalNGN))

	fmt.Fprintf(&b, `<p><small>CLORY WEARS automated notification • Order ID: %s</small></p>`, html.EscapeString(order.ID))
	b.WriteString(`</div>`)
	htmlBody = b.String()

	return subject, text, htmlBody
}

func joinAddress(address1, address2 string) string {
	if address2 == "" {
		return address1
	}
	return address1 + ", " + address2
}
