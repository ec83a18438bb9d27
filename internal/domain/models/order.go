package models

import "time"

// PaymentStatus — статус оплаты заказа. Меняется независимо от OrderStatus,
// согласованность двух полей проверяется только на границе админского обновления.
type PaymentStatus string

const (
	PaymentPending         PaymentStatus = "pending"
	PaymentReceiptUploaded PaymentStatus = "receipt_uploaded"
	PaymentClaimed         PaymentStatus = "payment_claimed"
	PaymentPaid            PaymentStatus = "paid"
	PaymentRejected        PaymentStatus = "rejected"
)

// Valid проверяет, что значение входит в список допустимых статусов оплаты.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentReceiptUploaded, PaymentClaimed, PaymentPaid, PaymentRejected:
		return true
	}
	return false
}

// OrderStatus — статус выполнения заказа.
type OrderStatus string

const (
	OrderCreated               OrderStatus = "created"
	OrderAwaitingPaymentReview OrderStatus = "awaiting_payment_review"
	OrderProcessing            OrderStatus = "processing"
	OrderShipped               OrderStatus = "shipped"
	OrderDelivered             OrderStatus = "delivered"
	OrderCancelled             OrderStatus = "cancelled"
)

// Valid проверяет, что значение входит в список допустимых статусов заказа.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderCreated, OrderAwaitingPaymentReview, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order — заказ покупателя. Все суммы в найрах, целые числа без копеек.
// ReceiptURL пустой, пока покупатель не загрузил чек.
type Order struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`

	CustomerEmail    string `json:"customer_email"`
	CustomerFullName string `json:"customer_full_name"`
	CustomerPhone    string `json:"customer_phone"`

	ShippingState    string `json:"shipping_state"`
	ShippingCity     string `json:"shipping_city"`
	ShippingAddress1 string `json:"shipping_address1"`
	ShippingAddress2 string `json:"shipping_address2,omitempty"`
	ShippingNote     string `json:"shipping_note,omitempty"`

	SubtotalNGN   int `json:"subtotal_ngn"`
	ShippingNGN   int `json:"shipping_ngn"`
	GrandTotalNGN int `json:"grand_total_ngn"`

	ReceiptURL    string        `json:"receipt_url,omitempty"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	OrderStatus   OrderStatus   `json:"order_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items []*OrderItem `json:"order_items,omitempty"`
}

// OrderItem — снимок товара на момент оформления заказа.
// Денормализован намеренно: правки каталога не должны менять историю заказов.
type OrderItem struct {
	ID        int64     `json:"id"`
	OrderID   string    `json:"order_id"`
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	PriceNGN  int       `json:"price_ngn"`
	Quantity  int       `json:"quantity"`
	Size      string    `json:"size"`
	Color     string    `json:"color"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}
