package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/clorywears/storefront/internal/domain/models"
	"github.com/lib/pq"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderStorage описывает методы для работы с заказами и их позициями.
type OrderStorage interface {
	// CreateOrder вставляет строку заказа. Позиции вставляются отдельным вызовом,
	// транзакции нет — при ошибке вставки позиций сервис делает компенсирующее удаление.
	CreateOrder(ctx context.Context, order *models.Order) error
	// CreateOrderItems вставляет снимки позиций заказа.
	CreateOrderItems(ctx context.Context, orderID string, items []*models.OrderItem) error
	// DeleteOrder удаляет заказ (компенсация неудачной вставки позиций).
	DeleteOrder(ctx context.Context, id string) error
	// GetOrderByID возвращает заказ без позиций.
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	// GetOrderItems возвращает позиции заказа в порядке добавления.
	GetOrderItems(ctx context.Context, orderID string) ([]*models.OrderItem, error)
	// ListOrders возвращает все заказы с позициями, новые сверху.
	ListOrders(ctx context.Context) ([]*models.Order, error)
	// SetReceipt публикует URL чека и переводит статус оплаты.
	SetReceipt(ctx context.Context, id, receiptURL string, status models.PaymentStatus) error
	// SetStatuses обновляет статусы заказа; пустое значение оставляет поле как есть.
	SetStatuses(ctx context.Context, id string, paymentStatus models.PaymentStatus, orderStatus models.OrderStatus) error
}

// orderRepository — конкретная реализация OrderStorage поверх Postgres.
type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт новый репозиторий заказов.
func NewOrderRepository(db *sql.DB) OrderStorage {
	return &orderRepository{db: db}
}

const orderColumns = `id, reference, customer_email, customer_full_name, customer_phone,
		shipping_state, shipping_city, shipping_address1,
		COALESCE(shipping_address2, ''), COALESCE(shipping_note, ''),
		subtotal_ngn, shipping_ngn, grand_total_ngn,
		COALESCE(receipt_url, ''), payment_status, order_status,
		created_at, updated_at`

func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	query := `INSERT INTO orders (
			id, reference, customer_email, customer_full_name, customer_phone,
			shipping_state, shipping_city, shipping_address1, shipping_address2, shipping_note,
			subtotal_ngn, shipping_ngn, grand_total_ngn,
			receipt_url, payment_status, order_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), NULLIF($10, ''),
			$11, $12, $13, NULL, $14, $15, NOW(), NOW())`
	_, err := r.db.ExecContext(ctx, query,
		order.ID, order.Reference,
		order.CustomerEmail, order.CustomerFullName, order.CustomerPhone,
		order.ShippingState, order.ShippingCity, order.ShippingAddress1,
		order.ShippingAddress2, order.ShippingNote,
		order.SubtotalNGN, order.ShippingNGN, order.GrandTotalNGN,
		order.PaymentStatus, order.OrderStatus,
	)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *orderRepository) CreateOrderItems(ctx context.Context, orderID string, items []*models.OrderItem) error {
	query := `INSERT INTO order_items (order_id, product_id, name, category, price_ngn, quantity, size, color, image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())`
	for _, it := range items {
		_, err := r.db.ExecContext(ctx, query,
			orderID, it.ProductID, it.Name, it.Category, it.PriceNGN, it.Quantity, it.Size, it.Color, it.Image,
		)
		if err != nil {
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}
	return nil
}

func (r *orderRepository) DeleteOrder(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	order := &models.Order{}
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)
	if err := scanOrder(row, order); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetOrderItems(ctx context.Context, orderID string) ([]*models.OrderItem, error) {
	query := `SELECT id, order_id, product_id, name, category, price_ngn, quantity, size, color, image, created_at
		FROM order_items WHERE order_id = $1 ORDER BY created_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.OrderItem
	for rows.Next() {
		it := &models.OrderItem{}
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Name, &it.Category,
			&it.PriceNGN, &it.Quantity, &it.Size, &it.Color, &it.Image, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListOrders поднимает все заказы, затем одним запросом — позиции по всем id.
func (r *orderRepository) ListOrders(ctx context.Context) ([]*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	byID := make(map[string]*models.Order)
	var ids []string
	for rows.Next() {
		order := &models.Order{}
		if err := scanOrder(rows, order); err != nil {
			return nil, err
		}
		orders = append(orders, order)
		byID[order.ID] = order
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return []*models.Order{}, nil
	}

	itemsQuery := `SELECT id, order_id, product_id, name, category, price_ngn, quantity, size, color, image, created_at
		FROM order_items WHERE order_id = ANY($1) ORDER BY created_at ASC, id ASC`
	itemRows, err := r.db.QueryContext(ctx, itemsQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		it := &models.OrderItem{}
		if err := itemRows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Name, &it.Category,
			&it.PriceNGN, &it.Quantity, &it.Size, &it.Color, &it.Image, &it.CreatedAt); err != nil {
			return nil, err
		}
		if order, ok := byID[it.OrderID]; ok {
			order.Items = append(order.Items, it)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) SetReceipt(ctx context.Context, id, receiptURL string, status models.PaymentStatus) error {
	query := `UPDATE orders SET receipt_url = $1, payment_status = $2, updated_at = NOW() WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, receiptURL, status, id)
	if err != nil {
		return fmt.Errorf("failed to attach receipt: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// SetStatuses: пустая строка в статусе означает "не менять" (COALESCE/NULLIF на стороне БД).
func (r *orderRepository) SetStatuses(ctx context.Context, id string, paymentStatus models.PaymentStatus, orderStatus models.OrderStatus) error {
	query := `UPDATE orders SET
			payment_status = COALESCE(NULLIF($1, ''), payment_status),
			order_status = COALESCE(NULLIF($2, ''), order_status),
			updated_at = NOW()
		WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, string(paymentStatus), string(orderStatus), id)
	if err != nil {
		return fmt.Errorf("failed to update order statuses: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// scanOrder читает строку заказа из общего списка колонок orderColumns.
func scanOrder(row interface{ Scan(dest ...any) error }, order *models.Order) error {
	return row.Scan(
		&order.ID, &order.Reference,
		&order.CustomerEmail, &order.CustomerFullName, &order.CustomerPhone,
		&order.ShippingState, &order.ShippingCity, &order.ShippingAddress1,
		&order.ShippingAddress2, &order.ShippingNote,
		&order.SubtotalNGN, &order.ShippingNGN, &order.GrandTotalNGN,
		&order.ReceiptURL, &order.PaymentStatus, &order.OrderStatus,
		&order.CreatedAt, &order.UpdatedAt,
	)
}
