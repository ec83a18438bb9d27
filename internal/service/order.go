package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/clorywears/storefront/internal/domain/models"
	"github.com/clorywears/storefront/internal/storage"
	"github.com/google/uuid"
)

// Тексты ошибок уходят клиенту как есть, поэтому они человекочитаемые.
var (
	ErrSubtotalMismatch = errors.New("Subtotal mismatch. Please refresh and try again.")
	ErrTotalMismatch    = errors.New("Total mismatch. Please refresh and try again.")
)

// OrderCustomer — контактные данные покупателя.
type OrderCustomer struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required,min=2"`
	Phone    string `json:"phone" validate:"required,min=6"`
}

// OrderShipping — адрес доставки.
type OrderShipping struct {
	State    string `json:"state" validate:"required,min=2"`
	City     string `json:"city" validate:"required,min=2"`
	Address1 string `json:"address1" validate:"required,min=4"`
	Address2 string `json:"address2"`
	Note     string `json:"note"`
}

// OrderPricing — суммы, посчитанные клиентом; сервер пересчитывает и сверяет.
type OrderPricing struct {
	SubtotalNGN   int `json:"subtotalNgn" validate:"min=0"`
	ShippingNGN   int `json:"shippingNgn" validate:"min=0"`
	GrandTotalNGN int `json:"grandTotalNgn" validate:"required,gt=0"`
}

// OrderItemInput — позиция заказа в запросе на оформление.
type OrderItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Category  string `json:"category" validate:"required,oneof=trousers shirts"`
	PriceNGN  int    `json:"priceNgn" validate:"required,gt=0"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=99"`
	Size      string `json:"size" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Image     string `json:"image" validate:"required"`
}

// CreateOrderRequest — полный запрос на оформление заказа.
type CreateOrderRequest struct {
	Customer OrderCustomer    `json:"customer" validate:"required"`
	Shipping OrderShipping    `json:"shipping" validate:"required"`
	Pricing  OrderPricing     `json:"pricing"`
	Items    []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// OrderService оформляет новые заказы.
type OrderService interface {
	Create(ctx context.Context, req *CreateOrderRequest) (*models.Order, error)
}

type orderService struct {
	log       *slog.Logger
	orderRepo storage.OrderStorage
}

func NewOrderService(log *slog.Logger, orderRepo storage.OrderStorage) OrderService {
	return &orderService{log: log, orderRepo: orderRepo}
}

// Create пересчитывает суммы на сервере, сверяет их с присланными клиентом
// и делает две зависимые записи: заказ, затем позиции. Транзакции нет:
// при ошибке вставки позиций заказ удаляется компенсирующим DELETE.
func (s *orderService) Create(ctx context.Context, req *CreateOrderRequest) (*models.Order, error) {
	const op = "service.OrderService.Create"
	logger := s.log.With(slog.String("op", op), slog.String("email", req.Customer.Email))
	logger.Info("creating order")

	// Анти-тамперинг: суммы пересчитываются из позиций, расхождение — отказ
	computedSubtotal := 0
	for _, it := range req.Items {
		computedSubtotal += it.PriceNGN * it.Quantity
	}
	computedGrand := computedSubtotal + req.Pricing.ShippingNGN

	if computedSubtotal != req.Pricing.SubtotalNGN {
		logger.Warn("subtotal mismatch",
			slog.Int("computed", computedSubtotal),
			slog.Int("claimed", req.Pricing.SubtotalNGN))
		return nil, ErrSubtotalMismatch
	}
	if computedGrand != req.Pricing.GrandTotalNGN {
		logger.Warn("grand total mismatch",
			slog.Int("computed", computedGrand),
			slog.Int("claimed", req.Pricing.GrandTotalNGN))
		return nil, ErrTotalMismatch
	}

	order := &models.Order{
		ID:        uuid.NewString(),
		Reference: makeReference(),

		CustomerEmail:    strings.ToLower(req.Customer.Email),
		CustomerFullName: req.Customer.FullName,
		CustomerPhone:    req.Customer.Phone,

		ShippingState:    req.Shipping.State,
		ShippingCity:     req.Shipping.City,
		ShippingAddress1: req.Shipping.Address1,
		ShippingAddress2: req.Shipping.Address2,
		ShippingNote:     req.Shipping.Note,

		SubtotalNGN:   req.Pricing.SubtotalNGN,
		ShippingNGN:   req.Pricing.ShippingNGN,
		GrandTotalNGN: req.Pricing.GrandTotalNGN,

		PaymentStatus: models.PaymentPending,
		OrderStatus:   models.OrderCreated,
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		logger.Error("failed to create order", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to create order: %w", op, err)
	}

	items := make([]*models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, &models.OrderItem{
			OrderID:   order.ID,
			ProductID: it.ProductID,
			Name:      it.Name,
			Category:  it.Category,
			PriceNGN:  it.PriceNGN,
			Quantity:  it.Quantity,
			Size:      it.Size,
			Color:     it.Color,
			Image:     it.Image,
		})
	}

	if err := s.orderRepo.CreateOrderItems(ctx, order.ID, items); err != nil {
		// Компенсирующее удаление, чтобы не оставить заказ без позиций
		if delErr := s.orderRepo.DeleteOrder(ctx, order.ID); delErr != nil {
			logger.Error("compensating delete failed", slog.Any("error", delErr))
		}
		logger.Error("failed to create order items", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to add order items: %w", op, err)
	}

	order.Items = items
	logger.Info("order created", slog.String("orderID", order.ID), slog.String("reference", order.Reference))
	return order, nil
}

// makeReference генерирует человекочитаемый номер заказа,
// например CLORY-20260111-7F2A9C.
func makeReference() string {
	rand := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("CLORY-%s-%s", time.Now().Format("20060102"), strings.ToUpper(rand))
}
