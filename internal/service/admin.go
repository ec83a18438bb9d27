package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/clorywears/storefront/internal/domain/models"
	"github.com/clorywears/storefront/internal/storage"
)

var (
	ErrNotAdmin        = errors.New("Forbidden: not an admin.")
	ErrNothingToUpdate = errors.New("Nothing to update.")
	ErrCancelledPaid   = errors.New("Cannot mark a cancelled order as paid.")
	ErrInvalidStatus   = errors.New("invalid status value")
)

// AdminService — операции консоли оператора.
type AdminService interface {
	// Authorize проверяет, что аутентифицированный email входит в allow-list админов.
	Authorize(ctx context.Context, email string) error
	// ListOrders возвращает все заказы с позициями, новые сверху.
	ListOrders(ctx context.Context) ([]*models.Order, error)
	// UpdateStatuses меняет один или оба статуса заказа; пустое значение — поле не трогаем.
	UpdateStatuses(ctx context.Context, orderID string, paymentStatus models.PaymentStatus, orderStatus models.OrderStatus) error
}

type adminService struct {
	log       *slog.Logger
	orderRepo storage.OrderStorage
	adminRepo storage.AdminStorage
}

func NewAdminService(log *slog.Logger, orderRepo storage.OrderStorage, adminRepo storage.AdminStorage) AdminService {
	return &adminService{log: log, orderRepo: orderRepo, adminRepo: adminRepo}
}

func (s *adminService) Authorize(ctx context.Context, email string) error {
	const op = "service.AdminService.Authorize"

	ok, err := s.adminRepo.IsAdmin(ctx, email)
	if err != nil {
		s.log.Error("admin lookup failed", slog.String("op", op), slog.Any("error", err))
		return fmt.Errorf("%s: failed to check admin: %w", op, err)
	}
	if !ok {
		s.log.Warn("non-admin access attempt", slog.String("op", op), slog.String("email", email))
		return ErrNotAdmin
	}
	return nil
}

func (s *adminService) ListOrders(ctx context.Context) ([]*models.Order, error) {
	const op = "service.AdminService.ListOrders"

	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		s.log.Error("failed to list orders", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to list orders: %w", op, err)
	}
	return orders, nil
}

// UpdateStatuses применяет правила согласованности двух статусов,
// действующие только на этой границе:
//   - уже отмененный заказ нельзя пометить оплаченным;
//   - отмена неоплаченного заказа переводит оплату в rejected,
//     если вызывающий явно не передал другой статус оплаты тем же запросом.
func (s *adminService) UpdateStatuses(ctx context.Context, orderID string, paymentStatus models.PaymentStatus, orderStatus models.OrderStatus) error {
	const op = "service.AdminService.UpdateStatuses"
	logger := s.log.With(slog.String("op", op), slog.String("orderID", orderID))

	if paymentStatus == "" && orderStatus == "" {
		return ErrNothingToUpdate
	}
	if paymentStatus != "" && !paymentStatus.Valid() {
		return ErrInvalidStatus
	}
	if orderStatus != "" && !orderStatus.Valid() {
		return ErrInvalidStatus
	}

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		logger.Error("failed to get order", slog.Any("error", err))
		return err
	}

	if paymentStatus == models.PaymentPaid && order.OrderStatus == models.OrderCancelled {
		logger.Warn("rejected: paid on cancelled order")
		return ErrCancelledPaid
	}
	if orderStatus == models.OrderCancelled && order.PaymentStatus != models.PaymentPaid && paymentStatus == "" {
		// отмененный заказ не должен числиться оплачиваемым
		paymentStatus = models.PaymentRejected
	}

	if err := s.orderRepo.SetStatuses(ctx, orderID, paymentStatus, orderStatus); err != nil {
		logger.Error("failed to update statuses", slog.Any("error", err))
		return err
	}

	logger.Info("order statuses updated",
		slog.String("paymentStatus", string(paymentStatus)),
		slog.String("orderStatus", string(orderStatus)))
	return nil
}
