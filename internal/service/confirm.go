package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/clorywears/storefront/internal/domain/models"
	"github.com/clorywears/storefront/internal/email"
	"github.com/clorywears/storefront/internal/storage"
)

var ErrReceiptRequired = errors.New("Upload a receipt before confirming payment.")

// ConfirmService фиксирует заявление покупателя об оплате и уведомляет оператора.
type ConfirmService interface {
	Confirm(ctx context.Context, orderID string) error
}

type confirmService struct {
	log       *slog.Logger
	orderRepo storage.OrderStorage
	mailer    email.Mailer
}

func NewConfirmService(log *slog.Logger, orderRepo storage.OrderStorage, mailer email.Mailer) ConfirmService {
	return &confirmService{log: log, orderRepo: orderRepo, mailer: mailer}
}

// Confirm требует ранее загруженный чек, переводит заказ в
// payment_claimed / awaiting_payment_review и шлет письмо оператору.
// Шаг не атомарный: письмо уходит после обновления БД, и при ошибке отправки
// заказ остается обновленным, а ошибка возвращается вызывающему.
func (s *confirmService) Confirm(ctx context.Context, orderID string) error {
	const op = "service.ConfirmService.Confirm"
	logger := s.log.With(slog.String("op", op), slog.String("orderID", orderID))
	logger.Info("confirming payment")

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		logger.Error("failed to get order", slog.Any("error", err))
		return err
	}

	if order.ReceiptURL == "" {
		logger.Warn("confirm rejected: no receipt on order")
		return ErrReceiptRequired
	}

	items, err := s.orderRepo.GetOrderItems(ctx, orderID)
	if err != nil {
		logger.Error("failed to get order items", slog.Any("error", err))
		return fmt.Errorf("%s: failed to get order items: %w", op, err)
	}

	if err := s.orderRepo.SetStatuses(ctx, orderID, models.PaymentClaimed, models.OrderAwaitingPaymentReview); err != nil {
		logger.Error("failed to update order statuses", slog.Any("error", err))
		return fmt.Errorf("%s: failed to update order: %w", op, err)
	}
	order.PaymentStatus = models.PaymentClaimed
	order.OrderStatus = models.OrderAwaitingPaymentReview

	subject, text, html := email.BuildPaymentClaimed(order, items)
	if err := s.mailer.Send(ctx, subject, text, html); err != nil {
		// заказ уже переведен в awaiting_payment_review, оператор уведомления не получил
		logger.Error("notification failed after order update", slog.Any("error", err))
		return fmt.Errorf("%s: failed to send notification: %w", op, err)
	}

	logger.Info("payment claimed, operator notified", slog.String("reference", order.Reference))
	return nil
}
