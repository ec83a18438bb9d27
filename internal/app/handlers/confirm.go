package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clorywears/storefront/internal/service"
	"github.com/clorywears/storefront/internal/storage"
)

// ConfirmPaymentResponse — подтверждение принято.
type ConfirmPaymentResponse struct {
	OK bool `json:"ok"`
}

// ConfirmPaymentHandler обрабатывает POST /api/orders/{orderID}/confirm-payment
func ConfirmPaymentHandler(log *slog.Logger, confirmService service.ConfirmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ConfirmPaymentHandler"
		logger := log.With(slog.String("op", op))

		orderID := chi.URLParam(r, "orderID")
		if orderID == "" {
			writeError(logger, w, http.StatusBadRequest, "Missing order id.")
			return
		}

		if err := confirmService.Confirm(r.Context(), orderID); err != nil {
			switch {
			case errors.Is(err, service.ErrReceiptRequired):
				writeError(logger, w, http.StatusBadRequest, err.Error())
			case errors.Is(err, storage.ErrOrderNotFound):
				writeError(logger, w, http.StatusNotFound, "Order not found.")
			default:
				logger.Error("failed to confirm payment", slog.Any("error", err))
				writeError(logger, w, http.StatusInternalServerError, "Server error.")
			}
			return
		}

		writeJSON(logger, w, http.StatusOK, ConfirmPaymentResponse{OK: true})
	}
}
