package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/clorywears/storefront/internal/service"
)

var validate = validator.New()

// CreateOrderResponse возвращает клиенту только id и номер заказа.
type CreateOrderResponse struct {
	OK    bool         `json:"ok"`
	Order CreatedOrder `json:"order"`
}

type CreatedOrder struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
}

// CreateOrderHandler обрабатывает POST /api/orders
func CreateOrderHandler(log *slog.Logger, orderService service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.CreateOrderHandler"
		logger := log.With(slog.String("op", op))

		var req service.CreateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("invalid request: decoding error", slog.Any("error", err))
			writeError(logger, w, http.StatusBadRequest, "Invalid order payload.")
			return
		}

		// Валидация структуры запроса с использованием validator
		if err := validate.Struct(&req); err != nil {
			logger.Error("invalid request: validation error", slog.Any("error", err))
			writeError(logger, w, http.StatusBadRequest, "Invalid order payload.")
			return
		}

		order, err := orderService.Create(r.Context(), &req)
		if err != nil {
			if errors.Is(err, service.ErrSubtotalMismatch) || errors.Is(err, service.ErrTotalMismatch) {
				writeError(logger, w, http.StatusBadRequest, err.Error())
				return
			}
			logger.Error("failed to create order", slog.Any("error", err))
			writeError(logger, w, http.StatusInternalServerError, "Server error.")
			return
		}

		writeJSON(logger, w, http.StatusOK, CreateOrderResponse{
			OK:    true,
			Order: CreatedOrder{ID: order.ID, Reference: order.Reference},
		})
	}
}
