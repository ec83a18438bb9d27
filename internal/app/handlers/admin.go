package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clorywears/storefront/internal/domain/models"
	"github.com/clorywears/storefront/internal/jwt-new/jwtmiddleware"
	"github.com/clorywears/storefront/internal/service"
	"github.com/clorywears/storefront/internal/storage"
)

// AdminOrdersResponse — все заказы с позициями, новые сверху.
type AdminOrdersResponse struct {
	OK     bool            `json:"ok"`
	Orders []*models.Order `json:"orders"`
}

// AdminUpdateRequest — частичное обновление статусов: пустое поле не трогаем.
type AdminUpdateRequest struct {
	PaymentStatus string `json:"payment_status"`
	OrderStatus   string `json:"order_status"`
}

// AdminUpdateResponse — обновление применено.
type AdminUpdateResponse struct {
	OK bool `json:"ok"`
}

// adminEmail достает email из контекста (положен JWT middleware)
// и проверяет его по allow-list админов. Пишет ответ сам при отказе.
func adminEmail(logger *slog.Logger, w http.ResponseWriter, r *http.Request, adminService service.AdminService) (string, bool) {
	email, ok := jwtmiddleware.FromContext(r.Context())
	if !ok {
		logger.Error("email not found in context")
		writeError(logger, w, http.StatusUnauthorized, "Missing Authorization Bearer token.")
		return "", false
	}
	if err := adminService.Authorize(r.Context(), email); err != nil {
		if errors.Is(err, service.ErrNotAdmin) {
			writeError(logger, w, http.StatusForbidden, err.Error())
			return "", false
		}
		logger.Error("admin authorization failed", slog.Any("error", err))
		writeError(logger, w, http.StatusInternalServerError, "Server error.")
		return "", false
	}
	return email, true
}

// AdminOrdersHandler обрабатывает GET /api/admin/orders
func AdminOrdersHandler(log *slog.Logger, adminService service.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.AdminOrdersHandler"
		logger := log.With(slog.String("op", op))

		if _, ok := adminEmail(logger, w, r, adminService); !ok {
			return
		}

		orders, err := adminService.ListOrders(r.Context())
		if err != nil {
			logger.Error("failed to list orders", slog.Any("error", err))
			writeError(logger, w, http.StatusInternalServerError, "Server error.")
			return
		}
		if orders == nil {
			orders = []*models.Order{}
		}

		writeJSON(logger, w, http.StatusOK, AdminOrdersResponse{OK: true, Orders: orders})
	}
}

// AdminUpdateStatusHandler обрабатывает POST /api/admin/orders/{orderID}/status
func AdminUpdateStatusHandler(log *slog.Logger, adminService service.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.AdminUpdateStatusHandler"
		logger := log.With(slog.String("op", op))

		email, ok := adminEmail(logger, w, r, adminService)
		if !ok {
			return
		}
		logger = logger.With(slog.String("email", email))

		orderID := chi.URLParam(r, "orderID")
		if orderID == "" {
			writeError(logger, w, http.StatusBadRequest, "Missing order id.")
			return
		}

		var req AdminUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("invalid request: decoding error", slog.Any("error", err))
			writeError(logger, w, http.StatusBadRequest, "Invalid update payload.")
			return
		}

		err := adminService.UpdateStatuses(r.Context(), orderID,
			models.PaymentStatus(req.PaymentStatus), models.OrderStatus(req.OrderStatus))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidStatus):
				writeError(logger, w, http.StatusBadRequest, "Invalid update payload.")
			case errors.Is(err, service.ErrNothingToUpdate),
				errors.Is(err, service.ErrCancelledPaid):
				writeError(logger, w, http.StatusBadRequest, err.Error())
			case errors.Is(err, storage.ErrOrderNotFound):
				writeError(logger, w, http.StatusNotFound, "Order not found.")
			default:
				logger.Error("failed to update statuses", slog.Any("error", err))
				writeError(logger, w, http.StatusInternalServerError, "Server error.")
			}
			return
		}

		writeJSON(logger, w, http.StatusOK, AdminUpdateResponse{OK: true})
	}
}
