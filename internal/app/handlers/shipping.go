package handlers

import (
	"log/slog"
	"net/http"

	"github.com/clorywears/storefront/internal/shipping"
)

// ShippingRatesResponse — полная таблица тарифов плюс тариф по умолчанию.
type ShippingRatesResponse struct {
	OK              bool            `json:"ok"`
	Rates           []shipping.Rate `json:"rates"`
	DefaultPriceNGN int             `json:"defaultPriceNgn"`
}

// ShippingRatesHandler обрабатывает GET /api/shipping/rates
func ShippingRatesHandler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ShippingRatesHandler"
		logger := log.With(slog.String("op", op))

		writeJSON(logger, w, http.StatusOK, ShippingRatesResponse{
			OK:              true,
			Rates:           shipping.Rates(),
			DefaultPriceNGN: shipping.DefaultPriceNGN,
		})
	}
}
