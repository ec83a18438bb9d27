package handlers

import (
	"log/slog"
	"net/http"

	"github.com/clorywears/storefront/internal/catalog"
	"github.com/clorywears/storefront/internal/domain/models"
)

// ProductsResponse — структура ответа со списком товаров.
type ProductsResponse struct {
	OK       bool              `json:"ok"`
	Products []*models.Product `json:"products"`
}

// ProductsHandler обрабатывает GET /api/products с необязательным фильтром ?category=
func ProductsHandler(log *slog.Logger, cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ProductsHandler"
		logger := log.With(slog.String("op", op))

		products := cat.All()
		if q := r.URL.Query().Get("category"); q != "" {
			category := models.ProductCategory(q)
			if !category.Valid() {
				logger.Warn("unknown category", slog.String("category", q))
				writeError(logger, w, http.StatusBadRequest, "Unknown category.")
				return
			}
			products = cat.ByCategory(category)
		}

		writeJSON(logger, w, http.StatusOK, ProductsResponse{OK: true, Products: products})
	}
}
