package handlers

import (
	"log/slog"
	"net/http"
)

// MetaResponse — настройки витрины для клиента. Список admin-адресов
// нужен только для показа ссылки на консоль: авторизация на сервере
// всегда идет через таблицу admins, а не через этот список.
type MetaResponse struct {
	OK          bool     `json:"ok"`
	Store       string   `json:"store"`
	AdminEmails []string `json:"adminEmails"`
}

// MetaHandler обрабатывает GET /api/meta
func MetaHandler(log *slog.Logger, adminEmails []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.MetaHandler"
		logger := log.With(slog.String("op", op))

		writeJSON(logger, w, http.StatusOK, MetaResponse{
			OK:          true,
			Store:       "CLORY WEARS",
			AdminEmails: adminEmails,
		})
	}
}
