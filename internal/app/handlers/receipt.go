package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clorywears/storefront/internal/service"
	"github.com/clorywears/storefront/internal/storage"
)

// UploadReceiptResponse — публичный URL загруженного чека.
type UploadReceiptResponse struct {
	OK         bool   `json:"ok"`
	ReceiptURL string `json:"receiptUrl"`
}

// UploadReceiptHandler обрабатывает POST /api/orders/{orderID}/receipt.
// Файл ожидается в multipart-поле "receipt".
func UploadReceiptHandler(log *slog.Logger, receiptService service.ReceiptService, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.UploadReceiptHandler"
		logger := log.With(slog.String("op", op))

		orderID := chi.URLParam(r, "orderID")
		if orderID == "" {
			writeError(logger, w, http.StatusBadRequest, "Missing order id.")
			return
		}

		// Запас сверх maxBytes покрывает multipart-обвязку
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+1<<20)

		file, header, err := r.FormFile("receipt")
		if err != nil {
			logger.Warn("missing receipt file", slog.Any("error", err))
			writeError(logger, w, http.StatusBadRequest, "Receipt file is required.")
			return
		}
		defer file.Close()

		receiptURL, err := receiptService.Upload(
			r.Context(), orderID,
			header.Filename, header.Header.Get("Content-Type"), header.Size, file,
		)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUnsupportedFileType),
				errors.Is(err, service.ErrFileTooLarge),
				errors.Is(err, service.ErrInvalidExtension):
				writeError(logger, w, http.StatusBadRequest, err.Error())
			case errors.Is(err, storage.ErrOrderNotFound):
				writeError(logger, w, http.StatusNotFound, "Order not found.")
			default:
				logger.Error("failed to upload receipt", slog.Any("error", err))
				writeError(logger, w, http.StatusInternalServerError, "Server error.")
			}
			return
		}

		writeJSON(logger, w, http.StatusOK, UploadReceiptResponse{OK: true, ReceiptURL: receiptURL})
	}
}
