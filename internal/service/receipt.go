package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/clorywears/storefront/internal/domain/models"
	"github.com/clorywears/storefront/internal/filestore"
	"github.com/clorywears/storefront/internal/storage"
	"github.com/google/uuid"
)

var (
	ErrUnsupportedFileType = errors.New("Unsupported file type. Use JPG, PNG, or WEBP.")
	ErrFileTooLarge        = errors.New("File too large. Max size is 6MB.")
	ErrInvalidExtension    = errors.New("Invalid file extension. Use .jpg, .png, or .webp")
)

// allowedMIME — принимаются только изображения этих типов.
var allowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ReceiptService принимает чек об оплате и публикует его URL на заказе.
type ReceiptService interface {
	Upload(ctx context.Context, orderID, filename, contentType string, size int64, file io.Reader) (string, error)
}

type receiptService struct {
	log       *slog.Logger
	orderRepo storage.OrderStorage
	store     filestore.ReceiptStore
	maxBytes  int64
}

func NewReceiptService(log *slog.Logger, orderRepo storage.OrderStorage, store filestore.ReceiptStore, maxBytes int64) ReceiptService {
	return &receiptService{log: log, orderRepo: orderRepo, store: store, maxBytes: maxBytes}
}

// Upload валидирует файл, кладет его в хранилище под ключом
// {orderID}/{штамп времени}-{случайный суффикс}.{ext} и переводит
// payment_status в receipt_uploaded. Отказ не меняет заказ.
func (s *receiptService) Upload(ctx context.Context, orderID, filename, contentType string, size int64, file io.Reader) (string, error) {
	const op = "service.ReceiptService.Upload"
	logger := s.log.With(slog.String("op", op), slog.String("orderID", orderID))
	logger.Info("uploading receipt", slog.String("contentType", contentType), slog.Int64("size", size))

	if !allowedMIME[contentType] {
		logger.Warn("unsupported content type")
		return "", ErrUnsupportedFileType
	}
	if size <= 0 || size > s.maxBytes {
		logger.Warn("file size out of bounds", slog.Int64("max", s.maxBytes))
		return "", ErrFileTooLarge
	}
	ext := safeExt(filename)
	if ext == "" {
		logger.Warn("invalid file extension", slog.String("filename", filename))
		return "", ErrInvalidExtension
	}

	// Заказ должен существовать до загрузки файла
	if _, err := s.orderRepo.GetOrderByID(ctx, orderID); err != nil {
		logger.Error("failed to get order", slog.Any("error", err))
		return "", err
	}

	// Штамп времени + случайный суффикс исключают коллизии ключей
	stamp := strings.NewReplacer(":", "-", ".", "-").Replace(time.Now().UTC().Format(time.RFC3339))
	rand := uuid.NewString()[:8]
	objectKey := fmt.Sprintf("%s/%s-%s.%s", orderID, stamp, rand, ext)

	receiptURL, err := s.store.Save(ctx, objectKey, contentType, file, size)
	if err != nil {
		logger.Error("failed to store receipt", slog.Any("error", err))
		return "", fmt.Errorf("%s: failed to store receipt: %w", op, err)
	}

	if err := s.orderRepo.SetReceipt(ctx, orderID, receiptURL, models.PaymentReceiptUploaded); err != nil {
		logger.Error("failed to attach receipt to order", slog.Any("error", err))
		return "", fmt.Errorf("%s: failed to attach receipt: %w", op, err)
	}

	logger.Info("receipt uploaded", slog.String("receiptURL", receiptURL))
	return receiptURL, nil
}

// safeExt нормализует расширение файла: jpg и jpeg считаются одним типом.
func safeExt(filename string) string {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(filename), ".")) {
	case "jpg", "jpeg":
		return "jpeg"
	case "png":
		return "png"
	case "webp":
		return "webp"
	}
	return ""
}
