package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"

	"github.com/clorywears/storefront/internal/app"
	"github.com/clorywears/storefront/internal/app/handlers"
	"github.com/clorywears/storefront/internal/catalog"
	"github.com/clorywears/storefront/internal/config"
	"github.com/clorywears/storefront/internal/email"
	"github.com/clorywears/storefront/internal/filestore"
	"github.com/clorywears/storefront/internal/jwt-new/jwtmiddleware"
	"github.com/clorywears/storefront/internal/lib/logger"
	"github.com/clorywears/storefront/internal/lib/logger/handlers/urllog"
	"github.com/clorywears/storefront/internal/service"
	"github.com/clorywears/storefront/internal/storage"
)

func main() {
	// загрузка конфигурации
	cfg := config.MustLoad()

	// инициализация логгера, зависит от настройки окружения
	log := logger.SetupLogger(cfg.Env)
	log.Info("starting app", slog.String("env", cfg.Env))

	// загружаем объект приложения, конфигом и подключением к БД
	application, err := app.NewApp(log, cfg)
	if err != nil {
		log.Error("failed to initialize app", slog.Any("error", err))
		panic(errors.Wrap(err, "failed to initialize app"))
	}
	defer application.DB.Close()

	// хранилище чеков и почтовый клиент — внешние зависимости
	receiptStore, err := filestore.NewMinioStore(cfg.Storage)
	if err != nil {
		log.Error("failed to initialize receipt store", slog.Any("error", err))
		panic(errors.Wrap(err, "failed to initialize receipt store"))
	}
	mailer := email.NewResendMailer(cfg.Email)

	router := chi.NewRouter()
	// настройка middleware
	router.Use(middleware.RequestID)
	router.Use(urllog.CustomLoggerMiddleware(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	// реализация слоев по работе с БД по каждому направлению
	orderRepo := storage.NewOrderRepository(application.DB)
	adminRepo := storage.NewAdminRepository(application.DB)

	products := catalog.NewSeeded()

	orderService := service.NewOrderService(application.Logger, orderRepo)
	receiptService := service.NewReceiptService(application.Logger, orderRepo, receiptStore, cfg.Checkout.MaxReceiptBytes)
	confirmService := service.NewConfirmService(application.Logger, orderRepo, mailer)
	adminService := service.NewAdminService(application.Logger, orderRepo, adminRepo)

	// публичная витрина
	router.Get("/api/products", handlers.ProductsHandler(application.Logger, products))
	router.Get("/api/shipping/rates", handlers.ShippingRatesHandler(application.Logger))
	router.Get("/api/meta", handlers.MetaHandler(application.Logger, cfg.AdminEmails))

	// оформление заказа и подтверждение оплаты
	router.Post("/api/orders", handlers.CreateOrderHandler(application.Logger, orderService))
	router.Post("/api/orders/{orderID}/receipt", handlers.UploadReceiptHandler(application.Logger, receiptService, cfg.Checkout.MaxReceiptBytes))
	router.Post("/api/orders/{orderID}/confirm-payment", handlers.ConfirmPaymentHandler(application.Logger, confirmService))

	// консоль оператора — только с валидным bearer-токеном
	router.Group(func(r chi.Router) {
		jwtMW := jwtmiddleware.NewJWTMiddleware(cfg.JWT.Secret)
		r.Use(jwtMW)
		r.Get("/api/admin/orders", handlers.AdminOrdersHandler(application.Logger, adminService))
		r.Post("/api/admin/orders/{orderID}/status", handlers.AdminUpdateStatusHandler(application.Logger, adminService))
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", slog.Any("error", err))
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	stopSign := <-stop
	log.Info("received shutdown signal", slog.String("signal", stopSign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", slog.Any("error", err))
	}
	log.Info("server gracefully stopped")
}
