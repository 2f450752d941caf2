package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/create_booking"
	createCheckoutHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/create_checkout"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_booking"
	getShopHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_shop"
	getUserBookingsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_user_bookings"
	listShopsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/list_shops"
	searchShopsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/search_shops"
	stripeWebhookHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/stripe_webhook"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/config"
	"github.com/m04kA/SMC-BarberBooking/internal/infra/idempotency"
	bookingRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/booking"
	shopRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/shop"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/stripe"
	bookingsService "github.com/m04kA/SMC-BarberBooking/internal/service/bookings"
	"github.com/m04kA/SMC-BarberBooking/internal/service/reservations"
	shopsService "github.com/m04kA/SMC-BarberBooking/internal/service/shops"
	confirmPaymentUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/confirm_payment"
	createBookingUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_booking"
	createCheckoutUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_checkout"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/metrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/txmanager"
)

func main() {
	// .env необязателен: в контейнере переменные приходят из окружения
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-BarberBooking...")

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load booking timezone %q: %v", cfg.Booking.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Redis: реестр обработанных платежных событий
	redisClient := redis.NewClient(&redis.Options{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		DialTimeout: time.Duration(cfg.Redis.DialTimeoutSec) * time.Second,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), time.Duration(cfg.Redis.DialTimeoutSec)*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		// Без Redis дубликаты событий отсекаются уникальными индексами БД
		log.Warn("Redis is unavailable at %s: %v", cfg.Redis.Addr, err)
	} else {
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	}
	pingCancel()

	eventStore := idempotency.NewStore(redisClient, cfg.Redis.EventTTL())

	// Платежный провайдер
	paymentClient := stripe.NewClient(stripe.Config{
		SecretKey:     cfg.Payments.SecretKey,
		WebhookSecret: cfg.Payments.WebhookSecret,
		Currency:      cfg.Payments.Currency,
		SuccessURL:    cfg.Payments.SuccessURL,
		CancelURL:     cfg.Payments.CancelURL,
		Timeout:       time.Duration(cfg.Payments.Timeout) * time.Second,
	}, log)
	if !paymentClient.Configured() {
		log.Warn("Stripe secret key is not set: checkout and refunds are disabled")
	}
	if !paymentClient.WebhookConfigured() {
		log.Warn("Stripe webhook secret is not set: payment notifications will be rejected")
	}

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	shopRepository := shopRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Сервисы
	reservationsSvc := reservations.NewService(bookingRepository, shopRepository, txMgr, log)
	bookingSvc := bookingsService.NewService(bookingRepository, shopRepository, paymentClient, metricsCollector, log)
	shopSvc := shopsService.NewService(shopRepository, cfg.Booking.PopularShopsLimit, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(reservationsSvc, metricsCollector, log)
	createCheckoutUseCase := createCheckoutUC.NewUseCase(reservationsSvc, shopRepository, paymentClient, log)
	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(
		paymentClient,
		eventStore,
		bookingRepository,
		reservationsSvc,
		metricsCollector,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, shopRepository, location, log)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	createCheckout := createCheckoutHandler.NewHandler(createCheckoutUseCase, log)
	stripeWebhook := stripeWebhookHandler.NewHandler(confirmPaymentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listShops := listShopsHandler.NewHandler(shopSvc, log)
	getShop := getShopHandler.NewHandler(shopSvc, log)
	searchShops := searchShopsHandler.NewHandler(shopSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог барбершопов; статические пути регистрируются раньше /shops/{shopId}
	api.HandleFunc("/shops", listShops.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shops/popular", listShops.HandlePopular).Methods(http.MethodGet)
	api.HandleFunc("/shops/search", searchShops.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shops/{shopId}", getShop.Handle).Methods(http.MethodGet)

	// Свободные слоты на день
	api.HandleFunc("/shops/{shopId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Уведомления платежного провайдера (подлинность проверяется подписью)
	api.HandleFunc("/payments/stripe/webhook", stripeWebhook.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/checkout", createCheckout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
