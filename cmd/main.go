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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	addSpendHandler "github.com/detailhub/booking-service/internal/api/handlers/add_spend"
	createBookingHandler "github.com/detailhub/booking-service/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/detailhub/booking-service/internal/api/handlers/get_availability"
	getBookingHandler "github.com/detailhub/booking-service/internal/api/handlers/get_booking"
	getHistoryHandler "github.com/detailhub/booking-service/internal/api/handlers/get_history"
	getLoyaltyHandler "github.com/detailhub/booking-service/internal/api/handlers/get_loyalty"
	listBookingsHandler "github.com/detailhub/booking-service/internal/api/handlers/list_bookings"
	pricePackageHandler "github.com/detailhub/booking-service/internal/api/handlers/price_package"
	priceServiceHandler "github.com/detailhub/booking-service/internal/api/handlers/price_service"
	recomputeTierHandler "github.com/detailhub/booking-service/internal/api/handlers/recompute_tier"
	updateBookingStatusHandler "github.com/detailhub/booking-service/internal/api/handlers/update_booking_status"
	updateLoyaltyHandler "github.com/detailhub/booking-service/internal/api/handlers/update_loyalty"
	"github.com/detailhub/booking-service/internal/api/middleware"
	"github.com/detailhub/booking-service/internal/config"
	bookingRepo "github.com/detailhub/booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/detailhub/booking-service/internal/infra/storage/catalog"
	customerRepo "github.com/detailhub/booking-service/internal/infra/storage/customer"
	bookingsService "github.com/detailhub/booking-service/internal/service/bookings"
	loyaltyService "github.com/detailhub/booking-service/internal/service/loyalty"
	createBookingUC "github.com/detailhub/booking-service/internal/usecase/create_booking"
	getAvailabilityUC "github.com/detailhub/booking-service/internal/usecase/get_availability"
	pricePackageUC "github.com/detailhub/booking-service/internal/usecase/price_package"
	priceServiceUC "github.com/detailhub/booking-service/internal/usecase/price_service"
	"github.com/detailhub/booking-service/pkg/dbmetrics"
	"github.com/detailhub/booking-service/pkg/logger"
	"github.com/detailhub/booking-service/pkg/metrics"
	"github.com/detailhub/booking-service/pkg/simpletxmanager"
	"github.com/detailhub/booking-service/pkg/txmanager"
)

func main() {
	// .env is optional; config.toml carries the defaults.
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	// Repositories and transaction manager, with or without metrics.
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		bookingRepository  *bookingRepo.Repository
		catalogRepository  *catalogRepo.Repository
		customerRepository *customerRepo.Repository
		txMgr              TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services
	bookingSvc := bookingsService.NewService(bookingRepository, customerRepository, log)
	loyaltySvc := loyaltyService.NewService(customerRepository, txMgr, log)

	// Use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(bookingRepository, log)
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, catalogRepository, txMgr, log)
	priceServiceUseCase := priceServiceUC.NewUseCase(catalogRepository, log)
	pricePackageUseCase := pricePackageUC.NewUseCase(catalogRepository, log)

	// Handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	priceService := priceServiceHandler.NewHandler(priceServiceUseCase, log)
	pricePackage := pricePackageHandler.NewHandler(pricePackageUseCase, log)
	getLoyalty := getLoyaltyHandler.NewHandler(loyaltySvc, log)
	updateLoyalty := updateLoyaltyHandler.NewHandler(loyaltySvc, log)
	recomputeTier := recomputeTierHandler.NewHandler(loyaltySvc, log)
	addSpend := addSpendHandler.NewHandler(loyaltySvc, log)
	getHistory := getHistoryHandler.NewHandler(bookingSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Availability and bookings
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Pricing
	api.HandleFunc("/services/{serviceId}/calculate-price", priceService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/packages/{packageId}/calculate-price", pricePackage.Handle).Methods(http.MethodPost)

	// Loyalty
	api.HandleFunc("/customers/{customerId}/loyalty", getLoyalty.Handle).Methods(http.MethodGet)
	api.HandleFunc("/customers/{customerId}/loyalty", updateLoyalty.Handle).Methods(http.MethodPost)
	api.HandleFunc("/customers/{customerId}/tier/recompute", recomputeTier.Handle).Methods(http.MethodPost)
	api.HandleFunc("/customers/{customerId}/spending", addSpend.Handle).Methods(http.MethodPost)
	api.HandleFunc("/customers/{customerId}/history", getHistory.Handle).Methods(http.MethodGet)

	// Nightly tier recompute
	var cronRunner *cron.Cron
	if cfg.Jobs.TierRecomputeEnabled {
		cronRunner = cron.New()
		_, err := cronRunner.AddFunc(cfg.Jobs.TierRecomputeSchedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			if err := loyaltySvc.RecomputeAllTiers(ctx); err != nil {
				log.Error("Tier recompute job failed: %v", err)
			}
		})
		if err != nil {
			log.Fatal("Failed to schedule tier recompute job: %v", err)
		}
		cronRunner.Start()
		log.Info("Tier recompute job scheduled: %s", cfg.Jobs.TierRecomputeSchedule)
	}

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

	if cronRunner != nil {
		cronCtx := cronRunner.Stop()
		<-cronCtx.Done()
		log.Info("Tier recompute job stopped")
	}

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
