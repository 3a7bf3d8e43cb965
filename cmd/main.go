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
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	allBookingsHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/all_bookings"
	createBookingHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/create_booking"
	createSlotsHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/create_slots"
	directBookingHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/direct_booking"
	generateSlotsHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/generate_slots"
	getScheduleHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/get_schedule"
	lockRangeHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/lock_range"
	lockSlotHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/lock_slot"
	myBookingsHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/my_bookings"
	submitUPIHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/submit_upi"
	updateSlotHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/update_slot"
	verifyBookingHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/verify_booking"
	verifyPaymentHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/verify_payment"
	"github.com/m04kA/TurfBookingService/internal/api/middleware"
	"github.com/m04kA/TurfBookingService/internal/config"
	"github.com/m04kA/TurfBookingService/internal/domain"
	bookingRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/slot"
	razorpayClient "github.com/m04kA/TurfBookingService/internal/integrations/razorpay"
	sheetsClient "github.com/m04kA/TurfBookingService/internal/integrations/sheets"
	bookingsService "github.com/m04kA/TurfBookingService/internal/service/bookings"
	slotsService "github.com/m04kA/TurfBookingService/internal/service/slots"
	createBookingUC "github.com/m04kA/TurfBookingService/internal/usecase/create_booking"
	createDirectBookingUC "github.com/m04kA/TurfBookingService/internal/usecase/create_direct_booking"
	getScheduleUC "github.com/m04kA/TurfBookingService/internal/usecase/get_schedule"
	lockRangeUC "github.com/m04kA/TurfBookingService/internal/usecase/lock_range"
	lockSlotUC "github.com/m04kA/TurfBookingService/internal/usecase/lock_slot"
	submitUPIPaymentUC "github.com/m04kA/TurfBookingService/internal/usecase/submit_upi_payment"
	verifyBookingUC "github.com/m04kA/TurfBookingService/internal/usecase/verify_booking"
	verifyPaymentUC "github.com/m04kA/TurfBookingService/internal/usecase/verify_payment"
	"github.com/m04kA/TurfBookingService/internal/worker"
	"github.com/m04kA/TurfBookingService/pkg/dbmetrics"
	"github.com/m04kA/TurfBookingService/pkg/logger"
	"github.com/m04kA/TurfBookingService/pkg/metrics"
	"github.com/m04kA/TurfBookingService/pkg/simpletxmanager"
	"github.com/m04kA/TurfBookingService/pkg/txmanager"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting TurfBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (when enabled)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
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

	// Business policy from config
	window := domain.BusinessWindow{
		OpenHour:      cfg.Business.OpenHour,
		LastStartHour: cfg.Business.LastStartHour,
	}
	pricing := domain.Pricing{
		BasePrice:     cfg.Business.BasePrice,
		PeakPrice:     cfg.Business.PeakPrice,
		PeakStartHour: cfg.Business.PeakStartHour,
	}
	clock := domain.NewBusinessClock(cfg.Business.UTCOffsetMinutes)
	lockTTL := time.Duration(cfg.Business.LockTTLMinutes) * time.Minute
	reclaimInterval := time.Duration(cfg.Business.ReclaimIntervalMinutes) * time.Minute

	// Integration clients
	gateway := razorpayClient.NewClient(
		cfg.Razorpay.BaseURL,
		cfg.Razorpay.KeyID,
		cfg.Razorpay.KeySecret,
		time.Duration(cfg.Razorpay.Timeout)*time.Second,
		log,
	)
	sheets := sheetsClient.NewClient(
		cfg.Sheets.URL,
		cfg.Sheets.Enabled,
		time.Duration(cfg.Sheets.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Razorpay=%s, sheets enabled=%v)",
		cfg.Razorpay.BaseURL, cfg.Sheets.Enabled)

	// Repositories and transaction manager (with metrics or without)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		slotRepository    *slotRepo.Repository
		bookingRepository *bookingRepo.Repository
		txMgr             TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services
	bookingSvc := bookingsService.NewService(bookingRepository, slotRepository, log)
	slotSvc := slotsService.NewService(slotRepository, window, pricing, log)

	// Use cases
	getScheduleUseCase := getScheduleUC.NewUseCase(slotRepository, window, pricing, clock, lockTTL, log)
	lockSlotUseCase := lockSlotUC.NewUseCase(slotRepository, window, pricing, clock, lockTTL, log)
	lockRangeUseCase := lockRangeUC.NewUseCase(slotRepository, window, pricing, clock, lockTTL, log)
	createBookingUseCase := createBookingUC.NewUseCase(slotRepository, bookingRepository, gateway, txMgr, lockTTL, log)
	submitUPIPaymentUseCase := submitUPIPaymentUC.NewUseCase(slotRepository, bookingRepository, txMgr, log)
	verifyPaymentUseCase := verifyPaymentUC.NewUseCase(bookingRepository, slotRepository, gateway, sheets, txMgr, log)
	verifyBookingUseCase := verifyBookingUC.NewUseCase(bookingRepository, slotRepository, sheets, txMgr, log)
	createDirectBookingUseCase := createDirectBookingUC.NewUseCase(
		slotRepository, bookingRepository, sheets, txMgr, window, pricing, lockTTL, log)

	// Handlers
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, log)
	lockSlot := lockSlotHandler.NewHandler(lockSlotUseCase, log)
	lockRange := lockRangeHandler.NewHandler(lockRangeUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	submitUPI := submitUPIHandler.NewHandler(submitUPIPaymentUseCase, log)
	verifyPayment := verifyPaymentHandler.NewHandler(verifyPaymentUseCase, log)
	verifyBooking := verifyBookingHandler.NewHandler(verifyBookingUseCase, log)
	directBooking := directBookingHandler.NewHandler(createDirectBookingUseCase, log)
	myBookings := myBookingsHandler.NewHandler(bookingSvc, log)
	allBookings := allBookingsHandler.NewHandler(bookingSvc, log)
	createSlots := createSlotsHandler.NewHandler(slotSvc, log)
	updateSlot := updateSlotHandler.NewHandler(slotSvc, log)
	generateSlots := generateSlotsHandler.NewHandler(slotSvc, log)

	// Background lock reclaimer
	reclaimer := worker.NewReclaimer(slotRepository, lockTTL, reclaimInterval, log)
	if err := reclaimer.Start(); err != nil {
		log.Fatal("Failed to start lock reclaimer: %v", err)
	}

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/slots/{date}", getSchedule.Handle).Methods(http.MethodGet)

	// Authenticated routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret, log))

	protected.HandleFunc("/bookings/lock/{slotId}", lockSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/lock-range", lockRange.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/submit-upi", submitUPI.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/verify", verifyPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/mybookings", myBookings.Handle).Methods(http.MethodGet)

	// Admin routes
	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminOnly(log))

	admin.HandleFunc("/bookings", allBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/verify-status/{bookingId:[0-9]+}", verifyBooking.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/bookings/direct", directBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots", createSlots.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots/id/{slotId:[0-9]+}", updateSlot.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/slots/generate", generateSlots.Handle).Methods(http.MethodPost)

	// HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
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

	reclaimer.Stop()

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
