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

	cancelReservationHandler "github.com/altosdelparque/ADP-BookingService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/altosdelparque/ADP-BookingService/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/altosdelparque/ADP-BookingService/internal/api/handlers/delete_reservation"
	getOwnerReservationsHandler "github.com/altosdelparque/ADP-BookingService/internal/api/handlers/get_owner_reservations"
	getPaymentHandler "github.com/altosdelparque/ADP-BookingService/internal/api/handlers/get_payment"
	getReservationHandler "github.com/altosdelparque/ADP-BookingService/internal/api/handlers/get_reservation"
	getResourceHandler "github.com/altosdelparque/ADP-BookingService/internal/api/handlers/get_resource"
	listResourcesHandler "github.com/altosdelparque/ADP-BookingService/internal/api/handlers/list_resources"
	reserveParkingHandler "github.com/altosdelparque/ADP-BookingService/internal/api/handlers/reserve_parking"
	transitionPaymentHandler "github.com/altosdelparque/ADP-BookingService/internal/api/handlers/transition_payment"
	updateReservationHandler "github.com/altosdelparque/ADP-BookingService/internal/api/handlers/update_reservation"
	"github.com/altosdelparque/ADP-BookingService/internal/api/middleware"
	"github.com/altosdelparque/ADP-BookingService/internal/config"
	lookupRepo "github.com/altosdelparque/ADP-BookingService/internal/infra/storage/lookup"
	ownerRepo "github.com/altosdelparque/ADP-BookingService/internal/infra/storage/owner"
	paymentRepo "github.com/altosdelparque/ADP-BookingService/internal/infra/storage/payment"
	reservationRepo "github.com/altosdelparque/ADP-BookingService/internal/infra/storage/reservation"
	resourceRepo "github.com/altosdelparque/ADP-BookingService/internal/infra/storage/resource"
	identityServiceClient "github.com/altosdelparque/ADP-BookingService/internal/integrations/identityservice"
	paymentsService "github.com/altosdelparque/ADP-BookingService/internal/service/payments"
	reservationsService "github.com/altosdelparque/ADP-BookingService/internal/service/reservations"
	resourcesService "github.com/altosdelparque/ADP-BookingService/internal/service/resources"
	createReservationUC "github.com/altosdelparque/ADP-BookingService/internal/usecase/create_reservation"
	reserveParkingUC "github.com/altosdelparque/ADP-BookingService/internal/usecase/reserve_parking"
	transitionPaymentUC "github.com/altosdelparque/ADP-BookingService/internal/usecase/transition_payment"
	updateReservationUC "github.com/altosdelparque/ADP-BookingService/internal/usecase/update_reservation"
	"github.com/altosdelparque/ADP-BookingService/pkg/dbstats"
	"github.com/altosdelparque/ADP-BookingService/pkg/logger"
	"github.com/altosdelparque/ADP-BookingService/pkg/metrics"
	"github.com/altosdelparque/ADP-BookingService/pkg/txmanager"
)

func main() {
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

	log.Info("Starting ADP-BookingService...")
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

	if cfg.Metrics.Enabled {
		go dbstats.NewCollector(cfg.Metrics.ServiceName).Watch(db, 15*time.Second, stopMetricsCh)
		log.Info("Database connection pool metrics collection started")
	}

	identityClient := identityServiceClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	log.Info("Identity service client initialized (url=%s, timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout)

	txMgr := txmanager.NewTransactionManager(db)

	reservationRepository := reservationRepo.NewRepository(db)
	resourceRepository := resourceRepo.NewRepository(db)
	paymentRepository := paymentRepo.NewRepository(db)
	ownerRepository := ownerRepo.NewRepository(db)
	lookupRepository := lookupRepo.NewRepository(db)

	reservationsSvc := reservationsService.NewService(reservationRepository, resourceRepository, txMgr, log)
	resourcesSvc := resourcesService.NewService(resourceRepository, reservationRepository, log)
	paymentsSvc := paymentsService.NewService(paymentRepository, log)

	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		resourceRepository,
		ownerRepository,
		lookupRepository,
		txMgr,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		resourceRepository,
		lookupRepository,
		txMgr,
		log,
	)
	reserveParkingUseCase := reserveParkingUC.NewUseCase(
		reservationRepository,
		resourceRepository,
		ownerRepository,
		lookupRepository,
		txMgr,
		log,
	)
	transitionPaymentUseCase := transitionPaymentUC.NewUseCase(
		paymentRepository,
		lookupRepository,
		txMgr,
		log,
	)

	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, reservationsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	getOwnerReservations := getOwnerReservationsHandler.NewHandler(reservationsSvc, ownerRepository, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	reserveParking := reserveParkingHandler.NewHandler(reserveParkingUseCase, log)
	transitionPayment := transitionPaymentHandler.NewHandler(transitionPaymentUseCase, paymentsSvc, log)
	getPayment := getPaymentHandler.NewHandler(paymentsSvc, log)
	listResources := listResourcesHandler.NewHandler(resourcesSvc, log)
	getResource := getResourceHandler.NewHandler(resourcesSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: the resource catalogue needs no caller identity.
	api.HandleFunc("/resources", listResources.Handle).Methods(http.MethodGet)
	api.HandleFunc("/resources/{resourceId}", getResource.Handle).Methods(http.MethodGet)

	// Protected routes: X-User-ID resolved to an identity before any
	// reservation or payment operation runs.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Identity(identityClient, log))

	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/owners/{ownerId}/reservations", getOwnerReservations.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/parking/reserve", reserveParking.Handle).Methods(http.MethodPost)

	protected.HandleFunc("/payments/{paymentId}", getPayment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/payments/{paymentId}/status", transitionPayment.Handle).Methods(http.MethodPut)

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
