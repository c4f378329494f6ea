package main

import (
	"database/sql"
	"net/http"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"rentaride/internal/api"
	"rentaride/internal/auth"
	"rentaride/internal/config"
	"rentaride/internal/logger"
	"rentaride/internal/repository"
	"rentaride/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup(cfg.Environment)

	database, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("Failed to open DB: %v", err)
	}
	defer database.Close()
	if err := database.Ping(); err != nil {
		logrus.Fatalf("Failed to connect to DB: %v", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		logrus.Fatalf("Failed to set migration dialect: %v", err)
	}
	if err := goose.Up(database, "migrations"); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	reservationRepo := repository.NewReservationRepository(database)
	vehicleRepo := repository.NewVehicleRepository(database)
	messageRepo := repository.NewMessageRepository(database)
	testimonialRepo := repository.NewTestimonialRepository(database)
	contentRepo := repository.NewContentRepository(database)
	adminAuthRepo := repository.NewAdminAuthRepository(database)
	jobRepo := repository.NewJobRepository(database)

	notifier := service.NewNotifyService(cfg.SendGrid, cfg.Twilio)
	bookingSvc := service.NewBookingService(reservationRepo, vehicleRepo, notifier)
	adminSvc := service.NewAdminService(reservationRepo, notifier)
	fleetSvc := service.NewFleetService(vehicleRepo, reservationRepo)
	messageSvc := service.NewMessageService(messageRepo)
	contentSvc := service.NewContentService(testimonialRepo, contentRepo)
	reportSvc := service.NewReportService(reservationRepo, vehicleRepo, messageRepo)
	adminAuthSvc := service.NewAdminAuthService(adminAuthRepo, cfg.JWTSecret)
	jobSvc := service.NewJobService(jobRepo)

	bookingHandler := api.NewBookingHandler(bookingSvc)
	contactHandler := api.NewContactHandler(messageSvc, contentSvc)
	adminHandler := api.NewAdminHandler(adminSvc, messageSvc, contentSvc)
	fleetHandler := api.NewFleetHandler(fleetSvc)
	reportHandler := api.NewReportHandler(reportSvc)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/vehicles", bookingHandler.ListVehicles).Methods("GET")
	r.HandleFunc("/api/availability", bookingHandler.Availability).Methods("GET")
	r.HandleFunc("/api/bookings", bookingHandler.CreateBooking).Methods("POST")
	r.HandleFunc("/api/bookings/{code}", bookingHandler.GetBooking).Methods("GET")
	r.HandleFunc("/api/messages", contactHandler.SubmitMessage).Methods("POST")
	r.HandleFunc("/api/testimonials", contactHandler.SubmitTestimonial).Methods("POST")
	r.HandleFunc("/api/testimonials", contactHandler.ListTestimonials).Methods("GET")
	r.HandleFunc("/api/offers", contactHandler.ListOffers).Methods("GET")
	r.HandleFunc("/api/info-modals", contactHandler.ListInfoModals).Methods("GET")
	r.HandleFunc("/api/admin/login", adminAuthHandler.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware(cfg.JWTSecret))
	admin.HandleFunc("/register", adminAuthHandler.CreateAdmin).Methods("POST")
	admin.HandleFunc("/reservations", adminHandler.ListReservations).Methods("GET")
	admin.HandleFunc("/reservations/{id}/approve", adminHandler.ApproveReservation).Methods("PUT")
	admin.HandleFunc("/reservations/{id}/reject", adminHandler.RejectReservation).Methods("PUT")
	admin.HandleFunc("/messages", adminHandler.ListMessages).Methods("GET")
	admin.HandleFunc("/messages/{id}/read", adminHandler.MarkMessageRead).Methods("PUT")
	admin.HandleFunc("/messages/{id}", adminHandler.DeleteMessage).Methods("DELETE")
	admin.HandleFunc("/testimonials", adminHandler.ListTestimonials).Methods("GET")
	admin.HandleFunc("/testimonials/{id}/display", adminHandler.SetTestimonialDisplay).Methods("PUT")
	admin.HandleFunc("/vehicles", fleetHandler.ListVehicles).Methods("GET")
	admin.HandleFunc("/vehicles", fleetHandler.CreateVehicle).Methods("POST")
	admin.HandleFunc("/vehicles/{id}", fleetHandler.GetVehicle).Methods("GET")
	admin.HandleFunc("/vehicles/{id}", fleetHandler.UpdateVehicle).Methods("PUT")
	admin.HandleFunc("/vehicles/{id}", fleetHandler.DeleteVehicle).Methods("DELETE")
	admin.HandleFunc("/dashboard", reportHandler.Dashboard).Methods("GET")
	admin.HandleFunc("/analytics", reportHandler.Analytics).Methods("GET")

	c := cron.New()
	if _, err := c.AddFunc(cfg.CronSchedule, func() {
		if err := jobSvc.ExpireStalePending(); err != nil {
			logrus.WithError(err).Error("stale reservation sweep failed")
		}
	}); err != nil {
		logrus.Fatalf("Failed to schedule expiry job: %v", err)
	}
	c.Start()
	defer c.Stop()

	corsHandler := ghandlers.CORS(
		ghandlers.AllowedOrigins([]string{"*"}),
		ghandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		ghandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      ghandlers.LoggingHandler(logrus.StandardLogger().Writer(), corsHandler(r)),
		WriteTimeout: cfg.Server.WriteTimeout,
		ReadTimeout:  cfg.Server.ReadTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logrus.Infof("Server running on %s", cfg.Server.Address)
	logrus.Fatal(srv.ListenAndServe())
}
