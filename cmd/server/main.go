package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"dptravels/internal/api"
	"dptravels/internal/config"
	"dptravels/internal/mail"
	"dptravels/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	sender, err := mail.NewSender(cfg)
	if err != nil {
		logrus.Fatalf("Failed to configure mail sender: %v", err)
	}

	// Like the original transporter verify: check the sender at startup but
	// keep serving if it fails, so a flaky relay does not block the site.
	if v, ok := sender.(mail.Verifier); ok {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := v.Verify(ctx); err != nil {
			logrus.WithField("error", err).Warn("Mail sender verification failed")
		} else {
			logrus.Info("Mail sender verified and ready")
		}
		cancel()
	}

	dispatcher := mail.NewDispatcher(sender, cfg.MailMaxAttempts, cfg.MailRetryDelay)
	identity := service.MailIdentity{
		FromEmail: cfg.SenderEmail,
		FromName:  cfg.SenderName,
		To:        cfg.ReceiverEmail,
	}

	var sms *service.SMSAlerter
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioFromNumber != "" && cfg.BusinessPhone != "" {
		sms = service.NewSMSAlerter(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber, cfg.BusinessPhone)
		logrus.Info("SMS booking alerts enabled")
	}

	var stats *service.StatsService
	if cfg.StatsEnabled {
		stats = service.NewStatsService(dispatcher, identity)
		if err := stats.Start(cfg.StatsSchedule); err != nil {
			logrus.Fatalf("Failed to start stats job: %v", err)
		}
		defer stats.Stop()
	}

	svc := service.NewBookingService(dispatcher, identity, sms, stats)
	submissionHandler := api.NewSubmissionHandler(svc)

	r := mux.NewRouter()
	r.Use(api.RateLimitMiddleware(cfg.RateLimitMax, cfg.RateLimitWindow))

	r.HandleFunc("/health", api.HealthCheck).Methods("GET")
	r.HandleFunc("/api/destinations", api.ListDestinations).Methods("GET")
	r.HandleFunc("/send-query", submissionHandler.SendQuery).Methods("POST")
	r.HandleFunc("/send-booking", submissionHandler.SendBooking).Methods("POST")
	for path, destination := range api.LegacyBookingRoutes {
		r.HandleFunc(path, submissionHandler.SendBookingFor(destination)).Methods("POST")
	}
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.PublicDir))).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      cors(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logrus.WithField("port", cfg.Port).Info("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logrus.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithField("error", err).Error("Shutdown was not clean")
	}
}
