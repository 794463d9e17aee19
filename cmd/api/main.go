package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/agendadoc/clinic-api/internal/config"
	"github.com/agendadoc/clinic-api/internal/handler"
	appointmentHandler "github.com/agendadoc/clinic-api/internal/handler/appointment"
	clinicHandler "github.com/agendadoc/clinic-api/internal/handler/clinic"
	doctorHandler "github.com/agendadoc/clinic-api/internal/handler/doctor"
	patientHandler "github.com/agendadoc/clinic-api/internal/handler/patient"
	userHandler "github.com/agendadoc/clinic-api/internal/handler/user"
	"github.com/agendadoc/clinic-api/internal/middleware"
	"github.com/agendadoc/clinic-api/internal/repository/postgres"
	"github.com/agendadoc/clinic-api/internal/router"
	appointmentService "github.com/agendadoc/clinic-api/internal/service/appointment"
	clinicService "github.com/agendadoc/clinic-api/internal/service/clinic"
	doctorService "github.com/agendadoc/clinic-api/internal/service/doctor"
	patientService "github.com/agendadoc/clinic-api/internal/service/patient"
	userService "github.com/agendadoc/clinic-api/internal/service/user"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.Migrate(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply schema")
	}

	// Repositories
	base := postgres.NewBaseRepository(db)
	userRepo := postgres.NewUserRepository(base)
	clinicRepo := postgres.NewClinicRepository(base)
	doctorRepo := postgres.NewDoctorRepository(base)
	patientRepo := postgres.NewPatientRepository(base)
	appointmentRepo := postgres.NewAppointmentRepository(base)
	outboxRepo := postgres.NewOutboxRepository(base)

	// Services
	userSvc := userService.NewService(userRepo)
	clinicSvc := clinicService.NewService(clinicRepo)
	doctorSvc := doctorService.NewService(doctorRepo)
	patientSvc := patientService.NewService(patientRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, patientRepo, doctorRepo)

	// Handlers
	handler.RegisterValidators()
	h := handler.NewHandler(db)

	r := router.New(
		router.Config{
			RateLimit: rate.Limit(cfg.RateLimit.RequestsPerSecond),
			RateBurst: cfg.RateLimit.Burst,
			CacheTTL:  time.Second,
			CORS:      middleware.DefaultCORSConfig(),
		},
		h,
		userHandler.NewHandler(userSvc, outboxRepo),
		clinicHandler.NewHandler(clinicSvc, outboxRepo),
		doctorHandler.NewHandler(doctorSvc, outboxRepo),
		patientHandler.NewHandler(patientSvc, outboxRepo),
		appointmentHandler.NewHandler(appointmentSvc, outboxRepo),
	)
	r.Setup()

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        r.Engine(),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()
	log.Info().Int("port", cfg.Server.Port).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
