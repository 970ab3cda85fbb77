package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/barbershop-uz/backend/internal/pkg/config"
	"github.com/barbershop-uz/backend/internal/pkg/database"
	"github.com/barbershop-uz/backend/internal/pkg/logger"
	"github.com/barbershop-uz/backend/internal/pkg/mail"
	"github.com/barbershop-uz/backend/internal/pkg/middleware"
	nsqpkg "github.com/barbershop-uz/backend/internal/pkg/nsq"
	"github.com/barbershop-uz/backend/services/auth"
	"github.com/barbershop-uz/backend/services/auth/gateway"
	"github.com/barbershop-uz/backend/services/auth/handler"
	"github.com/barbershop-uz/backend/services/auth/repository"
	"github.com/barbershop-uz/backend/services/auth/usecase"
)

func main() {
	appName := "barbershop-auth"
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.WithFields(logrus.Fields{
		"app":         appName,
		"version":     configs.App.Version,
		"environment": configs.App.Environment,
	}).Info("Starting application")

	if configs.JWT.AccessSecret == "" || configs.JWT.RefreshSecret == "" {
		appLogger.Fatal("JWT access and refresh secrets must be configured")
	}

	// PostgreSQL
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer postgresClient.Close()

	// OTP store, in-memory by default or Redis when configured
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var otpStore auth.OTPStore
	switch configs.OTP.Store {
	case "redis":
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to connect to Redis")
		}
		defer redisClient.Close()
		otpStore = repository.NewRedisOTPStore(redisClient)
	default:
		memStore := repository.NewMemoryOTPStore()
		memStore.StartSweeper(ctx, time.Duration(configs.OTP.SweepInterval)*time.Second)
		otpStore = memStore
	}

	// NSQ gateway, optional
	var authGW auth.AuthGW
	if configs.NSQ.Enabled {
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to connect to NSQ")
		}
		defer producer.Stop()
		authGW = gateway.NewAuthGW(producer)
	}

	// Mailer
	mailer := mail.NewSMTPMailer(configs.SMTP, time.Duration(configs.OTP.Expiration)*time.Second)

	// Repository and usecase
	userRepo := repository.NewUserRepo(postgresClient.GetDB())
	authUC := usecase.NewAuthUC(configs, userRepo, otpStore, mailer, authGW)

	// HTTP handler
	authHandler := handler.NewAuthHandler(authUC)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.LoggerMiddleware(appLogger.Logger))

	authHandler.RegisterRoutes(e, configs.JWT)

	appLogger.WithFields(logrus.Fields{
		"app":  appName,
		"port": configs.Server.Port,
	}).Info("Starting server")

	if err := e.Start(fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)); err != nil {
		appLogger.WithError(err).Fatal("Failed to start server")
	}
}
