package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aizah-hospitality/booking-api/internal/config"
	"github.com/aizah-hospitality/booking-api/internal/domain/admin"
	"github.com/aizah-hospitality/booking-api/internal/domain/booking"
	"github.com/aizah-hospitality/booking-api/internal/domain/gatewaykey"
	"github.com/aizah-hospitality/booking-api/internal/domain/pricing"
	"github.com/aizah-hospitality/booking-api/internal/domain/room"
	"github.com/aizah-hospitality/booking-api/internal/middleware"
	"github.com/aizah-hospitality/booking-api/internal/pkg/database"
	"github.com/aizah-hospitality/booking-api/internal/pkg/email"
	"github.com/aizah-hospitality/booking-api/internal/pkg/jwt"
	"github.com/aizah-hospitality/booking-api/internal/pkg/razorpay"
	"github.com/aizah-hospitality/booking-api/internal/pkg/response"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting booking API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	// Redis only backs the price cache; the API works without it.
	redisClient, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, price cache disabled")
		redisClient = nil
	}
	defer database.CloseRedis(redisClient)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL)

	var paymentsClient *razorpay.Client
	if cfg.RazorpayKeyID != "" && cfg.RazorpayKeySecret != "" {
		paymentsClient = razorpay.NewClient(razorpay.Config{
			KeyID:     cfg.RazorpayKeyID,
			KeySecret: cfg.RazorpayKeySecret,
		})
	} else {
		log.Warn().Msg("Razorpay credentials not configured, order creation disabled")
	}

	var emailSender email.Sender
	if cfg.EmailEnabled && cfg.SendGridAPIKey != "" {
		emailSvc := email.NewService(email.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.EmailFrom,
			FromName:  cfg.EmailFromName,
		})
		defer emailSvc.Close()
		emailSender = emailSvc
	} else {
		log.Info().Msg("Email sending disabled")
	}

	// ---------- Repositories ----------
	roomRepo := room.NewRepository(db)
	pricingRepo := pricing.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	keyRepo := gatewaykey.NewRepository(db)

	// ---------- Services ----------
	roomService := room.NewService(roomRepo)
	pricingService := pricing.NewService(pricingRepo, redisClient, cfg.PriceCacheTTL)
	bookingService := booking.NewService(bookingRepo, emailSender, log.Logger)

	// ---------- Handlers ----------
	roomHandler := room.NewHandler(roomService, log.Logger)
	pricingHandler := pricing.NewHandler(pricingService, roomService)
	bookingHandler := booking.NewHandler(bookingService, paymentsClient, cfg.RazorpayWebhookSecret, log.Logger)
	keyHandler := gatewaykey.NewHandler(keyRepo, log.Logger)
	adminHandler := admin.NewHandler(jwtService, cfg.AdminEmail, cfg.AdminPasswordHash, log.Logger)

	// ---------- Router ----------
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.Raw(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	adminAuth := middleware.AdminAuth(jwtService)

	r.Route("/api", func(r chi.Router) {
		// Storefront contract. Paths (chekoutview included) predate this
		// service and are consumed verbatim by the site.
		r.Get("/priceView/{roomID}", pricingHandler.PriceView)
		r.Get("/chekoutview", bookingHandler.CheckoutView)
		r.Post("/checkout", bookingHandler.Checkout)
		r.Post("/checkout/order", bookingHandler.CreateOrder)
		r.Post("/checkoutSubmit", bookingHandler.CheckoutSubmit)
		r.Get("/keyview", keyHandler.KeyView)

		r.Get("/rooms", roomHandler.List)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", adminHandler.Login)
			r.Mount("/prices", pricingHandler.AdminRoutes(adminAuth))
			r.Mount("/keys", keyHandler.AdminRoutes(adminAuth))
		})
	})

	r.Mount("/webhooks", bookingHandler.WebhookRoutes())

	// ---------- Server ----------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Server stopped")
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
