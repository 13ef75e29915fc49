package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"cryptopay-admin-backend/internal/common/config"
	"cryptopay-admin-backend/internal/common/logger"
	"cryptopay-admin-backend/internal/common/middleware"
	adminauth "cryptopay-admin-backend/internal/features/admin/auth"
	adminhttp "cryptopay-admin-backend/internal/features/admin/delivery/http"
	adminservice "cryptopay-admin-backend/internal/features/admin/service"
	paymenthttp "cryptopay-admin-backend/internal/features/payment/delivery/http"
	paymentrepo "cryptopay-admin-backend/internal/features/payment/repository/jsonstore"
	paymentservice "cryptopay-admin-backend/internal/features/payment/service"
	payouthttp "cryptopay-admin-backend/internal/features/payout/delivery/http"
	payoutrepo "cryptopay-admin-backend/internal/features/payout/repository/jsonstore"
	payoutservice "cryptopay-admin-backend/internal/features/payout/service"
	supporthttp "cryptopay-admin-backend/internal/features/support/delivery/http"
	supportrepo "cryptopay-admin-backend/internal/features/support/repository/jsonstore"
	supportservice "cryptopay-admin-backend/internal/features/support/service"
	userhttp "cryptopay-admin-backend/internal/features/user/delivery/http"
	userrepo "cryptopay-admin-backend/internal/features/user/repository/jsonstore"
	userservice "cryptopay-admin-backend/internal/features/user/service"
	redisplatform "cryptopay-admin-backend/internal/platform/redis"
	"cryptopay-admin-backend/internal/platform/storage"
)

func main() {
	cfg := config.Load()

	logger.Init("cryptopay-admin-backend", cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backend, err := openBackend(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("Failed to open storage backend")
	}
	logger.Info().Str("driver", cfg.Storage.Driver).Msg("Storage backend ready")

	if err := os.MkdirAll(cfg.Storage.UploadsDir, 0o755); err != nil {
		logger.Fatal().Err(err).Msg("Failed to create uploads dir")
	}

	userRepository := userrepo.NewUserRepository(backend)
	paymentRepository := paymentrepo.NewPaymentRepository(backend)
	payoutRepository := payoutrepo.NewConfigRepository(backend)
	supportRepository := supportrepo.NewMessageRepository(backend)

	userSvc := userservice.NewUserService(userRepository)
	paymentSvc := paymentservice.NewPaymentService(paymentRepository)
	payoutSvc := payoutservice.NewConfigService(payoutRepository)
	supportSvc := supportservice.NewSupportService(supportRepository)

	authenticator := adminauth.NewStaticAuthenticator(cfg.Admin.Username, cfg.Admin.Password)
	sessions := adminauth.NewSessionStore(time.Duration(cfg.Admin.SessionTTL) * time.Minute)
	adminSvc := adminservice.NewAdminService(authenticator, sessions, paymentSvc, userSvc, payoutSvc)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler(log.Logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept"}
	router.Use(cors.New(corsConfig))

	api := router.Group("/api")
	userhttp.NewUserHandler(userSvc).RegisterRoutes(api)
	payouthttp.NewConfigHandler(payoutSvc).RegisterRoutes(api)
	paymenthttp.NewPaymentHandler(paymentSvc, cfg.Storage.UploadsDir).RegisterRoutes(api)
	supporthttp.NewSupportHandler(supportSvc).RegisterRoutes(api)
	adminhttp.NewAdminHandler(adminSvc, sessions).RegisterRoutes(api)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "cryptopay-admin-backend",
		})
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

// openBackend picks the collection backend from config: per-collection JSON
// files by default, a Redis key per collection when configured.
func openBackend(ctx context.Context, cfg *config.Config) (storage.Backend, error) {
	switch cfg.Storage.Driver {
	case "redis":
		client, err := redisplatform.Open(ctx, cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		return storage.NewRedisBackend(client), nil
	case "file", "":
		return storage.NewFileBackend(cfg.Storage.DataDir)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
