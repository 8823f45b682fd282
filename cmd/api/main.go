package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"p2pshare/internal/config"
	"p2pshare/internal/database"
	"p2pshare/internal/domain"
	"p2pshare/internal/middleware"
	"p2pshare/internal/modules/auth"
	"p2pshare/internal/modules/booking"
	"p2pshare/internal/modules/catalog"
	"p2pshare/internal/modules/messaging"
	jwtsvc "p2pshare/internal/pkg/jwt"
	"p2pshare/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.TokenTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	catalogHandler := catalog.NewHandler(
		catalog.NewService(itemRepo, userRepo),
		cfg.UploadDir,
		cfg.MaxUploadSize,
	)
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, itemRepo, userRepo))
	messagingHandler := messaging.NewHandler(messaging.NewService(messageRepo, userRepo))

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.Static("/uploads", cfg.UploadDir)

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "P2P Share App API - Suisse"})
		})
		api.GET("/cantons", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"cantons": domain.SwissCantons})
		})

		// public
		authHandler.RegisterPublicRoutes(api)
		catalogHandler.RegisterPublicRoutes(api)

		// protected
		protected := api.Group("/")
		protected.Use(middleware.Auth(j, userRepo))
		{
			authHandler.RegisterProtectedRoutes(protected)
			catalogHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterProtectedRoutes(protected)
			messagingHandler.RegisterProtectedRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
