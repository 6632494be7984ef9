package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"roombook/internal/config"
	"roombook/internal/conflict"
	"roombook/internal/database"
	"roombook/internal/middleware"
	"roombook/internal/modules/auth"
	"roombook/internal/modules/availability"
	"roombook/internal/modules/booking"
	"roombook/internal/modules/catalog"
	"roombook/internal/modules/notify"
	jwtsvc "roombook/internal/pkg/jwt"
	"roombook/internal/repository"
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
	orgRepo := repository.NewOrganizationRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	occupancyRepo := repository.NewOccupancyRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	checker := conflict.NewChecker(occupancyRepo)

	hub := notify.NewHub()
	defer hub.Close()
	notifyService := notify.NewService(notificationRepo, orgRepo, hub)
	notifyHandler := notify.NewHandler(notifyService, hub)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(orgRepo, roomRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(
		bookingRepo,
		roomRepo,
		orgRepo,
		checker,
		notifyService,
		cfg.CommissionBP,
		cfg.CancelCutoff,
	)
	bookingHandler := booking.NewHandler(bookingService)

	availabilityService := availability.NewService(availabilityRepo, roomRepo, orgRepo, checker)
	availabilityHandler := availability.NewHandler(availabilityService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			availabilityHandler.RegisterRoutes(protected)
			notifyHandler.RegisterRoutes(protected)

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			catalogHandler.RegisterAdminRoutes(admin)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
