package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"leprive/internal/config"
	"leprive/internal/content"
	"leprive/internal/database"
	"leprive/internal/domain"
	"leprive/internal/middleware"
	bookingmod "leprive/internal/modules/booking"
	"leprive/internal/modules/catalog"
	contentapi "leprive/internal/modules/content"
	"leprive/internal/modules/favorite"
	"leprive/internal/modules/verification"
	jwtsvc "leprive/internal/pkg/jwt"
	"leprive/internal/pkg/logger"
	"leprive/internal/repository"
)

const wizardTTL = 30 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger.Init(cfg.AppEnv == "production")

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(&domain.Companion{}, &domain.Booking{}); err != nil {
		log.Fatal(err)
	}
	// One pending/confirmed booking per (companion, date, time); the service
	// checks first, this index settles concurrent submissions.
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_no_double_booking ON bookings(companion_id, date, time)")

	companionRepo := repository.NewCompanionRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	hub := content.NewHub()
	registry := content.NewRegistry(cfg.ContentBaseURL, cfg.ContentTimeout, hub)
	go registry.WarmUp(context.Background(), cfg.DefaultLocale)

	cmsSource := catalog.NewCMSSource(cfg.ContentBaseURL, &http.Client{Timeout: cfg.ContentTimeout})
	catalogService := catalog.NewService(companionRepo, cmsSource)
	catalogHandler := catalog.NewHandler(catalogService, cfg.DefaultLocale)

	wizardStore := bookingmod.NewStore(wizardTTL)
	bookingService := bookingmod.NewService(bookingRepo, companionRepo, wizardStore)
	bookingHandler := bookingmod.NewHandler(bookingService)

	favoriteHandler := favorite.NewHandler(favorite.NewStore())

	contentHandler := contentapi.NewHandler(registry, hub, cfg.DefaultLocale)

	ageTokens := jwtsvc.New(cfg.AgeTokenSecret, cfg.AgeTokenTTL)
	verificationHandler := verification.NewHandler(ageTokens, int(cfg.AgeTokenTTL.Seconds()), cfg.CookieSecure)

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		contentHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		favoriteHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)
		verificationHandler.RegisterRoutes(v1)
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
