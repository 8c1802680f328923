package main

import (
	"database/sql"
	"log"

	"github.com/redis/go-redis/v9"

	"campusBack/internal/config"
	"campusBack/internal/handlers"
	"campusBack/internal/repositories"
	"campusBack/internal/services"
	"campusBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger

	tokenManager *utils.Manager
	wsManager    *WebSocketManager

	userHandler           *handlers.UserHandler
	serviceHandler        *handlers.ServiceHandler
	reviewsHandler        *handlers.ReviewHandler
	serviceFavorite       *handlers.ServiceFavoriteHandler
	bookingHandler        *handlers.BookingHandler
	notificationHandler   *handlers.NotificationHandler
	recommendationHandler *handlers.RecommendationHandler

	db *sql.DB
}

func initializeApp(db *sql.DB, rdb *redis.Client, cfg config.Config, errorLog, infoLog *log.Logger) (*application, error) {
	tokenManager, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		return nil, err
	}

	wsManager := NewWebSocketManager()

	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	serviceRepo := repositories.ServiceRepository{DB: db}
	reviewsRepo := repositories.ReviewRepository{DB: db}
	serviceFavoriteRepo := repositories.ServiceFavoriteRepository{DB: db}
	bookingRepo := repositories.BookingRepository{DB: db}
	notificationRepo := repositories.NotificationRepository{DB: db}
	recommendationCache := repositories.RecommendationCache{RDB: rdb}

	// Services
	userService := &services.UserService{UserRepo: &userRepo, TokenManager: tokenManager}
	serviceService := &services.ServiceService{ServiceRepo: &serviceRepo}
	notificationService := &services.NotificationService{NotificationRepo: &notificationRepo, Notifier: wsManager}
	reviewsService := &services.ReviewService{ReviewsRepo: &reviewsRepo, ServiceRepo: &serviceRepo, Notifications: notificationService}
	serviceFavoritesService := &services.ServiceFavoriteService{ServiceFavoriteRepo: &serviceFavoriteRepo}
	bookingService := &services.BookingService{BookingRepo: &bookingRepo, ServiceRepo: &serviceRepo, Notifications: notificationService}
	recommendationService := &services.RecommendationService{
		ServiceRepo:  &serviceRepo,
		ReviewsRepo:  &reviewsRepo,
		FavoriteRepo: &serviceFavoriteRepo,
		Cache:        &recommendationCache,
		Weights:      cfg.Recommend,
	}

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService}
	serviceHandler := &handlers.ServiceHandler{Service: serviceService}
	reviewHandler := &handlers.ReviewHandler{Service: reviewsService}
	serviceFavoriteHandler := &handlers.ServiceFavoriteHandler{Service: serviceFavoritesService}
	bookingHandler := &handlers.BookingHandler{Service: bookingService}
	notificationHandler := &handlers.NotificationHandler{Service: notificationService}
	recommendationHandler := &handlers.RecommendationHandler{Service: recommendationService}

	return &application{
		errorLog:              errorLog,
		infoLog:               infoLog,
		tokenManager:          tokenManager,
		wsManager:             wsManager,
		userHandler:           userHandler,
		serviceHandler:        serviceHandler,
		reviewsHandler:        reviewHandler,
		serviceFavorite:       serviceFavoriteHandler,
		bookingHandler:        bookingHandler,
		notificationHandler:   notificationHandler,
		recommendationHandler: recommendationHandler,
		db:                    db,
	}, nil
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}
