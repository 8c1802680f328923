package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("user"))

	mux := pat.New()

	// Users
	mux.Post("/user/signup", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/login", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/user/verify-email", standardMiddleware.ThenFunc(app.userHandler.VerifyEmail))
	mux.Get("/api/info", authMiddleware.ThenFunc(app.userHandler.GetUserInfo))

	// Services
	mux.Post("/api/services", authMiddleware.ThenFunc(app.serviceHandler.CreateService))
	mux.Get("/api/services/recommended", authMiddleware.ThenFunc(app.recommendationHandler.GetRecommendedServices))
	mux.Get("/api/services/:id", authMiddleware.ThenFunc(app.serviceHandler.GetServiceByID))
	mux.Del("/api/services/:id", authMiddleware.ThenFunc(app.serviceHandler.DeleteService))
	mux.Get("/api/services", authMiddleware.ThenFunc(app.serviceHandler.GetServices))
	mux.Get("/images/services/:id", http.HandlerFunc(app.serviceHandler.ServeServiceImage))

	// Reviews
	mux.Post("/api/services/:service_id/comments", authMiddleware.ThenFunc(app.reviewsHandler.CreateReview))
	mux.Get("/api/services/:service_id/comments", authMiddleware.ThenFunc(app.reviewsHandler.GetReviewsByServiceID))
	mux.Del("/api/comments/:id", authMiddleware.ThenFunc(app.reviewsHandler.DeleteReview))

	// Favorites
	mux.Post("/api/services/:service_id/favorite", authMiddleware.ThenFunc(app.serviceFavorite.AddToFavorites))
	mux.Del("/api/services/:service_id/favorite", authMiddleware.ThenFunc(app.serviceFavorite.RemoveFromFavorites))
	mux.Get("/api/services/:service_id/favorite", authMiddleware.ThenFunc(app.serviceFavorite.IsFavorite))
	mux.Get("/api/favorites", authMiddleware.ThenFunc(app.serviceFavorite.GetFavoritesByUser))

	// Bookings
	mux.Post("/api/book-service", authMiddleware.ThenFunc(app.bookingHandler.BookService))
	mux.Get("/api/bookings", authMiddleware.ThenFunc(app.bookingHandler.GetBookings))
	mux.Get("/api/offered-bookings", authMiddleware.ThenFunc(app.bookingHandler.GetOfferedBookings))
	mux.Del("/api/bookings/:id", authMiddleware.ThenFunc(app.bookingHandler.CancelBooking))
	mux.Get("/api/services/:service_id/available-times", authMiddleware.ThenFunc(app.bookingHandler.GetAvailableTimes))

	// Notifications
	mux.Get("/api/notifications", authMiddleware.ThenFunc(app.notificationHandler.GetNotifications))
	mux.Get("/api/notifications/unread-count", authMiddleware.ThenFunc(app.notificationHandler.GetUnreadCount))
	mux.Post("/api/notifications/reset-unread-count", authMiddleware.ThenFunc(app.notificationHandler.ResetUnreadCount))

	// Notification socket
	mux.Get("/ws", authMiddleware.ThenFunc(app.WebSocketHandler))

	return standardMiddleware.Then(mux)
}
