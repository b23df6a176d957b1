// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/spal7319/movie-ticket-booking/internal/config"
	"github.com/spal7319/movie-ticket-booking/internal/handler"
	"github.com/spal7319/movie-ticket-booking/internal/middleware"
	"github.com/spal7319/movie-ticket-booking/internal/model"
)

// Handlers collects the handler sets the router needs.
type Handlers struct {
	Auth    *handler.AuthHandler
	Movie   *handler.MovieHandler
	Show    *handler.ShowHandler
	Booking *handler.BookingHandler
}

// Register wires every route.  Public routes (health, catalog listing,
// seat viewing, auth) take no JWT; booking, wallet and history require a
// valid token; catalog mutation additionally requires the ADMIN role.
// The rate limiter wraps the inventory-facing routes only, so auth and
// health stay reachable when a bucket is exhausted.
func Register(e *echo.Echo, h Handlers, cfg config.Config, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	// Account lifecycle, no token required.
	auth := e.Group("/v1/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.POST("/logout", h.Auth.Logout)

	limiter := middleware.NewTokenBucket(rlCfg, rdb)

	// Public browse routes.
	e.GET("/v1/movies", h.Movie.List)
	e.GET("/v1/shows/:movie/:date/seats", h.Show.ViewSeats, limiter)

	// Routes behind JWT auth.
	v1 := e.Group("/v1")
	v1.Use(middleware.JWTAuth(cfg.JWTSecret))
	v1.Use(middleware.RequireRole(model.RoleAdmin, model.RoleClient))
	v1.GET("/me", h.Auth.Me)
	v1.GET("/wallet", h.Booking.Wallet)
	v1.GET("/my-bookings", h.Booking.MyBookings)
	v1.POST("/shows/:movie/:date/book", h.Show.Book, limiter)

	// Catalog mutation is admin-only.
	admin := e.Group("/v1/movies")
	admin.Use(middleware.JWTAuth(cfg.JWTSecret))
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.POST("", h.Movie.Add)
	admin.DELETE("/:name", h.Movie.Remove)
}
