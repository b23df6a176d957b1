package main

import (
	"log"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/spal7319/movie-ticket-booking/internal/config"
	"github.com/spal7319/movie-ticket-booking/internal/database"
	"github.com/spal7319/movie-ticket-booking/internal/handler"
	"github.com/spal7319/movie-ticket-booking/internal/inventory"
	"github.com/spal7319/movie-ticket-booking/internal/queue"
	"github.com/spal7319/movie-ticket-booking/internal/repository"
	"github.com/spal7319/movie-ticket-booking/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}

	catalog, err := repository.NewMovieCatalog(filepath.Join(cfg.DataDir, "movies.txt"))
	if err != nil {
		log.Fatalf("movie catalog: %v", err)
	}
	seatStore, err := repository.NewSeatStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("seat store: %v", err)
	}
	inv := inventory.NewManager(seatStore)

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	bookings := repository.NewBookingRepo(db)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Print("redis unavailable, rate limiting disabled")
	}

	// Background consumer mirrors committed bookings into logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()

	router.Register(e, router.Handlers{
		Auth:    handler.NewAuthHandler(cfg, users, tokens),
		Movie:   handler.NewMovieHandler(catalog),
		Show:    handler.NewShowHandler(catalog, inv, users, bookings),
		Booking: handler.NewBookingHandler(users, bookings),
	}, cfg, config.LoadRateLimitConfig(), rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, data=%s)", addr, cfg.Env, cfg.DataDir)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
