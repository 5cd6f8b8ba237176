package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/lmittmann/tint"

	"realestate-listings/config"
	"realestate-listings/handlers"
	"realestate-listings/middleware"
	"realestate-listings/models"
	"realestate-listings/repository"
	"realestate-listings/routes"
	"realestate-listings/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: parseLogLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	if err := config.ConnectDB(cfg); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	repo := repository.NewMongoPropertyRepository(config.GetCollection(cfg.PropertiesCollection))
	service := services.NewPropertyService(repo)
	controller := handlers.NewPropertyController(service, logger)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler

	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.RequestLogger(logger))

	routes.RegisterRoutes(e, controller)

	logger.Info("server starting", "port", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

// errorHandler is the last-resort safety net: anything that escapes the
// handlers still comes back as a JSON envelope without leaking internals.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
	}

	if code >= http.StatusInternalServerError {
		_ = c.JSON(code, models.Fail[any]("An unexpected error occurred", "Internal server error"))
		return
	}
	_ = c.JSON(code, models.Fail[any](http.StatusText(code)))
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
