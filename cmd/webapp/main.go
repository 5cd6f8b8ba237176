package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/lmittmann/tint"

	"realestate-listings/client"
	"realestate-listings/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	apiBaseURL := os.Getenv("API_BASE_URL")
	if apiBaseURL == "" {
		apiBaseURL = "http://localhost:8080"
	}
	port := os.Getenv("WEB_PORT")
	if port == "" {
		port = "3000"
	}

	logger := slog.New(tint.NewHandler(os.Stderr, nil))

	handler := web.NewHandler(client.New(apiBaseURL), logger)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = web.NewRenderer()
	e.Use(echomw.Recover())

	e.GET("/", handler.Properties)
	e.GET("/properties/:id", handler.PropertyDetail)

	logger.Info("web app starting", "port", port, "api", apiBaseURL)
	e.Logger.Fatal(e.Start(":" + port))
}
