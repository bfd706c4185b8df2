package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"mensa/internal/common"
	"mensa/internal/env"
	"mensa/internal/logger"
	"mensa/internal/middleware"
	"mensa/internal/v0/menu"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	production := env.GetEnv(env.EnvAppEnv, "development") == "production"
	zlog, err := logger.New(production)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()
	if production {
		gin.SetMode(gin.ReleaseMode)
	}

	tzName := env.GetEnv(env.EnvTimezone, "Europe/Berlin")
	tz, err := time.LoadLocation(tzName)
	if err != nil {
		zlog.Warn("Unknown timezone, using local time", zap.String("timezone", tzName), zap.Error(err))
		tz = time.Local
	}

	// Initialize menu components
	repo := menu.NewRepository(
		menu.FeedLocator{BaseURL: env.GetEnv(env.EnvEatAPIBaseURL, menu.DefaultBaseURL)},
		&http.Client{Timeout: env.GetDuration(env.EnvFeedTimeout, 10*time.Second)},
		zlog.Named("feeds"),
	)
	renderer := menu.NewRenderer(menu.Config{
		DefaultLocation: env.GetEnv(env.EnvDefaultLocation, menu.DefaultLocation),
		LineWidth:       env.GetInt(env.EnvLineWidth, menu.DefaultLineWidth),
		Dates:           menu.NewDateResolver(menu.LocaleFor(env.GetEnv(env.EnvLocale, "de")), tz),
	}, repo, zlog.Named("menu"))
	menuHandler := menu.NewHandler(renderer, env.GetBool(env.EnvColor, true), zlog)

	router := gin.New()
	router.Use(middleware.Stack(zlog, env.GetInt(env.EnvRateLimitPerMin, 120))...)

	// Global routes
	global := router.Group("/api")
	global.Use(cors.New(cors.Config{
		AllowOrigins:  env.GetList(env.EnvCORSAllowedOrigins, []string{"*"}),
		AllowMethods:  []string{http.MethodGet},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}))
	common.RegisterRoutes(global)

	// v0 API routes
	v0Group := global.Group("/v0")
	{
		menu.RegisterRoutes(v0Group, menuHandler)
	}

	// Plain text menu for curl
	menu.RegisterTextRoutes(router, menuHandler)

	srv := &http.Server{
		Addr:    ":" + env.GetEnv(env.EnvPort, "9237"),
		Handler: router,
	}

	go func() {
		zlog.Info("Starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Graceful shutdown handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	zlog.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("Server forced to shutdown", zap.Error(err))
	}
}

/*
This project serves the daily menu of the TUM canteens as fixed-width text for terminals and scripts.
Mensa API Copyright (C) 2025 OpenSourceDUTH
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
