package main

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"posterforge/cmd/app"
	"posterforge/internal/config"
	handlers "posterforge/internal/handler"
	"posterforge/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		logrus.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	store, repo, services := app.App(cfg)

	handler := handlers.NewHandlers(store, repo, services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	router.HandleFunc("/posters/generate", handler.GeneratePoster).Methods(http.MethodPost)
	router.HandleFunc("/posters/user/{userId}", handler.GetUserPosters).Methods(http.MethodGet)
	router.HandleFunc("/posters", handler.GetAllPosters).Methods(http.MethodGet)

	router.HandleFunc("/twitter/publish", handler.PublishTweet).Methods(http.MethodPost)
	router.HandleFunc("/twitter/analytics/{tweetId}", handler.GetTweetAnalytics).Methods(http.MethodGet)
	router.HandleFunc("/twitter/posts", handler.GetRecentTweets).Methods(http.MethodGet)

	router.HandleFunc("/editor/render", handler.RenderPoster).Methods(http.MethodPost)

	// CORS снаружи Auth, чтобы preflight не требовал токена
	handlerChain := middleware.Chain(
		router,
		middleware.AuthMiddleware(cfg),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	logrus.Infof("Сервер запущен на http://localhost%s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		logrus.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
