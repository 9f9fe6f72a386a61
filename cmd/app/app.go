package app

import (
	"github.com/sirupsen/logrus"

	"posterforge/internal/config"
	"posterforge/internal/database"
	"posterforge/internal/repository"
	"posterforge/internal/service"
	"posterforge/internal/storage"
	"posterforge/internal/twitter"
)

func App(cfg *config.Config) (*database.Store, *repository.Repository, *service.Service) {
	// хранилище на двух JSON-файлах
	store, err := database.Connect(cfg)
	if err != nil {
		logrus.Fatalf("Не удалось инициализировать хранилище: %v", err)
	}

	repo := repository.NewRepository(store)

	fetcher := storage.NewHTTPFetcher(cfg)
	client := twitter.NewClient(cfg.Twitter, cfg.HTTPClientTimeout)

	services := service.NewService(repo, cfg, fetcher, client)

	return store, repo, services
}
