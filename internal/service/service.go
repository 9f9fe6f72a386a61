package service

import (
	"posterforge/internal/config"
	"posterforge/internal/repository"
	"posterforge/internal/storage"
	"posterforge/internal/twitter"
)

type Service struct {
	Auth    AuthService
	Poster  PosterService
	Twitter TwitterService
	Editor  EditorService
}

func NewService(rep *repository.Repository, cfg *config.Config, fetcher storage.Fetcher, client twitter.API) *Service {
	return &Service{
		Auth:    NewAuthService(rep.User, cfg),
		Poster:  NewPosterService(rep.Poster),
		Twitter: NewTwitterService(client, fetcher),
		Editor:  NewEditorService(fetcher),
	}
}
