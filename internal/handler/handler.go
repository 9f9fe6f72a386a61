package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"posterforge/internal/config"
	"posterforge/internal/database"
	"posterforge/internal/repository"
	"posterforge/internal/service"
)

type Handlers struct {
	AuthService    service.AuthService
	PosterService  service.PosterService
	PosterRepo     repository.PosterRepository
	TwitterService service.TwitterService
	EditorService  service.EditorService
	Store          *database.Store
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(store *database.Store, repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:    service.Auth,
		PosterService:  service.Poster,
		PosterRepo:     repo.Poster,
		TwitterService: service.Twitter,
		EditorService:  service.Editor,
		Store:          store,
		Cfg:            config,
		Validate:       validator.New(),
	}
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"service": "posterforge"}, http.StatusOK)
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.HealthCheck(); err != nil {
		WriteError(w, "Хранилище недоступно", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
