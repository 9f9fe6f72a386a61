package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"posterforge/internal/service"
)

type GeneratePosterRequest struct {
	UserID int64  `json:"userId" validate:"required"`
	Prompt string `json:"prompt" validate:"required"`
}

func (h *Handlers) GeneratePoster(w http.ResponseWriter, r *http.Request) {
	var req GeneratePosterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Требуются ID пользователя и запрос", http.StatusBadRequest)
		return
	}

	poster, err := h.PosterService.Generate(r.Context(), req.UserID, req.Prompt)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPosterInput) {
			WriteError(w, "Требуются ID пользователя и запрос", http.StatusBadRequest)
			return
		}
		logrus.Errorf("Ошибка генерации постера: %v", err)
		WriteError(w, "Не удалось сгенерировать постер", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, poster, http.StatusOK)
}

func (h *Handlers) GetUserPosters(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		WriteError(w, "Неверный ID пользователя", http.StatusBadRequest)
		return
	}

	posters, err := h.PosterRepo.GetByUserID(r.Context(), userID)
	if err != nil {
		logrus.Errorf("Ошибка получения постеров: %v", err)
		WriteError(w, "Не удалось получить постеры", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, posters, http.StatusOK)
}

func (h *Handlers) GetAllPosters(w http.ResponseWriter, r *http.Request) {
	posters, err := h.PosterRepo.GetAll(r.Context())
	if err != nil {
		logrus.Errorf("Ошибка получения постеров: %v", err)
		WriteError(w, "Не удалось получить постеры", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, posters, http.StatusOK)
}
