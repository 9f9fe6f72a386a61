package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"posterforge/internal/service"
)

type PublishRequest struct {
	ImageURL string `json:"imageUrl" validate:"required"`
	Text     string `json:"text" validate:"required"`
}

// SuccessResponse - конверт для ответов Twitter-эндпоинтов
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

func (h *Handlers) PublishTweet(w http.ResponseWriter, r *http.Request) {
	var req PublishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Требуются ссылка на изображение и текст", http.StatusBadRequest)
		return
	}

	result, err := h.TwitterService.Publish(r.Context(), req.ImageURL, req.Text)
	if err != nil {
		logrus.Errorf("Ошибка публикации в Twitter: %v", err)
		if errors.Is(err, service.ErrNotConfigured) {
			WriteError(w, service.ErrNotConfigured.Error(), http.StatusInternalServerError)
			return
		}
		// текст ошибки вышестоящего сервиса отдается клиенту как есть
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeSuccess(w, SuccessResponse{
		Success: true,
		Message: "Опубликовано в Twitter",
		Data:    result,
	}, http.StatusOK)
}

func (h *Handlers) GetTweetAnalytics(w http.ResponseWriter, r *http.Request) {
	tweetID := mux.Vars(r)["tweetId"]

	analytics, err := h.TwitterService.Analytics(r.Context(), tweetID)
	if err != nil {
		logrus.Errorf("Ошибка получения аналитики: %v", err)
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeSuccess(w, SuccessResponse{
		Success: true,
		Data:    analytics,
	}, http.StatusOK)
}

func (h *Handlers) GetRecentTweets(w http.ResponseWriter, r *http.Request) {
	timeline, err := h.TwitterService.Recent(r.Context(), 0)
	if err != nil {
		logrus.Errorf("Ошибка получения твитов: %v", err)
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeSuccess(w, SuccessResponse{
		Success: true,
		Data:    timeline.Tweets,
	}, http.StatusOK)
}
