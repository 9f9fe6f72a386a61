package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"posterforge/internal/models"
	"posterforge/internal/render"
)

type RenderRequest struct {
	ImageURL     string `json:"imageUrl" validate:"required"`
	OverlayText  string `json:"overlayText"`
	FontSize     int    `json:"fontSize" validate:"omitempty,gt=0"`
	TextColor    string `json:"textColor"`
	TextPosition string `json:"textPosition" validate:"omitempty,oneof=top center bottom"`
	FontWeight   string `json:"fontWeight" validate:"omitempty,oneof=normal bold"`
}

type RenderResponse struct {
	Image  string `json:"image"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (h *Handlers) RenderPoster(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные параметры отрисовки", http.StatusBadRequest)
		return
	}

	// значения по умолчанию повторяют настройки редактора
	style := models.OverlayStyle{
		FontSize:     req.FontSize,
		TextColor:    req.TextColor,
		TextPosition: req.TextPosition,
		FontWeight:   req.FontWeight,
	}
	if style.FontSize == 0 {
		style.FontSize = 48
	}
	if style.TextColor == "" {
		style.TextColor = "#FFFFFF"
	}
	if style.TextPosition == "" {
		style.TextPosition = render.PositionCenter
	}
	if style.FontWeight == "" {
		style.FontWeight = render.WeightBold
	}

	if _, err := render.ParseHexColor(style.TextColor); err != nil {
		WriteError(w, "Неверный формат цвета", http.StatusBadRequest)
		return
	}

	image, err := h.EditorService.Render(r.Context(), req.ImageURL, req.OverlayText, style)
	if err != nil {
		logrus.Errorf("Ошибка отрисовки постера: %v", err)
		WriteError(w, "Не удалось отрисовать постер", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, RenderResponse{
		Image:  image,
		Width:  render.CanvasSize,
		Height: render.CanvasSize,
	}, http.StatusOK)
}
