package service

import (
	"context"
	"fmt"

	"posterforge/internal/models"
	"posterforge/internal/render"
	"posterforge/internal/storage"
)

type EditorService interface {
	Render(ctx context.Context, imageURL, overlayText string, style models.OverlayStyle) (string, error)
}

type editorService struct {
	fetcher storage.Fetcher
}

func NewEditorService(fetcher storage.Fetcher) EditorService {
	return &editorService{fetcher: fetcher}
}

// Render возвращает готовый PNG data URL. Результат нигде не сохраняется:
// отредактированный вариант живет только у вызывающей стороны.
func (s *editorService) Render(ctx context.Context, imageURL, overlayText string, style models.OverlayStyle) (string, error) {
	data, _, err := s.fetcher.FetchImage(ctx, imageURL)
	if err != nil {
		return "", err
	}

	src, err := render.Decode(data)
	if err != nil {
		return "", err
	}

	composed, err := render.Compose(src, overlayText, style)
	if err != nil {
		return "", fmt.Errorf("ошибка отрисовки постера: %w", err)
	}

	return render.DataURL(composed)
}
