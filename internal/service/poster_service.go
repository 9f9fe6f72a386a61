package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	"posterforge/internal/models"
	"posterforge/internal/repository"
)

var ErrInvalidPosterInput = errors.New("требуются ID пользователя и запрос")

// генератор изображений разрешает ссылку лениво, на стороне клиента;
// сервер ее не запрашивает и не проверяет
const imageURLTemplate = "https://image.pollinations.ai/prompt/%s?width=1024&height=1024&nologo=true&enhance=true"

type PosterService interface {
	Generate(ctx context.Context, userID int64, prompt string) (*models.Poster, error)
}

type posterService struct {
	posterRepo repository.PosterRepository
}

func NewPosterService(posterRepo repository.PosterRepository) PosterService {
	return &posterService{posterRepo: posterRepo}
}

func (s *posterService) Generate(ctx context.Context, userID int64, prompt string) (*models.Poster, error) {
	if userID == 0 || prompt == "" {
		return nil, ErrInvalidPosterInput
	}

	logrus.Infof("Генерируем постер по запросу: %s", prompt)

	poster := &models.Poster{
		UserID:   userID,
		Prompt:   prompt,
		ImageURL: fmt.Sprintf(imageURLTemplate, url.PathEscape(prompt)),
	}

	err := s.posterRepo.Create(ctx, poster)
	if err != nil {
		return nil, fmt.Errorf("ошибка при сохранении постера: %w", err)
	}

	logrus.Infof("Постер создан: %d", poster.ID)

	return poster, nil
}
