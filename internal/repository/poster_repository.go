package repository

import (
	"context"
	"time"

	"posterforge/internal/database"
	"posterforge/internal/models"
)

type posterRepository struct {
	posters *database.Collection
}

type postersDocument struct {
	Posters []models.Poster `json:"posters"`
}

func NewPosterRepository(store *database.Store) PosterRepository {
	return &posterRepository{posters: store.Posters()}
}

func (r *posterRepository) Create(ctx context.Context, poster *models.Poster) error {
	var doc postersDocument
	return r.posters.Update(&doc, func() error {
		poster.ID = nextPosterID(doc.Posters)
		poster.CreatedAt = time.Now().UTC().Format(time.RFC3339)

		doc.Posters = append(doc.Posters, *poster)
		return nil
	})
}

func (r *posterRepository) GetAll(ctx context.Context) ([]models.Poster, error) {
	var doc postersDocument
	if err := r.posters.View(&doc); err != nil {
		return nil, err
	}
	return doc.Posters, nil
}

// GetByUserID возвращает постеры пользователя в порядке добавления
func (r *posterRepository) GetByUserID(ctx context.Context, userID int64) ([]models.Poster, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	posters := make([]models.Poster, 0)
	for _, p := range all {
		if p.UserID == userID {
			posters = append(posters, p)
		}
	}

	return posters, nil
}

func nextPosterID(posters []models.Poster) int64 {
	var max int64
	for _, p := range posters {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}
