package repository

import (
	"context"
	"errors"
	"time"

	"posterforge/internal/database"
	"posterforge/internal/models"
)

var (
	ErrUserExists      = errors.New("пользователь с таким email уже существует")
	ErrUserNotFound    = errors.New("пользователь не найден")
	ErrInvalidPassword = errors.New("неверный пароль")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetAll(ctx context.Context) ([]models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID int64, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

type PosterRepository interface {
	Create(ctx context.Context, poster *models.Poster) error
	GetAll(ctx context.Context) ([]models.Poster, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.Poster, error)
}

type Repository struct {
	User   UserRepository
	Poster PosterRepository
}

func NewRepository(store *database.Store) *Repository {
	return &Repository{
		User:   NewUserRepository(store),
		Poster: NewPosterRepository(store),
	}
}
