package repository

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"posterforge/internal/database"
	"posterforge/internal/models"
)

// фиксированная стоимость хеширования, как и формат хранения, часть контракта
const bcryptCost = 10

type userRepository struct {
	users *database.Collection
}

type usersDocument struct {
	Users []models.User `json:"users"`
}

func NewUserRepository(store *database.Store) UserRepository {
	return &userRepository{users: store.Users()}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	// create password hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	var doc usersDocument
	err = r.users.Update(&doc, func() error {
		// email сравнивается точно, с учетом регистра
		for _, u := range doc.Users {
			if u.Email == user.Email {
				return ErrUserExists
			}
		}

		user.ID = nextUserID(doc.Users)
		user.PasswordHash = string(hashedPassword)
		user.CreatedAt = time.Now().UTC().Format(time.RFC3339)

		doc.Users = append(doc.Users, *user)
		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	var doc usersDocument
	if err := r.users.View(&doc); err != nil {
		return nil, err
	}
	return doc.Users, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var doc usersDocument
	if err := r.users.View(&doc); err != nil {
		return nil, err
	}

	for _, u := range doc.Users {
		if u.Email == email {
			return &u, nil
		}
	}

	return nil, ErrUserNotFound
}

func (r *userRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	user, err := r.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// сравнение только через bcrypt, не через равенство строк
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, ErrInvalidPassword
	}

	return user, nil
}

func (r *userRepository) UpdateRefreshToken(ctx context.Context, userID int64, refreshToken string, expiryTime time.Time) error {
	var doc usersDocument
	return r.users.Update(&doc, func() error {
		for i := range doc.Users {
			if doc.Users[i].ID == userID {
				doc.Users[i].RefreshToken = refreshToken
				doc.Users[i].RefreshTokenExpiryTime = expiryTime
				return nil
			}
		}
		return ErrUserNotFound
	})
}

func (r *userRepository) GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error) {
	if refreshToken == "" {
		return nil, ErrUserNotFound
	}

	var doc usersDocument
	if err := r.users.View(&doc); err != nil {
		return nil, err
	}

	for _, u := range doc.Users {
		if u.RefreshToken == refreshToken && u.RefreshTokenExpiryTime.After(time.Now()) {
			return &u, nil
		}
	}

	return nil, ErrUserNotFound
}

// nextUserID выдает монотонный идентификатор под блокировкой коллекции
func nextUserID(users []models.User) int64 {
	var max int64
	for _, u := range users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}
