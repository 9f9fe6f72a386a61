package test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"posterforge/internal/models"
	"posterforge/internal/twitter"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password string) (*models.User, string, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

type MockPosterService struct {
	mock.Mock
}

func (m *MockPosterService) Generate(ctx context.Context, userID int64, prompt string) (*models.Poster, error) {
	args := m.Called(ctx, userID, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Poster), args.Error(1)
}

type MockPosterRepository struct {
	mock.Mock
}

func (m *MockPosterRepository) Create(ctx context.Context, poster *models.Poster) error {
	args := m.Called(ctx, poster)
	return args.Error(0)
}

func (m *MockPosterRepository) GetAll(ctx context.Context) ([]models.Poster, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Poster), args.Error(1)
}

func (m *MockPosterRepository) GetByUserID(ctx context.Context, userID int64) ([]models.Poster, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Poster), args.Error(1)
}

type MockTwitterService struct {
	mock.Mock
}

func (m *MockTwitterService) Publish(ctx context.Context, imageURL, text string) (*models.TweetPost, error) {
	args := m.Called(ctx, imageURL, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TweetPost), args.Error(1)
}

func (m *MockTwitterService) Analytics(ctx context.Context, tweetID string) (*models.TweetAnalytics, error) {
	args := m.Called(ctx, tweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TweetAnalytics), args.Error(1)
}

func (m *MockTwitterService) Recent(ctx context.Context, limit int) (*twitter.Timeline, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*twitter.Timeline), args.Error(1)
}

type MockEditorService struct {
	mock.Mock
}

func (m *MockEditorService) Render(ctx context.Context, imageURL, overlayText string, style models.OverlayStyle) (string, error) {
	args := m.Called(ctx, imageURL, overlayText, style)
	return args.String(0), args.Error(1)
}
