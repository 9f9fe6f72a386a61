package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"posterforge/internal/models"
	"posterforge/internal/storage"
	"posterforge/internal/twitter"
)

var ErrNotConfigured = errors.New("учетные данные Twitter не настроены")

const defaultTimelineLimit = 10

type TwitterService interface {
	Publish(ctx context.Context, imageURL, text string) (*models.TweetPost, error)
	Analytics(ctx context.Context, tweetID string) (*models.TweetAnalytics, error)
	Recent(ctx context.Context, limit int) (*twitter.Timeline, error)
}

type twitterService struct {
	client  twitter.API
	fetcher storage.Fetcher
}

func NewTwitterService(client twitter.API, fetcher storage.Fetcher) TwitterService {
	return &twitterService{
		client:  client,
		fetcher: fetcher,
	}
}

// Publish скачивает изображение, загружает его как медиа и создает твит.
// Шаги не компенсируются: упавшее создание твита после успешной загрузки
// медиа оставляет сиротское медиа, повторный вызов может создать дубликат.
func (s *twitterService) Publish(ctx context.Context, imageURL, text string) (*models.TweetPost, error) {
	if !s.client.Configured() {
		return nil, ErrNotConfigured
	}

	logrus.Info("Публикуем в Twitter...")

	data, contentType, err := s.fetcher.FetchImage(ctx, imageURL)
	if err != nil {
		return nil, fmt.Errorf("публикация в Twitter не удалась: %w", err)
	}

	if contentType != "image/png" {
		logrus.Warnf("Изображение имеет тип %s, загружаем как image/png", contentType)
	}

	// тип передается фиксированным, как и размер холста
	mediaID, err := s.client.UploadMedia(ctx, data, "image/png")
	if err != nil {
		return nil, fmt.Errorf("публикация в Twitter не удалась: %w", err)
	}

	tweet, err := s.client.CreateTweet(ctx, text, []string{mediaID})
	if err != nil {
		return nil, fmt.Errorf("публикация в Twitter не удалась: %w", err)
	}

	tweetURL := fmt.Sprintf("https://twitter.com/i/web/status/%s", tweet.ID)
	logrus.Infof("Твит опубликован: %s", tweetURL)

	return &models.TweetPost{
		ID:   tweet.ID,
		Text: text,
		URL:  tweetURL,
	}, nil
}

// Analytics возвращает публичные счетчики твита, отсутствующие - нулями
func (s *twitterService) Analytics(ctx context.Context, tweetID string) (*models.TweetAnalytics, error) {
	if !s.client.Configured() {
		return nil, ErrNotConfigured
	}

	tweet, err := s.client.GetTweet(ctx, tweetID)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить аналитику: %w", err)
	}

	analytics := &models.TweetAnalytics{TweetID: tweetID}
	if tweet.PublicMetrics != nil {
		analytics.Impressions = tweet.PublicMetrics.ImpressionCount
		analytics.Likes = tweet.PublicMetrics.LikeCount
		analytics.Retweets = tweet.PublicMetrics.RetweetCount
		analytics.Replies = tweet.PublicMetrics.ReplyCount
		analytics.Quotes = tweet.PublicMetrics.QuoteCount
	}

	return analytics, nil
}

func (s *twitterService) Recent(ctx context.Context, limit int) (*twitter.Timeline, error) {
	if !s.client.Configured() {
		return nil, ErrNotConfigured
	}

	if limit <= 0 {
		limit = defaultTimelineLimit
	}

	timeline, err := s.client.UserTimeline(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить твиты: %w", err)
	}

	return timeline, nil
}
