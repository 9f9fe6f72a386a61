package twitter

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dghubble/oauth1"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"posterforge/internal/config"
)

const (
	apiBaseURL    = "https://api.twitter.com"
	uploadBaseURL = "https://upload.twitter.com"
)

type PublicMetrics struct {
	ImpressionCount int `json:"impression_count"`
	LikeCount       int `json:"like_count"`
	RetweetCount    int `json:"retweet_count"`
	ReplyCount      int `json:"reply_count"`
	QuoteCount      int `json:"quote_count"`
}

type Tweet struct {
	ID            string         `json:"id"`
	Text          string         `json:"text"`
	CreatedAt     string         `json:"created_at,omitempty"`
	PublicMetrics *PublicMetrics `json:"public_metrics,omitempty"`
}

type Media struct {
	MediaKey        string `json:"media_key"`
	Type            string `json:"type"`
	URL             string `json:"url,omitempty"`
	PreviewImageURL string `json:"preview_image_url,omitempty"`
}

// Timeline - лента пользователя вместе с раскрытыми вложениями
type Timeline struct {
	Tweets   []Tweet           `json:"data"`
	Includes *TimelineIncludes `json:"includes,omitempty"`
}

type TimelineIncludes struct {
	Media []Media `json:"media,omitempty"`
}

type API interface {
	Configured() bool
	UploadMedia(ctx context.Context, data []byte, mimeType string) (string, error)
	CreateTweet(ctx context.Context, text string, mediaIDs []string) (*Tweet, error)
	GetTweet(ctx context.Context, tweetID string) (*Tweet, error)
	UserTimeline(ctx context.Context, limit int) (*Timeline, error)
}

// Client подписывает запросы по OAuth 1.0a от имени пользователя.
// Учетные данные передаются явно при создании: второй клиент с другими
// ключами - это просто еще один вызов конструктора.
type Client struct {
	api        *resty.Client
	upload     *resty.Client
	configured bool
}

func NewClient(creds config.Twitter, timeout time.Duration) *Client {
	if !creds.Configured() {
		logrus.Warn("Учетные данные Twitter не настроены, публикация отключена")
		return &Client{}
	}

	oauthConfig := oauth1.NewConfig(creds.APIKey, creds.APISecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)

	httpClient := oauthConfig.Client(oauth1.NoContext, token)
	if timeout > 0 {
		httpClient.Timeout = timeout
	}

	return &Client{
		api:        resty.NewWithClient(httpClient).SetBaseURL(apiBaseURL),
		upload:     resty.NewWithClient(httpClient).SetBaseURL(uploadBaseURL),
		configured: true,
	}
}

// WithBaseURLs заменяет адреса API, нужно для тестов на httptest-сервере
func (c *Client) WithBaseURLs(api, upload string) *Client {
	c.api.SetBaseURL(api)
	c.upload.SetBaseURL(upload)
	return c
}

func (c *Client) Configured() bool {
	return c.configured
}

type mediaUploadResponse struct {
	MediaIDString string `json:"media_id_string"`
}

func (c *Client) UploadMedia(ctx context.Context, data []byte, mimeType string) (string, error) {
	var result mediaUploadResponse

	resp, err := c.upload.R().
		SetContext(ctx).
		SetFileReader("media", "poster.png", bytes.NewReader(data)).
		SetResult(&result).
		Post("/1.1/media/upload.json")
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки медиа: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("ошибка загрузки медиа: %s", resp.String())
	}

	if result.MediaIDString == "" {
		return "", fmt.Errorf("ошибка загрузки медиа: пустой media_id в ответе")
	}

	logrus.Infof("Изображение загружено в Twitter: %s (%s)", result.MediaIDString, mimeType)
	return result.MediaIDString, nil
}

type tweetRequest struct {
	Text  string             `json:"text"`
	Media *tweetRequestMedia `json:"media,omitempty"`
}

type tweetRequestMedia struct {
	MediaIDs []string `json:"media_ids"`
}

type tweetResponse struct {
	Data Tweet `json:"data"`
}

func (c *Client) CreateTweet(ctx context.Context, text string, mediaIDs []string) (*Tweet, error) {
	body := tweetRequest{Text: text}
	if len(mediaIDs) > 0 {
		body.Media = &tweetRequestMedia{MediaIDs: mediaIDs}
	}

	var result tweetResponse

	resp, err := c.api.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post("/2/tweets")
	if err != nil {
		return nil, fmt.Errorf("ошибка создания твита: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("ошибка создания твита: %s", resp.String())
	}

	return &result.Data, nil
}

func (c *Client) GetTweet(ctx context.Context, tweetID string) (*Tweet, error) {
	var result tweetResponse

	resp, err := c.api.R().
		SetContext(ctx).
		SetQueryParam("tweet.fields", "public_metrics").
		SetResult(&result).
		Get("/2/tweets/" + tweetID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения твита: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("ошибка получения твита: %s", resp.String())
	}

	return &result.Data, nil
}

type meResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (c *Client) UserTimeline(ctx context.Context, limit int) (*Timeline, error) {
	var me meResponse

	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&me).
		Get("/2/users/me")
	if err != nil {
		return nil, fmt.Errorf("ошибка получения пользователя: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("ошибка получения пользователя: %s", resp.String())
	}

	var timeline Timeline

	resp, err = c.api.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"max_results":  strconv.Itoa(limit),
			"tweet.fields": "created_at,public_metrics",
			"expansions":   "attachments.media_keys",
			"media.fields": "url,preview_image_url",
		}).
		SetResult(&timeline).
		Get("/2/users/" + me.Data.ID + "/tweets")
	if err != nil {
		return nil, fmt.Errorf("ошибка получения ленты: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("ошибка получения ленты: %s", resp.String())
	}

	return &timeline, nil
}
