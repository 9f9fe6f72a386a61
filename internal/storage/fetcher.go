package storage

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-resty/resty/v2"

	"posterforge/internal/config"
)

// Fetcher отдает байты изображения по ссылке вместе с определенным типом содержимого
type Fetcher interface {
	FetchImage(ctx context.Context, imageURL string) ([]byte, string, error)
}

type HTTPFetcher struct {
	client *resty.Client
}

func NewHTTPFetcher(cfg *config.Config) *HTTPFetcher {
	client := resty.New()
	if cfg.HTTPClientTimeout > 0 {
		client.SetTimeout(cfg.HTTPClientTimeout)
	}

	return &HTTPFetcher{client: client}
}

func (f *HTTPFetcher) FetchImage(ctx context.Context, imageURL string) ([]byte, string, error) {
	// отредактированные постеры приходят как data URL, без сети
	if strings.HasPrefix(imageURL, "data:") {
		return decodeDataURL(imageURL)
	}

	resp, err := f.client.R().SetContext(ctx).Get(imageURL)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка загрузки изображения: %w", err)
	}

	if resp.IsError() {
		return nil, "", fmt.Errorf("ошибка загрузки изображения: статус %s", resp.Status())
	}

	data := resp.Body()
	if len(data) == 0 {
		return nil, "", fmt.Errorf("ошибка загрузки изображения: пустой ответ")
	}

	return data, mimetype.Detect(data).String(), nil
}

func decodeDataURL(imageURL string) ([]byte, string, error) {
	_, encoded, found := strings.Cut(imageURL, ";base64,")
	if !found {
		return nil, "", fmt.Errorf("неверный формат data URL")
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка декодирования data URL: %w", err)
	}

	return data, mimetype.Detect(data).String(), nil
}
