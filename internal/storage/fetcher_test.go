package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posterforge/internal/config"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFetchImage_HTTP(t *testing.T) {
	payload := pngBytes(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(&config.Config{})

	data, contentType, err := fetcher.FetchImage(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	// тип определяется по содержимому, не по заголовкам
	assert.Equal(t, "image/png", contentType)
}

func TestFetchImage_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(&config.Config{})

	_, _, err := fetcher.FetchImage(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchImage_DataURL(t *testing.T) {
	payload := pngBytes(t)
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	fetcher := NewHTTPFetcher(&config.Config{})

	data, contentType, err := fetcher.FetchImage(context.Background(), dataURL)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, "image/png", contentType)
}

func TestFetchImage_InvalidDataURL(t *testing.T) {
	fetcher := NewHTTPFetcher(&config.Config{})

	_, _, err := fetcher.FetchImage(context.Background(), "data:image/png,no-base64-marker")
	assert.Error(t, err)

	_, _, err = fetcher.FetchImage(context.Background(), "data:image/png;base64,не-base64!")
	assert.Error(t, err)
}
