package test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"posterforge/internal/config"
	handlers "posterforge/internal/handler"
)

func createTestHandler() *handlers.Handlers {
	cfg := &config.Config{
		JWTSecretKey: "test-secret-key",
		ServerPort:   3001,
	}

	return &handlers.Handlers{
		AuthService:    &MockAuthService{},
		PosterService:  &MockPosterService{},
		PosterRepo:     &MockPosterRepository{},
		TwitterService: &MockTwitterService{},
		EditorService:  &MockEditorService{},
		Cfg:            cfg,
		Validate:       validator.New(),
	}
}

// assertJSONError проверяет JSON-ответ с ошибкой
func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], expectedError)
}
