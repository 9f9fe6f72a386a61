package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"posterforge/internal/models"
)

func TestRenderPosterHandler_Success(t *testing.T) {
	handler := createTestHandler()
	mockEditor := handler.EditorService.(*MockEditorService)

	mockEditor.On("Render", mock.Anything, "https://example.com/poster.png", "SUMMER SALE", models.OverlayStyle{
		FontSize:     64,
		TextColor:    "#FFD700",
		TextPosition: "top",
		FontWeight:   "bold",
	}).Return("data:image/png;base64,aGVsbG8=", nil)

	rr := httptest.NewRecorder()
	handler.RenderPoster(rr, postJSON(t, "/editor/render", map[string]interface{}{
		"imageUrl":     "https://example.com/poster.png",
		"overlayText":  "SUMMER SALE",
		"fontSize":     64,
		"textColor":    "#FFD700",
		"textPosition": "top",
		"fontWeight":   "bold",
	}))

	assert.Equal(t, http.StatusOK, rr.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.True(t, strings.HasPrefix(response["image"].(string), "data:image/png;base64,"))
	assert.Equal(t, float64(1024), response["width"])
	assert.Equal(t, float64(1024), response["height"])

	mockEditor.AssertExpectations(t)
}

func TestRenderPosterHandler_DefaultStyle(t *testing.T) {
	handler := createTestHandler()
	mockEditor := handler.EditorService.(*MockEditorService)

	// значения по умолчанию редактора: 48px, белый, по центру, жирный
	mockEditor.On("Render", mock.Anything, "https://example.com/poster.png", "", models.OverlayStyle{
		FontSize:     48,
		TextColor:    "#FFFFFF",
		TextPosition: "center",
		FontWeight:   "bold",
	}).Return("data:image/png;base64,aGVsbG8=", nil)

	rr := httptest.NewRecorder()
	handler.RenderPoster(rr, postJSON(t, "/editor/render", map[string]interface{}{
		"imageUrl": "https://example.com/poster.png",
	}))

	assert.Equal(t, http.StatusOK, rr.Code)
	mockEditor.AssertExpectations(t)
}

func TestRenderPosterHandler_InvalidInput(t *testing.T) {
	handler := createTestHandler()
	mockEditor := handler.EditorService.(*MockEditorService)

	for name, body := range map[string]map[string]interface{}{
		"без imageUrl":       {"overlayText": "SALE"},
		"неверная позиция":   {"imageUrl": "https://example.com/a.png", "textPosition": "middle"},
		"неверное насыщение": {"imageUrl": "https://example.com/a.png", "fontWeight": "heavy"},
		"неверный цвет":      {"imageUrl": "https://example.com/a.png", "textColor": "gold"},
	} {
		rr := httptest.NewRecorder()
		handler.RenderPoster(rr, postJSON(t, "/editor/render", body))

		assert.Equal(t, http.StatusBadRequest, rr.Code, name)
	}

	mockEditor.AssertNotCalled(t, "Render", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRenderPosterHandler_FetchFailure(t *testing.T) {
	handler := createTestHandler()
	mockEditor := handler.EditorService.(*MockEditorService)

	mockEditor.On("Render", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", assert.AnError)

	rr := httptest.NewRecorder()
	handler.RenderPoster(rr, postJSON(t, "/editor/render", map[string]interface{}{
		"imageUrl": "https://example.com/missing.png",
	}))

	assertJSONError(t, rr, http.StatusInternalServerError, "Не удалось отрисовать постер")
}
