package apihandlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptvault/internal/app"
	"promptvault/internal/config"
	"promptvault/internal/models"
	"promptvault/internal/store/sqlite"
	"promptvault/pkg/annotate"
)

// setupTestRouter builds a router backed by an in-memory store and an
// unconfigured annotator, so every annotation takes the deterministic
// fallback path.
func setupTestRouter(t *testing.T) (*gin.Engine, *app.App) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	promptStore, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { promptStore.Close() })

	testApp := &app.App{
		Config:      &config.Config{},
		PromptStore: promptStore,
		Annotator:   annotate.New(nil, "gemini-2.5-flash", time.Second),
	}

	router := gin.New()
	RegisterRoutes(router, NewAPIHandler(testApp))
	return router, testApp
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCategorizeHandler_FallbackSuggestion(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/categorize", CategorizeRequest{
		Content: "python スクリプトを書いて",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var got annotate.CategorySuggestion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "python スクリプトを書いて", got.Summary)
	assert.Equal(t, []string{"プログラミング", "Python", "開発"}, got.SuggestedCategories)
}

func TestCategorizeHandler_MissingContent(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/categorize", CategorizeRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePromptHandler_StoresFallbackTitle(t *testing.T) {
	router, testApp := setupTestRouter(t)

	content := strings.Repeat("b", 31)
	w := doJSON(t, router, http.MethodPost, "/prompts", CreatePromptRequest{
		Category: "開発",
		Content:  content,
		Summary:  "a test prompt",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Prompt
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, strings.Repeat("b", 30)+"...", created.Title,
		"unconfigured model stores the heuristic title")
	assert.Equal(t, "", created.Tags)
	assert.Equal(t, "開発", created.Category)
	assert.Equal(t, "a test prompt", created.Summary)

	// The row is durably stored, not just echoed.
	stored, err := testApp.PromptStore.GetPrompt(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, stored.Title)
}

func TestCreatePromptHandler_MissingContent(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/prompts", CreatePromptRequest{Category: "開発"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPromptsHandler(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/prompts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()),
		"empty store serializes as an empty list, not null")

	doJSON(t, router, http.MethodPost, "/prompts", CreatePromptRequest{Content: "one"})
	doJSON(t, router, http.MethodPost, "/prompts", CreatePromptRequest{Content: "two"})

	w = doJSON(t, router, http.MethodGet, "/prompts", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var prompts []models.Prompt
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prompts))
	require.Len(t, prompts, 2)
	assert.Equal(t, "two", prompts[0].Content, "newest first")
}

func TestGetPromptHandler(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/prompts", CreatePromptRequest{Content: "findable"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Prompt
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, http.MethodGet, "/prompts/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/prompts/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/prompts/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthHandler(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
