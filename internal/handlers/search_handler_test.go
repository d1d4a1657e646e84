package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiring-copilot/internal/middleware"
	"hiring-copilot/internal/models"
	"hiring-copilot/internal/services"
)

type fakeSearchIndex struct {
	gotQuery  string
	gotUserID uuid.UUID
	gotLimit  int
	matches   []models.SearchMatch
	err       error
}

func (f *fakeSearchIndex) InitCollection() error { return nil }

func (f *fakeSearchIndex) IndexCandidate(ctx context.Context, reportID, userID uuid.UUID, filename string, score float64, resumeText string) error {
	return nil
}

func (f *fakeSearchIndex) SearchCandidates(ctx context.Context, query string, userID uuid.UUID, limit int) ([]models.SearchMatch, error) {
	f.gotQuery = query
	f.gotUserID = userID
	f.gotLimit = limit
	return f.matches, f.err
}

func newSearchTestApp(t *testing.T, index *fakeSearchIndex) (*fiber.App, string, uuid.UUID) {
	t.Helper()

	userRepo := newFakeUserRepo()
	authService := services.NewAuthService("test-secret", 30*time.Minute)

	user := &models.User{ID: uuid.New(), Username: "recruiter"}
	require.NoError(t, userRepo.Create(user))

	token, err := authService.CreateAccessToken(user.Username)
	require.NoError(t, err)

	app := fiber.New()
	authRequired := middleware.AuthRequired(authService, userRepo)
	app.Post("/search-candidates", authRequired, NewSearchHandler(index).HandleSearch)

	return app, token, user.ID
}

func searchRequest(token, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/search-candidates", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	return req
}

func TestSearchCandidates(t *testing.T) {
	index := &fakeSearchIndex{matches: []models.SearchMatch{
		{ReportID: uuid.NewString(), Filename: "strong.pdf", Score: 87, Similarity: 0.91},
	}}
	app, token, userID := newSearchTestApp(t, index)

	resp, err := app.Test(searchRequest(token, `{"query":"golang platform engineer","limit":5}`), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var matches []models.SearchMatch
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&matches))
	assert.Equal(t, index.matches, matches)

	assert.Equal(t, "golang platform engineer", index.gotQuery)
	assert.Equal(t, userID, index.gotUserID)
	assert.Equal(t, 5, index.gotLimit)
}

func TestSearchCandidatesDefaultLimit(t *testing.T) {
	index := &fakeSearchIndex{}
	app, token, _ := newSearchTestApp(t, index)

	resp, err := app.Test(searchRequest(token, `{"query":"golang"}`), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, defaultSearchLimit, index.gotLimit)

	// Oversized limits are reset too.
	resp, err = app.Test(searchRequest(token, `{"query":"golang","limit":5000}`), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, defaultSearchLimit, index.gotLimit)
}

func TestSearchCandidatesEmptyResultIsJSONArray(t *testing.T) {
	app, token, _ := newSearchTestApp(t, &fakeSearchIndex{})

	resp, err := app.Test(searchRequest(token, `{"query":"golang"}`), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var matches []models.SearchMatch
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&matches))
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestSearchCandidatesRequiresQuery(t *testing.T) {
	app, token, _ := newSearchTestApp(t, &fakeSearchIndex{})

	resp, err := app.Test(searchRequest(token, `{"limit":5}`), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSearchCandidatesIndexFailure(t *testing.T) {
	index := &fakeSearchIndex{err: errors.New("qdrant unavailable")}
	app, token, _ := newSearchTestApp(t, index)

	resp, err := app.Test(searchRequest(token, `{"query":"golang"}`), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}
