package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skillmatch/job-recommender/internal/recommend"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	engine := recommend.New(recommend.DefaultRules(), nil, zap.NewNop())
	return New(":0", engine, nil, zap.NewNop())
}

func doRequest(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHome(t *testing.T) {
	rec := doRequest(t, newTestServer(t), http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestHandleHealthWithoutCatalog(t *testing.T) {
	rec := doRequest(t, newTestServer(t), http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status     string `json:"status"`
		Version    string `json:"version"`
		JobCatalog struct {
			Configured bool   `json:"configured"`
			Status     string `json:"status"`
		} `json:"job_catalog"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, Version, body.Version)
	assert.False(t, body.JobCatalog.Configured)
	assert.Equal(t, "not_configured", body.JobCatalog.Status)
}

func TestHandleRecommendInvalidJSON(t *testing.T) {
	rec := doRequest(t, newTestServer(t), http.MethodPost, "/api/recommend", "{not json")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
}

func TestHandleRecommendFallbackPool(t *testing.T) {
	// No catalog configured, so the built-in fallback posting is ranked.
	profile := `{
		"users": {"firstName": "Asha", "lastName": "Rao", "email": "asha@example.com"},
		"keySkills": "java, springboot, postgresql",
		"preferedJobType": "full-time",
		"preferedLocation": "Bangalore"
	}`

	rec := doRequest(t, newTestServer(t), http.MethodPost, "/api/recommend", profile)
	require.Equal(t, http.StatusOK, rec.Code)

	var body recommendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	require.Equal(t, 1, body.TotalRecommendations)

	top := body.Recommendations[0]
	assert.Equal(t, 1, top.Rank)
	assert.Equal(t, "fallback_1", top.JobID)
	assert.True(t, top.MatchCriteria.LocationMatch)
	assert.True(t, top.MatchCriteria.JobTypeMatch)
	assert.Equal(t, 100.0, top.MatchCriteria.SkillMatchPercent)
	assert.NotEmpty(t, top.Explanation)

	assert.Equal(t, "Asha Rao", body.UserProfile.Name)
	assert.Equal(t, "asha@example.com", body.UserProfile.Email)
	assert.NotEmpty(t, body.UserProfile.ExtractedTags)
	assert.Equal(t, 1, body.APIInfo.JobsProcessed)
}

func TestHandleRecommendMethodNotAllowed(t *testing.T) {
	rec := doRequest(t, newTestServer(t), http.MethodGet, "/api/recommend", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestClampQuery(t *testing.T) {
	cases := []struct {
		query string
		want  int
	}{
		{"", 10},
		{"top_n=5", 5},
		{"top_n=0", 1},
		{"top_n=999", 50},
		{"top_n=abc", 10},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/?"+tc.query, nil)
		assert.Equal(t, tc.want, clampQuery(req, "top_n", 10, 1, 50), tc.query)
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.123, round(0.12345, 3))
	assert.Equal(t, 66.67, round(66.666666, 2))
	assert.Equal(t, 0.0, round(0, 3))
}
