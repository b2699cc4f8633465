package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-textrank/internal/analytics"
	"github.com/gcbaptista/go-textrank/internal/engine"
	"github.com/gcbaptista/go-textrank/internal/segmenter"
	"github.com/gcbaptista/go-textrank/model"
)

func TestGetAnalyticsHandler(t *testing.T) {
	seg, err := segmenter.New(nil)
	require.NoError(t, err)
	tracker := analytics.NewService(nil)
	eng, err := engine.NewEngine(seg, engine.Options{Analytics: tracker})
	require.NoError(t, err)
	eng.Start()
	t.Cleanup(eng.Stop)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, eng, RouterOptions{Analytics: tracker})

	w := doRequest(router, http.MethodPost, "/analyze/keywords", AnalyzeRequestBody{Text: catDogText})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(router, http.MethodGet, "/analytics", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var dashboard model.AnalyticsDashboard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dashboard))
	assert.Equal(t, 1, dashboard.TotalAnalyses)
	assert.Equal(t, 1, dashboard.Kinds.ExtractKeywords)
	require.NotEmpty(t, dashboard.PopularKeywords)
	assert.Equal(t, "cat", dashboard.PopularKeywords[0].Word)
	assert.Len(t, dashboard.Performance24h, 24)
}

func TestGetAnalyticsHandler_Disabled(t *testing.T) {
	router := setupTestRouter(setupTestEngine(t), 0)

	w := doRequest(router, http.MethodGet, "/analytics", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
