package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gcbaptista/go-textrank/config"
	"github.com/gcbaptista/go-textrank/internal/logging"
	"github.com/gcbaptista/go-textrank/model"
	"github.com/gcbaptista/go-textrank/services"
)

// API holds dependencies for API handlers, primarily the analysis engine.
type API struct {
	engine    services.AnalysisService
	analytics services.AnalyticsProvider
	logger    *zap.Logger
}

// AnalyzeRequestBody is the JSON body accepted by the analysis routes.
type AnalyzeRequestBody struct {
	Text     string                   `json:"text"`
	Label    string                   `json:"label,omitempty"`
	Type     string                   `json:"type,omitempty"` // Only used by /analyze/async
	Settings *config.AnalyzeOverrides `json:"settings,omitempty"`
}

func (b *AnalyzeRequestBody) toServiceRequest() services.AnalyzeRequest {
	return services.AnalyzeRequest{Text: b.Text, Label: b.Label, Settings: b.Settings}
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.AnalysisService, logger *zap.Logger) *API {
	return &API{
		engine: engine,
		logger: logging.OrNop(logger),
	}
}

// RouterOptions configures the middleware installed by SetupRoutes.
type RouterOptions struct {
	MaxBodyBytes int64                      // 0 disables the request size limit
	Analytics    services.AnalyticsProvider // Optional: enables GET /analytics
	Logger       *zap.Logger
}

// SetupRoutes defines all the API routes for the TextRank service.
func SetupRoutes(router *gin.Engine, engine services.AnalysisService, opts RouterOptions) {
	apiHandler := NewAPI(engine, opts.Logger)
	apiHandler.analytics = opts.Analytics

	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggerMiddleware(apiHandler.logger))
	router.Use(CORSMiddleware())
	if opts.MaxBodyBytes > 0 {
		router.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	}

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Effective server defaults
	router.GET("/settings", apiHandler.GetSettingsHandler)

	// Analysis routes
	analyzeRoutes := router.Group("/analyze")
	{
		analyzeRoutes.POST("", apiHandler.AnalyzeHandler)             // Full analysis
		analyzeRoutes.POST("/keywords", apiHandler.KeywordsHandler)   // Ranked words, keywords and keyphrases
		analyzeRoutes.POST("/sentences", apiHandler.SentencesHandler) // Ranked and key sentences
		analyzeRoutes.POST("/async", apiHandler.AnalyzeAsyncHandler)  // Background analysis, returns a job ID
	}

	// Analytics dashboard
	if opts.Analytics != nil {
		router.GET("/analytics", apiHandler.GetAnalyticsHandler)
	}

	// Job management routes
	jobRoutes := router.Group("/jobs")
	{
		jobRoutes.GET("", apiHandler.ListJobsHandler)              // List jobs, optional ?status= filter
		jobRoutes.GET("/metrics", apiHandler.GetJobMetricsHandler) // Get job performance metrics
		jobRoutes.GET("/:jobId", apiHandler.GetJobHandler)         // Get job status (and result) by ID
		jobRoutes.DELETE("/:jobId", apiHandler.CancelJobHandler)   // Cancel a pending or running job
	}
}

// HealthCheckHandler provides a simple health check endpoint
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "go-textrank",
		"timestamp": fmt.Sprintf("%d", time.Now().Unix()),
	})
}

// GetSettingsHandler returns the server-wide analysis defaults
func (api *API) GetSettingsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.engine.Settings())
}

// AnalyzeHandler runs a full analysis synchronously
func (api *API) AnalyzeHandler(c *gin.Context) {
	body, ok := api.bindAnalyzeRequest(c)
	if !ok {
		return
	}

	analysis, err := api.engine.Analyze(c.Request.Context(), body.toServiceRequest())
	if err != nil {
		SendAnalysisError(c, "analyze", err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// KeywordsHandler ranks words and returns keywords and keyphrases
func (api *API) KeywordsHandler(c *gin.Context) {
	body, ok := api.bindAnalyzeRequest(c)
	if !ok {
		return
	}

	analysis, err := api.engine.ExtractKeywords(c.Request.Context(), body.toServiceRequest())
	if err != nil {
		SendAnalysisError(c, "extract keywords", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                 analysis.ID,
		"words":              analysis.Words,
		"keywords":           analysis.Keywords,
		"keyphrases":         analysis.Keyphrases,
		"vocabulary_size":    analysis.VocabularySize,
		"sentence_count":     analysis.SentenceCount,
		"processing_time_ms": analysis.ProcessingTimeMs,
	})
}

// SentencesHandler ranks sentences and returns the key sentences
func (api *API) SentencesHandler(c *gin.Context) {
	body, ok := api.bindAnalyzeRequest(c)
	if !ok {
		return
	}

	analysis, err := api.engine.ExtractSentences(c.Request.Context(), body.toServiceRequest())
	if err != nil {
		SendAnalysisError(c, "extract sentences", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                 analysis.ID,
		"sentences":          analysis.Sentences,
		"key_sentences":      analysis.KeySentences,
		"sentence_count":     analysis.SentenceCount,
		"processing_time_ms": analysis.ProcessingTimeMs,
	})
}

// AnalyzeAsyncHandler starts a background analysis and returns its job ID
func (api *API) AnalyzeAsyncHandler(c *gin.Context) {
	body, ok := api.bindAnalyzeRequest(c)
	if !ok {
		return
	}

	jobID, err := api.engine.AnalyzeAsync(body.toServiceRequest(), model.JobType(body.Type))
	if err != nil {
		if isClientError(err) {
			SendAnalysisError(c, "analyze", err)
			return
		}
		SendJobExecutionError(c, "analysis", err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "accepted",
		"message": "Analysis started",
		"job_id":  jobID,
	})
}

// bindAnalyzeRequest decodes and validates the request body. It writes the
// error response itself and reports whether the handler should continue.
func (api *API) bindAnalyzeRequest(c *gin.Context) (*AnalyzeRequestBody, bool) {
	var body AnalyzeRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		SendInvalidJSONError(c, err)
		return nil, false
	}

	if result := ValidateAnalyzeRequest(&body); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return nil, false
	}

	return &body, true
}
