package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/gcbaptista/go-textrank/internal/errors"
	"github.com/gcbaptista/go-textrank/model"
)

// GetJobHandler handles requests to get job status by ID
func (api *API) GetJobHandler(c *gin.Context) {
	jobID := c.Param("jobId")

	job, err := api.engine.GetJob(jobID)
	if err != nil {
		if errors.Is(err, internalErrors.ErrJobNotFound) {
			SendJobNotFoundError(c, jobID)
			return
		}
		SendInternalError(c, "get job", err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListJobsHandler handles requests to list jobs
func (api *API) ListJobsHandler(c *gin.Context) {
	statusParam := c.Query("status")

	if result := ValidateJobStatus(statusParam); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return
	}

	var statusFilter *model.JobStatus
	if statusParam != "" {
		status := model.JobStatus(statusParam)
		statusFilter = &status
	}

	jobs := api.engine.ListJobs(statusFilter)
	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

// CancelJobHandler requests cancellation of a job
func (api *API) CancelJobHandler(c *gin.Context) {
	jobID := c.Param("jobId")

	if err := api.engine.CancelJob(jobID); err != nil {
		if errors.Is(err, internalErrors.ErrJobNotFound) {
			SendJobNotFoundError(c, jobID)
			return
		}
		SendError(c, http.StatusConflict, ErrorCodeInvalidRequest, err.Error())
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "accepted",
		"message": "Cancellation requested for job '" + jobID + "'",
		"job_id":  jobID,
	})
}

// GetJobMetricsHandler handles requests to get job performance metrics
func (api *API) GetJobMetricsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"metrics":          api.engine.GetJobMetrics(),
		"success_rate":     api.engine.GetJobSuccessRate(),
		"current_workload": api.engine.GetCurrentWorkload(),
	})
}

// isClientError reports whether err was caused by the request itself.
func isClientError(err error) bool {
	return errors.Is(err, internalErrors.ErrInvalidInput) ||
		errors.Is(err, internalErrors.ErrInvalidConfiguration)
}
