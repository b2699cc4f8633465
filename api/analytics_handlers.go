package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetAnalyticsHandler returns the analysis analytics dashboard
func (api *API) GetAnalyticsHandler(c *gin.Context) {
	if api.analytics == nil {
		SendError(c, http.StatusNotFound, ErrorCodeInvalidRequest, "Analytics are not enabled")
		return
	}

	c.JSON(http.StatusOK, api.analytics.GetDashboardData())
}
