package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stashlop/sillora/internal/repositories"
	"github.com/stashlop/sillora/internal/validator"
)

type JobHandler struct {
	*BaseHandler
}

func NewJobHandler(base *BaseHandler) *JobHandler {
	return &JobHandler{BaseHandler: base}
}

// List handles GET /jobs/ with optional job_type and location filters.
func (h *JobHandler) List(c *gin.Context) {
	var filters repositories.JobFilters
	if v := c.Query("job_type"); v != "" {
		filters.JobType = &v
	}
	if v := c.Query("location"); v != "" {
		filters.Location = &v
	}

	jobs, total, err := h.services.Job.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "total": total})
}

// Create handles POST /jobs/
func (h *JobHandler) Create(c *gin.Context) {
	accountID, _ := accountIDFrom(c)

	var req validator.JobCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid request body")
		return
	}

	created, err := h.services.Job.Create(c.Request.Context(), accountID, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
