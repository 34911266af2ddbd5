package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobjournal/internal/auth"
	"github.com/justsurfingit/jobjournal/internal/dtos"
	"github.com/justsurfingit/jobjournal/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
	Mailer     services.Mailer
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(j *services.JobService, m services.Mailer) *JobHandler {
	return &JobHandler{
		JobService: j,
		Mailer:     m,
	}
}

// ListJobs is GET /jobs — owner-only listing.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.JobService.List(auth.CallerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// CreateJob is POST /jobs. The notification mail goes out after the
// response; its failure never touches the already-committed job.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.JobService.Create(auth.CallerID(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create job: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Job created successfully", "job": job})

	services.Dispatch(h.Mailer, auth.CallerEmail(c), "Job Added",
		fmt.Sprintf("You added a job at %s as %s \n\n The further details: \n\n Location: %s \n\n Job Type: %s \n\n Salary: %s \n\n Description: %s \n\n Date of Application: %s",
			req.Company, req.Jobtitle, req.Location, req.Jobtype, req.Salary, req.Description, req.Date))
}

// UpdateJob is PATCH /jobs. A round+status pair toggles that round first,
// then any editable fields present in the same payload are applied, so a
// combined payload lands in full rather than partially.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	userID := auth.CallerID(c)
	if req.Round != nil && req.Status != nil {
		if _, err := h.JobService.ToggleRound(req.JobID, userID, *req.Round, *req.Status == 1); err != nil {
			h.writeJobError(c, err)
			return
		}
	}

	job, err := h.JobService.ApplyFieldEdit(req.JobID, userID, &req)
	if err != nil {
		h.writeJobError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job updated successfully", "job": job})
}

// DeleteJob is DELETE /jobs.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	var req dtos.JobDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	if err := h.JobService.Delete(req.JobID, auth.CallerID(c)); err != nil {
		h.writeJobError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

func (h *JobHandler) writeJobError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrJobNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found or you don't have permission to edit it."})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}
