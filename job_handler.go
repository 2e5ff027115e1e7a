package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/roamio/travelagency/model"
	"github.com/roamio/travelagency/repository"
)

type JobHandler struct {
	repo   repository.JobRepository
	logger *zap.Logger
}

func NewJobHandler(repo repository.JobRepository, logger *zap.Logger) *JobHandler {
	return &JobHandler{
		repo:   repo,
		logger: logger,
	}
}

// ListJobPostings handles the public careers listing
func (h *JobHandler) ListJobPostings(c *gin.Context) {
	jobs, err := h.repo.ListJobPostings()
	if err != nil {
		h.logger.Error("failed to list job postings", zap.Error(err))
		c.JSON(http.StatusOK, model.JobPostingListResponse{Jobs: []model.JobPostingResponse{}})
		return
	}

	response := model.JobPostingListResponse{
		Jobs:  make([]model.JobPostingResponse, 0, len(jobs)),
		Total: len(jobs),
	}
	for i := range jobs {
		response.Jobs = append(response.Jobs, jobs[i].ToJobPostingResponse())
	}

	c.JSON(http.StatusOK, response)
}

// GetJobPosting handles a single job posting lookup by slug
func (h *JobHandler) GetJobPosting(c *gin.Context) {
	job, err := h.repo.GetJobPostingBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, model.ErrorResponse{
			Error:   "not_found",
			Message: "Job posting not found",
		})
		return
	}

	c.JSON(http.StatusOK, job.ToJobPostingResponse())
}
