package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/after42/api/http/presenter"
	"github.com/artem13815/after42/pkg/candidate"
	"github.com/artem13815/after42/pkg/filter"
	"github.com/artem13815/after42/pkg/job"
	"github.com/artem13815/after42/pkg/workspace"
)

type JobHandler struct {
	registry *workspace.Registry
	catalog  workspace.Catalog
}

func NewJobHandler(registry *workspace.Registry, catalog workspace.Catalog) *JobHandler {
	return &JobHandler{registry: registry, catalog: catalog}
}

type createJobRequest struct {
	Title       string   `json:"title"`
	Department  string   `json:"department"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	Status      string   `json:"status"`
	Difficulty  string   `json:"difficulty"`
	TechStack   []string `json:"techStack"`
	AIGenerated *bool    `json:"aiGenerated"`
	Description string   `json:"description"`
}

type createJobResponse struct {
	Job   job.Job            `json:"job"`
	State workspace.Snapshot `json:"state"`
}

// @Summary List jobs
// @Tags    jobs
// @Produce json
// @Param   search query string false "matches title and department"
// @Param   status query string false "Active | Draft | Closed | all"
// @Param   limit  query int false "page size, 50 by default"
// @Param   offset query int false "page offset"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /jobs [get]
func (h *JobHandler) List(c *fiber.Ctx) error {
	if _, err := authorized(c, h.registry); err != nil {
		return fail(c, err)
	}
	jobs, err := h.catalog.Jobs.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	jobs = job.Filter(jobs, filter.Query{Search: c.Query("search"), Status: c.Query("status")})
	return presenter.JSON(c, http.StatusOK, paginate(c, jobs, 50))
}

// Create runs the add-job flow. On success the device is back on the dashboard.
// @Summary Create job
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   input body createJobRequest true "add-job form"
// @Security BearerAuth
// @Success 201 {object} createJobResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /jobs [post]
func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req createJobRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	w, err := current(c, h.registry)
	if err != nil {
		return fail(c, err)
	}
	created, snap, err := w.AddJob(c.Context(), job.Draft{
		Title:       req.Title,
		Department:  req.Department,
		Location:    req.Location,
		Type:        req.Type,
		Status:      job.Status(req.Status),
		Difficulty:  job.Difficulty(req.Difficulty),
		TechStack:   req.TechStack,
		AIGenerated: req.AIGenerated,
		Description: req.Description,
	})
	if err != nil {
		return fail(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, createJobResponse{Job: created, State: snap})
}

// @Summary Get job by ID
// @Tags    jobs
// @Produce json
// @Param   id path string true "job id"
// @Security BearerAuth
// @Success 200 {object} job.Job
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [get]
func (h *JobHandler) GetByID(c *fiber.Ctx) error {
	if _, err := authorized(c, h.registry); err != nil {
		return fail(c, err)
	}
	j, ok, err := h.catalog.Jobs.Find(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if !ok {
		return fail(c, job.ErrNotFound)
	}
	return presenter.JSON(c, http.StatusOK, j)
}

// Candidates lists the applicants of one job.
// @Summary Job candidates
// @Tags    jobs
// @Produce json
// @Param   id     path  string true  "job id"
// @Param   search query string false "matches name and email"
// @Param   status query string false "candidate status or all"
// @Security BearerAuth
// @Success 200 {array} candidate.Candidate
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id}/candidates [get]
func (h *JobHandler) Candidates(c *fiber.Ctx) error {
	if _, err := authorized(c, h.registry); err != nil {
		return fail(c, err)
	}
	id := c.Params("id")
	if _, ok, err := h.catalog.Jobs.Find(c.Context(), id); err != nil {
		return fail(c, err)
	} else if !ok {
		return fail(c, job.ErrNotFound)
	}
	cands, err := h.catalog.Candidates.ForJob(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, candidate.Filter(cands, filter.Query{Search: c.Query("search"), Status: c.Query("status")}))
}
