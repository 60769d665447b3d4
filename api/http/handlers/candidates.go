package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/after42/api/http/presenter"
	"github.com/artem13815/after42/pkg/candidate"
	"github.com/artem13815/after42/pkg/workspace"
)

type CandidateHandler struct {
	registry *workspace.Registry
	catalog  workspace.Catalog
}

func NewCandidateHandler(registry *workspace.Registry, catalog workspace.Catalog) *CandidateHandler {
	return &CandidateHandler{registry: registry, catalog: catalog}
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

// @Summary Get candidate by ID
// @Tags    candidates
// @Produce json
// @Param   id path string true "candidate id"
// @Security BearerAuth
// @Success 200 {object} candidate.Candidate
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /candidates/{id} [get]
func (h *CandidateHandler) GetByID(c *fiber.Ctx) error {
	if _, err := authorized(c, h.registry); err != nil {
		return fail(c, err)
	}
	cand, ok, err := h.catalog.Candidates.Find(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if !ok {
		return fail(c, candidate.ErrNotFound)
	}
	return presenter.JSON(c, http.StatusOK, cand)
}

// ChangeStatus validates the requested status. Transitions are not defined
// yet, so a valid request answers 501 and changes nothing.
// @Summary Change candidate status
// @Tags    candidates
// @Accept  json
// @Produce json
// @Param   id    path string true "candidate id"
// @Param   input body changeStatusRequest true "new status"
// @Security BearerAuth
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 501 {object} presenter.ErrorResponse
// @Router  /candidates/{id}/status [put]
func (h *CandidateHandler) ChangeStatus(c *fiber.Ctx) error {
	var req changeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	w, err := current(c, h.registry)
	if err != nil {
		return fail(c, err)
	}
	if err := w.ChangeCandidateStatus(c.Context(), c.Params("id"), candidate.Status(req.Status)); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
