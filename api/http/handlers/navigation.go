package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/after42/api/http/presenter"
	"github.com/artem13815/after42/pkg/navigation"
	"github.com/artem13815/after42/pkg/screen"
	"github.com/artem13815/after42/pkg/workspace"
)

type NavigationHandler struct {
	registry *workspace.Registry
	renderer *screen.Renderer
}

func NewNavigationHandler(registry *workspace.Registry, renderer *screen.Renderer) *NavigationHandler {
	return &NavigationHandler{registry: registry, renderer: renderer}
}

type navigateRequest struct {
	Screen      string `json:"screen"`
	JobID       string `json:"jobId"`
	CandidateID string `json:"candidateId"`
}

// Navigate switches the current screen. Omitted ids keep the previous
// selection.
// @Summary Navigate
// @Tags    navigation
// @Accept  json
// @Produce json
// @Param   input body navigateRequest true "target screen"
// @Security BearerAuth
// @Success 200 {object} workspace.Snapshot
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /navigate [post]
func (h *NavigationHandler) Navigate(c *fiber.Ctx) error {
	var req navigateRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	sc, err := navigation.ParseScreen(req.Screen)
	if err != nil {
		return fail(c, err)
	}
	w, err := current(c, h.registry)
	if err != nil {
		return fail(c, err)
	}
	snap, err := w.Navigate(c.Context(), navigation.Target{Screen: sc, JobID: req.JobID, CandidateID: req.CandidateID})
	if err != nil {
		return fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, snap)
}

// Screen renders whatever the device should show right now.
// @Summary Current screen
// @Tags    navigation
// @Produce json
// @Param   search     query string false "search box"
// @Param   status     query string false "status select, all by default"
// @Param   department query string false "team department select"
// @Param   period     query string false "reports period"
// @Param   metric     query string false "analytics metric"
// @Security BearerAuth
// @Success 200 {object} screen.View
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /screen [get]
func (h *NavigationHandler) Screen(c *fiber.Ctx) error {
	w, err := current(c, h.registry)
	if err != nil {
		return fail(c, err)
	}
	v, err := h.renderer.Render(c.Context(), w, screen.Params{
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		Department: c.Query("department"),
		Period:     c.Query("period"),
		Metric:     c.Query("metric"),
	})
	if err != nil {
		return fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, v)
}
