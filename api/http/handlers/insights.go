package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/after42/api/http/presenter"
	"github.com/artem13815/after42/pkg/insights"
	"github.com/artem13815/after42/pkg/workspace"
)

type InsightsHandler struct {
	registry *workspace.Registry
	uc       insights.UseCase
}

func NewInsightsHandler(registry *workspace.Registry, uc insights.UseCase) *InsightsHandler {
	return &InsightsHandler{registry: registry, uc: uc}
}

// @Summary Dashboard figures
// @Tags    insights
// @Produce json
// @Security BearerAuth
// @Success 200 {object} insights.DashboardView
// @Router  /insights/dashboard [get]
func (h *InsightsHandler) Dashboard(c *fiber.Ctx) error {
	if _, err := authorized(c, h.registry); err != nil {
		return fail(c, err)
	}
	v, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, v)
}

// @Summary Reports figures
// @Tags    insights
// @Produce json
// @Security BearerAuth
// @Success 200 {object} insights.ReportsView
// @Router  /insights/reports [get]
func (h *InsightsHandler) Reports(c *fiber.Ctx) error {
	if _, err := authorized(c, h.registry); err != nil {
		return fail(c, err)
	}
	v, err := h.uc.Reports(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, v)
}

// @Summary Analytics figures
// @Tags    insights
// @Produce json
// @Security BearerAuth
// @Success 200 {object} insights.AnalyticsView
// @Router  /insights/analytics [get]
func (h *InsightsHandler) Analytics(c *fiber.Ctx) error {
	if _, err := authorized(c, h.registry); err != nil {
		return fail(c, err)
	}
	v, err := h.uc.Analytics(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, v)
}
