package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/after42/api/http/presenter"
	"github.com/artem13815/after42/pkg/team"
	"github.com/artem13815/after42/pkg/workspace"
)

type TeamHandler struct {
	registry *workspace.Registry
	members  team.Repository
}

func NewTeamHandler(registry *workspace.Registry, members team.Repository) *TeamHandler {
	return &TeamHandler{registry: registry, members: members}
}

type teamResponse struct {
	Totals team.Totals  `json:"totals"`
	Groups []team.Group `json:"groups"`
}

// @Summary Team members by department
// @Tags    team
// @Produce json
// @Param   search     query string false "matches name, email and role"
// @Param   department query string false "department or all"
// @Security BearerAuth
// @Success 200 {object} teamResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /team [get]
func (h *TeamHandler) List(c *fiber.Ctx) error {
	if _, err := authorized(c, h.registry); err != nil {
		return fail(c, err)
	}
	members, err := h.members.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	q := team.Query{Search: c.Query("search"), Department: c.Query("department")}
	return presenter.JSON(c, http.StatusOK, teamResponse{
		Totals: team.Summarize(members),
		Groups: team.Groups(members, q),
	})
}
