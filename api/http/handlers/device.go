package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/after42/api/http/presenter"
	"github.com/artem13815/after42/pkg/workspace"
)

type TokenGenerator interface {
	Generate(ctx context.Context, deviceID string) (string, error)
}

type DeviceHandler struct {
	registry *workspace.Registry
	tokens   TokenGenerator
}

func NewDeviceHandler(registry *workspace.Registry, tokens TokenGenerator) *DeviceHandler {
	return &DeviceHandler{registry: registry, tokens: tokens}
}

type deviceResponse struct {
	DeviceID string             `json:"deviceId"`
	Token    string             `json:"token"`
	State    workspace.Snapshot `json:"state"`
}

// Register issues a device id and its token. A device is one client of the
// service, like one browser of the dashboard.
// @Summary Register device
// @Tags    devices
// @Produce json
// @Success 201 {object} deviceResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /devices [post]
func (h *DeviceHandler) Register(c *fiber.Ctx) error {
	id := uuid.NewString()
	token, err := h.tokens.Generate(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	w, err := h.registry.Get(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, deviceResponse{DeviceID: id, Token: token, State: w.Snapshot()})
}
