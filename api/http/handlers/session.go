package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/after42/api/http/presenter"
	"github.com/artem13815/after42/pkg/auth"
	"github.com/artem13815/after42/pkg/workspace"
)

type SessionHandler struct {
	registry *workspace.Registry
}

func NewSessionHandler(registry *workspace.Registry) *SessionHandler {
	return &SessionHandler{registry: registry}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type socialRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// Get returns the device's session and navigation state.
// @Summary Current state
// @Tags    session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} workspace.Snapshot
// @Router  /session [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	w, err := current(c, h.registry)
	if err != nil {
		return fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, w.Snapshot())
}

// Login signs in with email and password. Any password is accepted.
// @Summary Login
// @Tags    session
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Security BearerAuth
// @Success 200 {object} workspace.Snapshot
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /session/login [post]
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and password are required")
	}
	w, err := current(c, h.registry)
	if err != nil {
		return fail(c, err)
	}
	snap, err := w.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, snap)
}

// SignUp registers an email user and signs them in.
// @Summary Sign up
// @Tags    session
// @Accept  json
// @Produce json
// @Param   input body signUpRequest true "sign-up payload"
// @Security BearerAuth
// @Success 201 {object} workspace.Snapshot
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /session/signup [post]
func (h *SessionHandler) SignUp(c *fiber.Ctx) error {
	var req signUpRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "name, email and password are required")
	}
	w, err := current(c, h.registry)
	if err != nil {
		return fail(c, err)
	}
	snap, err := w.SignUp(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, snap)
}

// Social signs in through google, github or microsoft. Body fields are
// optional and override the provider profile.
// @Summary Social login
// @Tags    session
// @Accept  json
// @Produce json
// @Param   provider path string true "google | github | microsoft"
// @Param   input body socialRequest false "profile overrides"
// @Security BearerAuth
// @Success 200 {object} workspace.Snapshot
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /session/social/{provider} [post]
func (h *SessionHandler) Social(c *fiber.Ctx) error {
	provider, err := auth.ParseSocialProvider(c.Params("provider"))
	if err != nil {
		return fail(c, err)
	}
	var req socialRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
		}
	}
	w, err := current(c, h.registry)
	if err != nil {
		return fail(c, err)
	}
	snap, err := w.SocialLogin(c.Context(), provider, auth.User{Name: req.Name, Email: req.Email, Avatar: req.Avatar})
	if err != nil {
		return fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, snap)
}

// CompleteOnboarding marks onboarding done for this device.
// @Summary Complete onboarding
// @Tags    session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} workspace.Snapshot
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /session/onboarding [post]
func (h *SessionHandler) CompleteOnboarding(c *fiber.Ctx) error {
	w, err := current(c, h.registry)
	if err != nil {
		return fail(c, err)
	}
	snap, err := w.CompleteOnboarding(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, snap)
}

// Logout signs out. The onboarding flag is kept.
// @Summary Logout
// @Tags    session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} workspace.Snapshot
// @Router  /session/logout [post]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	w, err := current(c, h.registry)
	if err != nil {
		return fail(c, err)
	}
	snap, err := w.Logout(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, snap)
}
