package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/after42/api/http/presenter"
	"github.com/artem13815/after42/pkg/auth"
	"github.com/artem13815/after42/pkg/candidate"
	"github.com/artem13815/after42/pkg/job"
	"github.com/artem13815/after42/pkg/navigation"
	"github.com/artem13815/after42/pkg/screen"
	"github.com/artem13815/after42/pkg/security/jwt"
	"github.com/artem13815/after42/pkg/workspace"
)

// fail maps domain errors onto HTTP statuses. Anything unknown is logged
// and reported as 500 without details.
func fail(c *fiber.Ctx, err error) error {
	var verr job.ErrValidation
	switch {
	case errors.As(err, &verr):
		return presenter.Error(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, navigation.ErrInvalidScreen),
		errors.Is(err, screen.ErrInvalidOption),
		errors.Is(err, candidate.ErrInvalidStatus),
		errors.Is(err, auth.ErrUnknownProvider):
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, errMissingDevice):
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, workspace.ErrNotLoggedIn):
		return presenter.ErrorCode(c, http.StatusUnauthorized, "not_logged_in", err.Error())
	case errors.Is(err, workspace.ErrOnboardingRequired):
		return presenter.ErrorCode(c, http.StatusForbidden, "onboarding_required", err.Error())
	case errors.Is(err, workspace.ErrAlreadyLoggedIn):
		return presenter.ErrorCode(c, http.StatusConflict, "already_logged_in", err.Error())
	case errors.Is(err, auth.ErrUserAlreadyExists):
		return presenter.ErrorCode(c, http.StatusConflict, "user_exists", err.Error())
	case errors.Is(err, job.ErrNotFound),
		errors.Is(err, candidate.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, candidate.ErrStatusChangeUndecided):
		return presenter.ErrorCode(c, http.StatusNotImplemented, "status_change_undecided", err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return presenter.Error(c, http.StatusRequestTimeout, "request cancelled")
	}
	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return presenter.Error(c, http.StatusInternalServerError, "internal error")
}

// current resolves the calling device's workspace.
func current(c *fiber.Ctx, reg *workspace.Registry) (*workspace.Workspace, error) {
	id, _ := c.Locals(jwt.DeviceKey).(string)
	if id == "" {
		return nil, errMissingDevice
	}
	return reg.Get(c.Context(), id)
}

var errMissingDevice = errors.New("device not identified")

// authorized is current plus the in-app gate, for the read endpoints.
func authorized(c *fiber.Ctx, reg *workspace.Registry) (*workspace.Workspace, error) {
	w, err := current(c, reg)
	if err != nil {
		return nil, err
	}
	if err := w.Authorize(); err != nil {
		return nil, err
	}
	return w, nil
}
