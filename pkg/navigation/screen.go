package navigation

import (
	"errors"
	"fmt"
)

// Screen is one of the fixed dashboard views.
type Screen string

const (
	ScreenLogin            Screen = "login"
	ScreenOnboarding       Screen = "onboarding"
	ScreenDashboard        Screen = "dashboard"
	ScreenCandidates       Screen = "candidates"
	ScreenCandidateProfile Screen = "candidate-profile"
	ScreenAddJob           Screen = "add-job"
	ScreenSettings         Screen = "settings"
	ScreenReports          Screen = "reports"
	ScreenAnalytics        Screen = "analytics"
	ScreenTeam             Screen = "team"
)

// ErrInvalidScreen is returned for names outside the closed screen set.
var ErrInvalidScreen = errors.New("invalid screen")

// Screens lists every screen in sidebar order.
var Screens = []Screen{
	ScreenLogin,
	ScreenOnboarding,
	ScreenDashboard,
	ScreenCandidates,
	ScreenCandidateProfile,
	ScreenAddJob,
	ScreenSettings,
	ScreenReports,
	ScreenAnalytics,
	ScreenTeam,
}

func ParseScreen(s string) (Screen, error) {
	for _, sc := range Screens {
		if string(sc) == s {
			return sc, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidScreen, s)
}

// InApp reports whether the screen lives inside the authenticated shell
// (sidebar + main area), i.e. everything except login and onboarding.
func (s Screen) InApp() bool {
	return s != ScreenLogin && s != ScreenOnboarding
}
