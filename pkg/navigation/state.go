package navigation

import "sync"

// State is the navigation part of the application state.
type State struct {
	CurrentScreen       Screen  `json:"currentScreen"`
	SelectedJobID       *string `json:"selectedJobId"`
	SelectedCandidateID *string `json:"selectedCandidateId"`
}

// Initial is the state of a fresh client.
func Initial() State {
	return State{CurrentScreen: ScreenLogin}
}

// Target describes a navigate intent. Empty ids leave the current
// selection untouched.
type Target struct {
	Screen      Screen
	JobID       string
	CandidateID string
}

// Navigate sets the current screen unconditionally. Selection is sticky:
// ids are only replaced when the target carries them.
func Navigate(s State, t Target) State {
	next := s
	next.CurrentScreen = t.Screen
	if t.JobID != "" {
		id := t.JobID
		next.SelectedJobID = &id
	}
	if t.CandidateID != "" {
		id := t.CandidateID
		next.SelectedCandidateID = &id
	}
	return next
}

// Lookup answers whether selected records still exist.
type Lookup interface {
	JobExists(id string) bool
	CandidateExists(id string) bool
}

// Resolve applies the render guards. A candidates screen without a
// resolvable job, or a profile without a resolvable candidate, falls back
// to the dashboard.
func Resolve(s State, l Lookup) State {
	switch s.CurrentScreen {
	case ScreenCandidates:
		if s.SelectedJobID == nil || !l.JobExists(*s.SelectedJobID) {
			s.CurrentScreen = ScreenDashboard
		}
	case ScreenCandidateProfile:
		if s.SelectedCandidateID == nil || !l.CandidateExists(*s.SelectedCandidateID) {
			s.CurrentScreen = ScreenDashboard
		}
	}
	return s
}

// Controller owns a State and serializes transitions on it.
type Controller struct {
	mu    sync.Mutex
	state State
}

func NewController() *Controller {
	return &Controller{state: Initial()}
}

func (c *Controller) Navigate(t Target) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Navigate(c.state, t)
	return c.state
}

// Reset moves to screen without touching the selection.
func (c *Controller) Reset(screen Screen) State {
	return c.Navigate(Target{Screen: screen})
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
