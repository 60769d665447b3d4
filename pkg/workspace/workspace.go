// Package workspace is the per-device application state: one session, one
// navigation controller and the shared job and candidate collections. Every
// mutation goes through an action method, and actions of one workspace run
// one at a time.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/artem13815/after42/pkg/auth"
	"github.com/artem13815/after42/pkg/candidate"
	"github.com/artem13815/after42/pkg/job"
	"github.com/artem13815/after42/pkg/navigation"
	"github.com/artem13815/after42/pkg/session"
)

var (
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrOnboardingRequired = errors.New("onboarding not completed")
	ErrAlreadyLoggedIn    = errors.New("already logged in")
)

// Catalog is the domain data shared by every workspace.
type Catalog struct {
	Jobs       job.UseCase
	Candidates candidate.UseCase
}

type Snapshot struct {
	Session    session.State    `json:"session"`
	Navigation navigation.State `json:"navigation"`
}

type Workspace struct {
	mu      sync.Mutex
	session *session.Store
	nav     *navigation.Controller
	catalog Catalog
}

func New(sess *session.Store, catalog Catalog) *Workspace {
	return &Workspace{session: sess, nav: navigation.NewController(), catalog: catalog}
}

// Restore is the startup check: a persisted user skips the login screen.
func (w *Workspace) Restore(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	next, err := w.session.Restore(ctx)
	if err != nil {
		return err
	}
	w.nav.Reset(next)
	return nil
}

func (w *Workspace) Login(ctx context.Context, email, password string) (Snapshot, error) {
	return w.signIn(func() (session.Result, error) { return w.session.Login(ctx, email, password) })
}

func (w *Workspace) SignUp(ctx context.Context, name, email, password string) (Snapshot, error) {
	return w.signIn(func() (session.Result, error) { return w.session.SignUp(ctx, name, email, password) })
}

func (w *Workspace) SocialLogin(ctx context.Context, provider auth.Provider, partial auth.User) (Snapshot, error) {
	return w.signIn(func() (session.Result, error) { return w.session.SocialLogin(ctx, provider, partial) })
}

func (w *Workspace) signIn(do func() (session.Result, error)) (Snapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.session.State().IsLoggedIn {
		return Snapshot{}, ErrAlreadyLoggedIn
	}
	res, err := do()
	if err != nil {
		return Snapshot{}, err
	}
	w.nav.Reset(res.Next)
	return w.snapshot(), nil
}

func (w *Workspace) CompleteOnboarding(ctx context.Context) (Snapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.session.State().IsLoggedIn {
		return Snapshot{}, ErrNotLoggedIn
	}
	next, err := w.session.CompleteOnboarding(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	w.nav.Reset(next)
	return w.snapshot(), nil
}

func (w *Workspace) Logout(ctx context.Context) (Snapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	next, err := w.session.Logout(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	w.nav.Reset(next)
	return w.snapshot(), nil
}

// Navigate moves to t.Screen if the session allows it. Logged out, only
// login is reachable; before onboarding, only onboarding; once in the app,
// login is left through Logout.
func (w *Workspace) Navigate(_ context.Context, t navigation.Target) (Snapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.reachable(t.Screen); err != nil {
		return Snapshot{}, err
	}
	w.nav.Navigate(t)
	return w.snapshot(), nil
}

// AddJob appends a job and returns to the dashboard.
func (w *Workspace) AddJob(ctx context.Context, d job.Draft) (job.Job, Snapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.inApp(); err != nil {
		return job.Job{}, Snapshot{}, err
	}
	created, err := w.catalog.Jobs.Add(ctx, d)
	if err != nil {
		return job.Job{}, Snapshot{}, err
	}
	w.nav.Reset(navigation.ScreenDashboard)
	return created, w.snapshot(), nil
}

func (w *Workspace) ChangeCandidateStatus(ctx context.Context, id string, status candidate.Status) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.inApp(); err != nil {
		return err
	}
	return w.catalog.Candidates.ChangeStatus(ctx, id, status)
}

func (w *Workspace) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot()
}

// Authorize reports whether the app screens (and the data behind them) are
// reachable right now.
func (w *Workspace) Authorize() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inApp()
}

// Current returns the snapshot with the render guards applied: the screen
// is the one a client should actually show.
func (w *Workspace) Current(ctx context.Context) (Snapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	snap := w.snapshot()
	switch {
	case !snap.Session.IsLoggedIn:
		snap.Navigation.CurrentScreen = navigation.ScreenLogin
		return snap, nil
	case snap.Navigation.CurrentScreen == navigation.ScreenOnboarding:
		return snap, nil
	}
	l := &lookup{ctx: ctx, catalog: w.catalog}
	snap.Navigation = navigation.Resolve(snap.Navigation, l)
	if l.err != nil {
		return Snapshot{}, l.err
	}
	return snap, nil
}

func (w *Workspace) snapshot() Snapshot {
	return Snapshot{Session: w.session.State(), Navigation: w.nav.State()}
}

func (w *Workspace) reachable(screen navigation.Screen) error {
	st := w.session.State()
	switch {
	case !st.IsLoggedIn:
		if screen != navigation.ScreenLogin {
			return ErrNotLoggedIn
		}
	case !st.HasCompletedOnboarding:
		if screen != navigation.ScreenOnboarding {
			return ErrOnboardingRequired
		}
	case screen == navigation.ScreenLogin:
		return ErrAlreadyLoggedIn
	}
	return nil
}

func (w *Workspace) inApp() error {
	st := w.session.State()
	if !st.IsLoggedIn {
		return ErrNotLoggedIn
	}
	if !st.HasCompletedOnboarding {
		return ErrOnboardingRequired
	}
	return nil
}

// lookup adapts the catalog to navigation.Lookup. The first storage error
// is kept and the record treated as missing.
type lookup struct {
	ctx     context.Context
	catalog Catalog
	err     error
}

func (l *lookup) JobExists(id string) bool {
	_, ok, err := l.catalog.Jobs.Find(l.ctx, id)
	return l.keep(ok, err, "find job")
}

func (l *lookup) CandidateExists(id string) bool {
	_, ok, err := l.catalog.Candidates.Find(l.ctx, id)
	return l.keep(ok, err, "find candidate")
}

func (l *lookup) keep(ok bool, err error, what string) bool {
	if err != nil && l.err == nil {
		l.err = fmt.Errorf("%s: %w", what, err)
	}
	return ok
}
