// Package session keeps the signed-in user and the onboarding flag of one
// device, persisting both through a kv.Store the way a browser would use
// local storage.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/artem13815/after42/pkg/auth"
	"github.com/artem13815/after42/pkg/kv"
	"github.com/artem13815/after42/pkg/navigation"
)

// Persisted keys.
const (
	KeyCurrentUser     = "currentUser"
	KeyRegisteredUsers = "registeredUsers"
	KeyOnboarding      = "hasCompletedOnboarding"
)

const onboardingDone = "true"

type State struct {
	IsLoggedIn             bool       `json:"isLoggedIn"`
	CurrentUser            *auth.User `json:"currentUser"`
	HasCompletedOnboarding bool       `json:"hasCompletedOnboarding"`
}

// Result is the outcome of a sign-in: who is signed in and where to go next.
type Result struct {
	User auth.User
	Next navigation.Screen
}

type Option func(*Store)

func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

type Store struct {
	kv    kv.Store
	auth  auth.Authenticator
	newID func() string

	mu    sync.Mutex
	state State
}

func New(store kv.Store, authenticator auth.Authenticator, opts ...Option) *Store {
	s := &Store{kv: store, auth: authenticator, newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore loads a previously persisted user. The user is trusted as stored;
// a value that does not decode is dropped and the device starts logged out.
func (s *Store) Restore(ctx context.Context) (navigation.Screen, error) {
	raw, err := s.kv.Get(ctx, KeyCurrentUser)
	if errors.Is(err, kv.ErrNotFound) {
		return navigation.ScreenLogin, nil
	}
	if err != nil {
		return "", fmt.Errorf("load current user: %w", err)
	}

	var u auth.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil || u == (auth.User{}) {
		log.Printf("session: discarding unreadable %s: %v", KeyCurrentUser, err)
		if err := s.kv.Remove(ctx, KeyCurrentUser); err != nil {
			return "", fmt.Errorf("remove current user: %w", err)
		}
		return navigation.ScreenLogin, nil
	}

	done, err := s.persistedOnboarding(ctx)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.state = State{IsLoggedIn: true, CurrentUser: &u, HasCompletedOnboarding: done}
	s.mu.Unlock()

	if done {
		return navigation.ScreenDashboard, nil
	}
	return navigation.ScreenOnboarding, nil
}

// Login signs in a registered user with a matching email, or a demo user
// derived from the email when none matches. The password is not checked.
func (s *Store) Login(ctx context.Context, email, password string) (Result, error) {
	identity, err := s.auth.Authenticate(ctx, auth.Credentials{Email: email, Password: password})
	if err != nil {
		return Result{}, fmt.Errorf("authenticate: %w", err)
	}

	users, err := s.registered(ctx)
	if err != nil {
		return Result{}, err
	}
	user, ok := findByEmail(users, identity.Email)
	if !ok {
		user = auth.User{
			ID:           s.newID(),
			Name:         demoName(identity.Email),
			Email:        identity.Email,
			Role:         auth.DefaultRole,
			AuthProvider: auth.Provider(identity.Provider),
		}
	}
	return s.signIn(ctx, user)
}

// SignUp registers a new email user and always routes to onboarding.
func (s *Store) SignUp(ctx context.Context, name, email, password string) (Result, error) {
	identity, err := s.auth.Authenticate(ctx, auth.Credentials{Name: name, Email: email, Password: password})
	if err != nil {
		return Result{}, fmt.Errorf("authenticate: %w", err)
	}

	users, err := s.registered(ctx)
	if err != nil {
		return Result{}, err
	}
	if _, exists := findByEmail(users, identity.Email); exists {
		return Result{}, auth.ErrUserAlreadyExists
	}

	user := auth.User{
		ID:           s.newID(),
		Name:         identity.Name,
		Email:        identity.Email,
		Role:         auth.DefaultRole,
		AuthProvider: auth.Provider(identity.Provider),
	}
	buf, err := json.Marshal(append(users, user))
	if err != nil {
		return Result{}, err
	}
	if err := s.kv.Set(ctx, KeyRegisteredUsers, string(buf)); err != nil {
		return Result{}, fmt.Errorf("save registered users: %w", err)
	}
	if err := s.setCurrent(ctx, user); err != nil {
		return Result{}, err
	}
	return Result{User: user, Next: navigation.ScreenOnboarding}, nil
}

// SocialLogin signs in through a social provider. Fields set on partial take
// precedence over the provider profile.
func (s *Store) SocialLogin(ctx context.Context, provider auth.Provider, partial auth.User) (Result, error) {
	if !provider.Social() {
		return Result{}, fmt.Errorf("%w: %q", auth.ErrUnknownProvider, provider)
	}
	profile, err := s.auth.AuthenticateWithProvider(ctx, provider)
	if err != nil {
		return Result{}, fmt.Errorf("authenticate with %s: %w", provider, err)
	}

	user := auth.User{
		ID:           s.newID(),
		Name:         firstNonEmpty(partial.Name, profile.Name, "User"),
		Email:        firstNonEmpty(partial.Email, profile.Email, "user@"+string(provider)+".com"),
		Avatar:       firstNonEmpty(partial.Avatar, profile.AvatarURL),
		Role:         auth.DefaultRole,
		AuthProvider: auth.Provider(profile.Provider),
	}
	return s.signIn(ctx, user)
}

func (s *Store) CompleteOnboarding(ctx context.Context) (navigation.Screen, error) {
	if err := s.kv.Set(ctx, KeyOnboarding, onboardingDone); err != nil {
		return "", fmt.Errorf("save onboarding flag: %w", err)
	}
	s.mu.Lock()
	s.state.HasCompletedOnboarding = true
	s.mu.Unlock()
	return navigation.ScreenDashboard, nil
}

// Logout forgets the current user. The onboarding flag survives.
func (s *Store) Logout(ctx context.Context) (navigation.Screen, error) {
	s.mu.Lock()
	s.state.IsLoggedIn = false
	s.state.CurrentUser = nil
	s.mu.Unlock()

	if err := s.kv.Remove(ctx, KeyCurrentUser); err != nil {
		return "", fmt.Errorf("remove current user: %w", err)
	}
	return navigation.ScreenLogin, nil
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	if st.CurrentUser != nil {
		u := *st.CurrentUser
		st.CurrentUser = &u
	}
	return st
}

func (s *Store) signIn(ctx context.Context, user auth.User) (Result, error) {
	if err := s.setCurrent(ctx, user); err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	done := s.state.HasCompletedOnboarding
	s.mu.Unlock()
	if !done {
		var err error
		if done, err = s.persistedOnboarding(ctx); err != nil {
			return Result{}, err
		}
	}
	if !done {
		return Result{User: user, Next: navigation.ScreenOnboarding}, nil
	}

	s.mu.Lock()
	s.state.HasCompletedOnboarding = true
	s.mu.Unlock()
	return Result{User: user, Next: navigation.ScreenDashboard}, nil
}

func (s *Store) setCurrent(ctx context.Context, user auth.User) error {
	buf, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, KeyCurrentUser, string(buf)); err != nil {
		return fmt.Errorf("save current user: %w", err)
	}
	s.mu.Lock()
	s.state.IsLoggedIn = true
	s.state.CurrentUser = &user
	s.mu.Unlock()
	return nil
}

func (s *Store) persistedOnboarding(ctx context.Context) (bool, error) {
	v, err := s.kv.Get(ctx, KeyOnboarding)
	if errors.Is(err, kv.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load onboarding flag: %w", err)
	}
	return v == onboardingDone, nil
}

// registered returns the registry of signed-up users. A corrupt registry
// reads as empty.
func (s *Store) registered(ctx context.Context) ([]auth.User, error) {
	raw, err := s.kv.Get(ctx, KeyRegisteredUsers)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load registered users: %w", err)
	}
	var users []auth.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		log.Printf("session: ignoring unreadable %s: %v", KeyRegisteredUsers, err)
		return nil, nil
	}
	return users, nil
}

func findByEmail(users []auth.User, email string) (auth.User, bool) {
	for _, u := range users {
		if u.Email == email {
			return u, true
		}
	}
	return auth.User{}, false
}

func demoName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return "Demo User"
	}
	return local
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
