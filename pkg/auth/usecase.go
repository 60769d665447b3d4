package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/markbates/goth"
	"github.com/markbates/goth/providers/github"
	"github.com/markbates/goth/providers/google"
	"github.com/markbates/goth/providers/microsoftonline"
)

var (
	ErrUnknownProvider   = errors.New("unknown auth provider")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type Credentials struct {
	Name     string
	Email    string
	Password string
}

// Profile is the identity a social provider hands back in demo mode.
// AuthURL is where a real deployment would send the browser.
type Profile struct {
	Provider Provider `json:"provider"`
	Label    string   `json:"label"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Avatar   string   `json:"avatar"`
	AuthURL  string   `json:"authUrl,omitempty"`
}

type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (goth.User, error)
	AuthenticateWithProvider(ctx context.Context, provider Provider) (goth.User, error)
	Profiles() []Profile
}

type Keys struct {
	ClientID string
	Secret   string
}

type Options struct {
	Delay       time.Duration
	SocialDelay time.Duration
	CallbackURL string
	Google      Keys
	GitHub      Keys
	Microsoft   Keys
}

var mockProfiles = map[Provider]Profile{
	ProviderGoogle: {
		Name:   "John Doe",
		Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
	},
	ProviderGitHub: {
		Name:   "Jane Smith",
		Avatar: "https://images.unsplash.com/photo-1494790108755-2616b612b1c9?w=150&h=150&fit=crop&crop=face",
	},
	ProviderMicrosoft: {
		Name:   "Mike Johnson",
		Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
	},
}

type simulated struct {
	delay       time.Duration
	socialDelay time.Duration
}

// NewSimulated builds the demo authenticator and registers the social
// providers with goth, which is where every provider lookup resolves. No
// OAuth round-trip is made: the provider's identity is the mock profile.
func NewSimulated(opts Options) Authenticator {
	callback := func(p Provider) string { return opts.CallbackURL + "/" + string(p) }

	ms := microsoftonline.New(opts.Microsoft.ClientID, opts.Microsoft.Secret, callback(ProviderMicrosoft))
	ms.SetName(string(ProviderMicrosoft))

	goth.UseProviders(
		google.New(opts.Google.ClientID, opts.Google.Secret, callback(ProviderGoogle), "email", "profile"),
		github.New(opts.GitHub.ClientID, opts.GitHub.Secret, callback(ProviderGitHub), "user:email"),
		ms,
	)
	return &simulated{delay: opts.Delay, socialDelay: opts.SocialDelay}
}

func (s *simulated) Authenticate(ctx context.Context, creds Credentials) (goth.User, error) {
	if err := wait(ctx, s.delay); err != nil {
		return goth.User{}, err
	}
	return goth.User{
		Provider: string(ProviderEmail),
		UserID:   creds.Email,
		Name:     creds.Name,
		Email:    creds.Email,
	}, nil
}

func (s *simulated) AuthenticateWithProvider(ctx context.Context, provider Provider) (goth.User, error) {
	p, err := lookup(provider)
	if err != nil {
		return goth.User{}, err
	}
	if err := wait(ctx, s.socialDelay); err != nil {
		return goth.User{}, err
	}
	prof := profileOf(provider)
	return goth.User{
		Provider:  p.Name(),
		UserID:    prof.Email,
		Name:      prof.Name,
		Email:     prof.Email,
		AvatarURL: prof.Avatar,
	}, nil
}

// Profiles lists the registered social providers in display order.
func (s *simulated) Profiles() []Profile {
	out := make([]Profile, 0, len(SocialProviders))
	for _, p := range SocialProviders {
		gp, err := lookup(p)
		if err != nil {
			continue
		}
		prof := profileOf(p)
		if sess, err := gp.BeginAuth(string(p)); err == nil {
			prof.AuthURL, _ = sess.GetAuthURL()
		}
		out = append(out, prof)
	}
	return out
}

// lookup resolves a provider through the goth registry. Email sign-in is
// never registered there.
func lookup(p Provider) (goth.Provider, error) {
	if p == ProviderEmail {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, p)
	}
	gp, err := goth.GetProvider(string(p))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownProvider, p, err)
	}
	return gp, nil
}

func profileOf(p Provider) Profile {
	prof := mockProfiles[p]
	prof.Provider = p
	prof.Label = p.Label()
	prof.Email = "user@" + string(p) + ".com"
	return prof
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
