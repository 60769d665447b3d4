package auth

import (
	"context"
	"testing"
	"time"

	"github.com/markbates/goth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSocialProvider(t *testing.T) {
	NewSimulated(Options{})

	p, err := ParseSocialProvider(" GitHub ")
	require.NoError(t, err)
	assert.Equal(t, ProviderGitHub, p)

	for _, bad := range []string{"email", "facebook", ""} {
		_, err := ParseSocialProvider(bad)
		assert.ErrorIs(t, err, ErrUnknownProvider, bad)
	}
}

func TestProviderLabel(t *testing.T) {
	assert.Equal(t, "Google", ProviderGoogle.Label())
	assert.Equal(t, "GitHub", ProviderGitHub.Label())
	assert.Equal(t, "Microsoft", ProviderMicrosoft.Label())
	assert.Equal(t, "Email", ProviderEmail.Label())
	assert.Equal(t, "Email", Provider("").Label())
}

func TestAuthenticateWithProviderReturnsMockProfile(t *testing.T) {
	a := NewSimulated(Options{CallbackURL: "http://localhost/cb"})

	tests := []struct {
		provider Provider
		name     string
	}{
		{ProviderGoogle, "John Doe"},
		{ProviderGitHub, "Jane Smith"},
		{ProviderMicrosoft, "Mike Johnson"},
	}
	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			u, err := a.AuthenticateWithProvider(context.Background(), tt.provider)
			require.NoError(t, err)
			assert.Equal(t, string(tt.provider), u.Provider)
			assert.Equal(t, tt.name, u.Name)
			assert.Equal(t, "user@"+string(tt.provider)+".com", u.Email)
			assert.NotEmpty(t, u.AvatarURL)
		})
	}
}

func TestAuthenticateWithProviderRejectsUnknown(t *testing.T) {
	a := NewSimulated(Options{})
	_, err := a.AuthenticateWithProvider(context.Background(), ProviderEmail)
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestDelayHonoursCancellation(t *testing.T) {
	a := NewSimulated(Options{Delay: time.Hour, SocialDelay: time.Hour})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := a.Authenticate(ctx, Credentials{Email: "a@b.c"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)

	_, err = a.AuthenticateWithProvider(ctx, ProviderGoogle)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAuthenticateWaitsForDelay(t *testing.T) {
	a := NewSimulated(Options{Delay: 20 * time.Millisecond})
	start := time.Now()
	u, err := a.Authenticate(context.Background(), Credentials{Name: "Ann", Email: "ann@x.io"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, "email", u.Provider)
	assert.Equal(t, "ann@x.io", u.Email)
}

func TestProfilesInDisplayOrder(t *testing.T) {
	profiles := NewSimulated(Options{}).Profiles()
	require.Len(t, profiles, 3)
	assert.Equal(t, ProviderGoogle, profiles[0].Provider)
	assert.Equal(t, "GitHub", profiles[1].Label)
	assert.Equal(t, "user@microsoft.com", profiles[2].Email)
}

func TestProvidersResolveThroughGoth(t *testing.T) {
	NewSimulated(Options{CallbackURL: "http://localhost/cb", Microsoft: Keys{ClientID: "ms-client"}})

	for _, p := range SocialProviders {
		gp, err := goth.GetProvider(string(p))
		require.NoError(t, err, p)
		assert.Equal(t, string(p), gp.Name())
	}
	_, err := goth.GetProvider(string(ProviderEmail))
	assert.Error(t, err)

	profiles := NewSimulated(Options{CallbackURL: "http://localhost/cb", Microsoft: Keys{ClientID: "ms-client"}}).Profiles()
	require.Len(t, profiles, 3)
	assert.Contains(t, profiles[2].AuthURL, "client_id=ms-client")
	assert.Contains(t, profiles[2].AuthURL, "localhost%2Fcb%2Fmicrosoft")
}

func TestUnregisteredProviderIsUnknown(t *testing.T) {
	a := NewSimulated(Options{})
	goth.ClearProviders()
	t.Cleanup(func() { NewSimulated(Options{}) })

	assert.False(t, ProviderGoogle.Social())
	_, err := ParseSocialProvider("google")
	assert.ErrorIs(t, err, ErrUnknownProvider)
	_, err = a.AuthenticateWithProvider(context.Background(), ProviderGoogle)
	assert.ErrorIs(t, err, ErrUnknownProvider)
	assert.Empty(t, a.Profiles())
}
