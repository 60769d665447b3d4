package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/markbates/goth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/after42/pkg/auth"
	"github.com/artem13815/after42/pkg/kv"
	"github.com/artem13815/after42/pkg/navigation"
)

func newStore(t *testing.T, store kv.Store) *Store {
	t.Helper()
	n := 0
	return New(store, auth.NewSimulated(auth.Options{}), WithIDGenerator(func() string {
		n++
		return "u" + string(rune('0'+n))
	}))
}

func TestLoginSynthesizesDemoUser(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	s := newStore(t, mem)

	res, err := s.Login(ctx, "demo@x.com", "anything")
	require.NoError(t, err)

	assert.Equal(t, "demo", res.User.Name)
	assert.Equal(t, "demo@x.com", res.User.Email)
	assert.Equal(t, "HR Manager", res.User.Role)
	assert.Equal(t, auth.ProviderEmail, res.User.AuthProvider)
	assert.Equal(t, navigation.ScreenOnboarding, res.Next)

	st := s.State()
	assert.True(t, st.IsLoggedIn)
	require.NotNil(t, st.CurrentUser)
	assert.Equal(t, res.User, *st.CurrentUser)

	raw, err := mem.Get(ctx, KeyCurrentUser)
	require.NoError(t, err)
	var persisted auth.User
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, res.User, persisted)
}

func TestLoginWithEmptyLocalPartUsesDemoName(t *testing.T) {
	s := newStore(t, kv.NewMemory())
	res, err := s.Login(context.Background(), "@x.com", "")
	require.NoError(t, err)
	assert.Equal(t, "Demo User", res.User.Name)
}

func TestLoginGoesToDashboardWhenOnboardingPersisted(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	require.NoError(t, mem.Set(ctx, KeyOnboarding, "true"))
	s := newStore(t, mem)

	res, err := s.Login(ctx, "demo@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, navigation.ScreenDashboard, res.Next)
	assert.True(t, s.State().HasCompletedOnboarding)
}

func TestSignUpThenLoginFindsRegisteredUser(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, kv.NewMemory())

	signed, err := s.SignUp(ctx, "Ada Lovelace", "ada@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, navigation.ScreenOnboarding, signed.Next)

	_, err = s.Logout(ctx)
	require.NoError(t, err)

	res, err := s.Login(ctx, "ada@x.com", "other")
	require.NoError(t, err)
	assert.Equal(t, signed.User, res.User)
	assert.Equal(t, "Ada Lovelace", res.User.Name)
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, kv.NewMemory())

	_, err := s.SignUp(ctx, "A", "a@x.com", "pw")
	require.NoError(t, err)
	_, err = s.SignUp(ctx, "B", "a@x.com", "pw")
	assert.ErrorIs(t, err, auth.ErrUserAlreadyExists)
}

func TestSignUpAlwaysRoutesToOnboarding(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	require.NoError(t, mem.Set(ctx, KeyOnboarding, "true"))
	s := newStore(t, mem)

	res, err := s.SignUp(ctx, "A", "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, navigation.ScreenOnboarding, res.Next)
}

func TestLogoutKeepsOnboardingFlag(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	s := newStore(t, mem)

	_, err := s.Login(ctx, "demo@x.com", "pw")
	require.NoError(t, err)
	next, err := s.CompleteOnboarding(ctx)
	require.NoError(t, err)
	assert.Equal(t, navigation.ScreenDashboard, next)

	next, err = s.Logout(ctx)
	require.NoError(t, err)
	assert.Equal(t, navigation.ScreenLogin, next)

	st := s.State()
	assert.False(t, st.IsLoggedIn)
	assert.Nil(t, st.CurrentUser)
	assert.True(t, st.HasCompletedOnboarding)

	_, err = mem.Get(ctx, KeyCurrentUser)
	assert.ErrorIs(t, err, kv.ErrNotFound)
	flag, err := mem.Get(ctx, KeyOnboarding)
	require.NoError(t, err)
	assert.Equal(t, "true", flag)

	res, err := s.Login(ctx, "someone@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, navigation.ScreenDashboard, res.Next)
}

func TestSocialLogin(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, kv.NewMemory())

	res, err := s.SocialLogin(ctx, auth.ProviderGitHub, auth.User{})
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", res.User.Name)
	assert.Equal(t, "user@github.com", res.User.Email)
	assert.NotEmpty(t, res.User.Avatar)
	assert.Equal(t, auth.ProviderGitHub, res.User.AuthProvider)
	assert.Equal(t, "HR Manager", res.User.Role)
	assert.Equal(t, navigation.ScreenOnboarding, res.Next)

	res, err = s.SocialLogin(ctx, auth.ProviderGoogle, auth.User{Name: "Override"})
	require.NoError(t, err)
	assert.Equal(t, "Override", res.User.Name)
	assert.Equal(t, "user@google.com", res.User.Email)
}

func TestSocialLoginRejectsUnknownProvider(t *testing.T) {
	s := newStore(t, kv.NewMemory())
	_, err := s.SocialLogin(context.Background(), "facebook", auth.User{})
	assert.ErrorIs(t, err, auth.ErrUnknownProvider)
	assert.False(t, s.State().IsLoggedIn)
}

func TestRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing persisted", func(t *testing.T) {
		s := newStore(t, kv.NewMemory())
		next, err := s.Restore(ctx)
		require.NoError(t, err)
		assert.Equal(t, navigation.ScreenLogin, next)
		assert.False(t, s.State().IsLoggedIn)
	})

	t.Run("user without onboarding", func(t *testing.T) {
		mem := kv.NewMemory()
		_, err := newStore(t, mem).Login(ctx, "demo@x.com", "pw")
		require.NoError(t, err)

		s := newStore(t, mem)
		next, err := s.Restore(ctx)
		require.NoError(t, err)
		assert.Equal(t, navigation.ScreenOnboarding, next)
		require.NotNil(t, s.State().CurrentUser)
		assert.Equal(t, "demo", s.State().CurrentUser.Name)
	})

	t.Run("user with onboarding", func(t *testing.T) {
		mem := kv.NewMemory()
		prev := newStore(t, mem)
		_, err := prev.Login(ctx, "demo@x.com", "pw")
		require.NoError(t, err)
		_, err = prev.CompleteOnboarding(ctx)
		require.NoError(t, err)

		s := newStore(t, mem)
		next, err := s.Restore(ctx)
		require.NoError(t, err)
		assert.Equal(t, navigation.ScreenDashboard, next)
		assert.True(t, s.State().HasCompletedOnboarding)
	})

	for _, raw := range []string{"{not json", "null", "{}"} {
		t.Run("malformed "+raw, func(t *testing.T) {
			mem := kv.NewMemory()
			require.NoError(t, mem.Set(ctx, KeyCurrentUser, raw))

			s := newStore(t, mem)
			next, err := s.Restore(ctx)
			require.NoError(t, err)
			assert.Equal(t, navigation.ScreenLogin, next)
			assert.False(t, s.State().IsLoggedIn)

			_, err = mem.Get(ctx, KeyCurrentUser)
			assert.ErrorIs(t, err, kv.ErrNotFound)
		})
	}
}

type failingKV struct{ kv.Store }

var errDown = errors.New("kv down")

func (failingKV) Set(context.Context, string, string) error { return errDown }

func TestLoginPropagatesStorageErrors(t *testing.T) {
	s := newStore(t, failingKV{kv.NewMemory()})
	_, err := s.Login(context.Background(), "demo@x.com", "pw")
	assert.ErrorIs(t, err, errDown)
	assert.False(t, s.State().IsLoggedIn)
}

func TestLoginHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := New(kv.NewMemory(), auth.NewSimulated(auth.Options{}))
	_, err := s.Login(ctx, "demo@x.com", "pw")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStateReturnsCopy(t *testing.T) {
	s := newStore(t, kv.NewMemory())
	_, err := s.Login(context.Background(), "demo@x.com", "pw")
	require.NoError(t, err)

	st := s.State()
	st.CurrentUser.Name = "changed"
	assert.Equal(t, "demo", s.State().CurrentUser.Name)
}

// fixedIdentity answers every sign-in with the same provider identity.
type fixedIdentity struct {
	user goth.User
}

func (f fixedIdentity) Authenticate(context.Context, auth.Credentials) (goth.User, error) {
	return f.user, nil
}

func (f fixedIdentity) AuthenticateWithProvider(context.Context, auth.Provider) (goth.User, error) {
	return f.user, nil
}

func (f fixedIdentity) Profiles() []auth.Profile { return nil }

func TestUserIsBuiltFromProviderIdentity(t *testing.T) {
	ctx := context.Background()
	auth.NewSimulated(auth.Options{})

	s := New(kv.NewMemory(), fixedIdentity{user: goth.User{
		Provider:  "microsoft",
		Name:      "Ines Ortega",
		Email:     "ines@corp.example",
		AvatarURL: "https://img.example/ines.png",
	}})

	res, err := s.SocialLogin(ctx, auth.ProviderGoogle, auth.User{})
	require.NoError(t, err)
	assert.Equal(t, auth.ProviderMicrosoft, res.User.AuthProvider)
	assert.Equal(t, "Ines Ortega", res.User.Name)
	assert.Equal(t, "https://img.example/ines.png", res.User.Avatar)

	_, err = s.Logout(ctx)
	require.NoError(t, err)

	res, err = s.SignUp(ctx, "ignored", "ignored@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "ines@corp.example", res.User.Email)
	assert.Equal(t, "Ines Ortega", res.User.Name)
}
