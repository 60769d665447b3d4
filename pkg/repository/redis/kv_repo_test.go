package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/after42/pkg/kv"
)

func newRepo(t *testing.T) (*KVRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewKVRepository(client), mr
}

func TestGetMissingIsNotFound(t *testing.T) {
	repo, _ := newRepo(t)
	_, err := repo.Get(context.Background(), "currentUser")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestSetGetRemove(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRepo(t)

	require.NoError(t, repo.Set(ctx, "hasCompletedOnboarding", "true"))
	v, err := repo.Get(ctx, "hasCompletedOnboarding")
	require.NoError(t, err)
	assert.Equal(t, "true", v)
	assert.Zero(t, mr.TTL("hasCompletedOnboarding"))

	require.NoError(t, repo.Set(ctx, "hasCompletedOnboarding", "false"))
	v, err = repo.Get(ctx, "hasCompletedOnboarding")
	require.NoError(t, err)
	assert.Equal(t, "false", v)

	require.NoError(t, repo.Remove(ctx, "hasCompletedOnboarding"))
	_, err = repo.Get(ctx, "hasCompletedOnboarding")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	assert.NoError(t, repo.Remove(ctx, "hasCompletedOnboarding"))
}

func TestDeviceNamespaceKeys(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRepo(t)

	dev := kv.Prefixed(repo, kv.DeviceNamespace("abc"))
	require.NoError(t, dev.Set(ctx, "currentUser", `{"id":"u1"}`))

	raw, err := mr.Get("device:abc:currentUser")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"u1"}`, raw)

	_, err = kv.Prefixed(repo, kv.DeviceNamespace("xyz")).Get(ctx, "currentUser")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestServerErrorsPropagate(t *testing.T) {
	repo, mr := newRepo(t)
	mr.SetError("LOADING")

	_, err := repo.Get(context.Background(), "currentUser")
	require.Error(t, err)
	assert.NotErrorIs(t, err, kv.ErrNotFound)
}
