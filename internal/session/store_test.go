package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internhub/internal/portal"
)

func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Load(ctx)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = store.LoadList(ctx, "programs")
	require.ErrorIs(t, err, ErrNotFound)

	sess := Session{Token: "tok", Role: portal.RoleStudent, UserID: "u-1", Email: "ana@uni.test"}
	require.NoError(t, store.Save(ctx, sess))
	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sess, loaded)

	require.NoError(t, store.SaveList(ctx, "programs", []byte(`[{"id":"p1"}]`)))
	list, err := store.LoadList(ctx, "programs")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"p1"}]`, string(list))

	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.LoadList(ctx, "programs")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	exerciseStore(t, NewFileStore(path))
}

func TestFileStorePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)
	require.NoError(t, store.Save(context.Background(), Session{Token: "tok"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStoreRejectsInvalidList(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	assert.Error(t, store.SaveList(context.Background(), "programs", []byte("{oops")))
}

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, "test:", time.Hour), mr
}

func TestRedisStore(t *testing.T) {
	store, _ := newTestRedisStore(t)
	exerciseStore(t, store)
}

func TestRedisStoreKeysAndTTL(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, Session{Token: "tok"}))
	require.NoError(t, store.SaveList(ctx, "mentors", []byte(`[]`)))

	assert.True(t, mr.Exists("test:session"))
	assert.True(t, mr.Exists("test:list:mentors"))
	assert.Equal(t, time.Hour, mr.TTL("test:session"))

	mr.FastForward(2 * time.Hour)
	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpenRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := OpenRedis(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	defer client.Close()

	_, err = OpenRedis(context.Background(), "://bad")
	assert.Error(t, err)
}

func TestRedisStoreClearOnlyTouchesOwnPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	store := NewRedisStore(client, "app[1]:", time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, Session{Token: "tok"}))
	for i := 0; i < 250; i++ {
		require.NoError(t, store.SaveList(ctx, fmt.Sprintf("page-%d", i), []byte(`[]`)))
	}
	require.NoError(t, mr.Set("app1:list:other", "keep"))

	require.NoError(t, store.Clear(ctx))

	assert.False(t, mr.Exists("app[1]:session"))
	assert.False(t, mr.Exists("app[1]:list:page-0"))
	assert.False(t, mr.Exists("app[1]:list:page-249"))
	assert.True(t, mr.Exists("app1:list:other"))
}
