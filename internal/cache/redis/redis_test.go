package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisDefinitionCache, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	c, err := NewRedisDefinitionCache(context.Background(), srv.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c, srv
}

func TestRedisDefinitionCache_MissThenHit(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	data, ok, err := c.GetDefinition(ctx, "hello")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)

	require.NoError(t, c.SetDefinition(ctx, "hello", []byte(`{"word":"hello"}`), time.Minute))
	assert.True(t, srv.Exists("dictionary:{hello}"))

	data, ok, err = c.GetDefinition(ctx, "hello")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"word":"hello"}`, string(data))
}

func TestRedisDefinitionCache_Expires(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetDefinition(ctx, "hello", []byte("x"), time.Minute))
	srv.FastForward(2 * time.Minute)

	_, ok, err := c.GetDefinition(ctx, "hello")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisDefinitionCache_ServerErrors(t *testing.T) {
	c, srv := newTestCache(t)
	srv.SetError("ERR simulated failure")

	_, ok, err := c.GetDefinition(context.Background(), "hello")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNewRedisDefinitionCache_UnreachableServer(t *testing.T) {
	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()

	c, err := NewRedisDefinitionCache(context.Background(), addr)
	assert.Error(t, err)
	assert.Nil(t, c)
}
