package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	redisc "github.com/shortspace/core/internal/pkg/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Value string `json:"value"`
}

func testClient(t *testing.T) (*redisc.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return redisc.Wrap(goredis.NewClient(&goredis.Options{Addr: mr.Addr()})), mr
}

func TestKey(t *testing.T) {
	assert.Equal(t, "url-analytics:abc", Key(CategoryURLAnalytics, "abc"))
	assert.Equal(t, "url-redirect:xyz", Key(CategoryURLRedirect, "xyz"))
}

func TestGetOrSetComputesAndStores(t *testing.T) {
	rc, mr := testClient(t)
	ctx := context.Background()

	calls := 0
	compute := func(ctx context.Context) (payload, error) {
		calls++
		return payload{Value: "computed"}, nil
	}

	got, err := GetOrSet(ctx, rc, "k1", time.Minute, compute)
	require.NoError(t, err)
	assert.Equal(t, "computed", got.Value)
	assert.Equal(t, 1, calls)
	assert.True(t, mr.Exists("k1"))

	// second call hits the stored entry
	got, err = GetOrSet(ctx, rc, "k1", time.Minute, compute)
	require.NoError(t, err)
	assert.Equal(t, "computed", got.Value)
	assert.Equal(t, 1, calls)
}

func TestGetOrSetExpiry(t *testing.T) {
	rc, mr := testClient(t)
	ctx := context.Background()

	calls := 0
	compute := func(ctx context.Context) (payload, error) {
		calls++
		return payload{Value: "v"}, nil
	}

	_, err := GetOrSet(ctx, rc, "k1", time.Minute, compute)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = GetOrSet(ctx, rc, "k1", time.Minute, compute)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGetOrSetComputeError(t *testing.T) {
	rc, mr := testClient(t)

	boom := errors.New("store unavailable")
	_, err := GetOrSet(context.Background(), rc, "k1", time.Minute, func(ctx context.Context) (payload, error) {
		return payload{}, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("k1"))
}

func TestGetOrSetUndecodableEntryRecomputes(t *testing.T) {
	rc, mr := testClient(t)
	require.NoError(t, mr.Set("k1", "{not json"))

	got, err := GetOrSet(context.Background(), rc, "k1", time.Minute, func(ctx context.Context) (payload, error) {
		return payload{Value: "fresh"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", got.Value)
}

// A dead Redis behaves like a permanent miss.
func TestGetOrSetRedisDown(t *testing.T) {
	rc, mr := testClient(t)
	mr.Close()

	calls := 0
	for i := 0; i < 2; i++ {
		got, err := GetOrSet(context.Background(), rc, "k1", time.Minute, func(ctx context.Context) (payload, error) {
			calls++
			return payload{Value: "live"}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "live", got.Value)
	}
	assert.Equal(t, 2, calls)
}

func TestGetOrSetNilClient(t *testing.T) {
	got, err := GetOrSet(context.Background(), nil, "k1", time.Minute, func(ctx context.Context) (payload, error) {
		return payload{Value: "direct"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "direct", got.Value)
}

func TestInvalidate(t *testing.T) {
	rc, mr := testClient(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("a", "1"))
	require.NoError(t, mr.Set("b", "2"))

	require.NoError(t, Invalidate(ctx, rc, "a", "b", "missing"))
	assert.False(t, mr.Exists("a"))
	assert.False(t, mr.Exists("b"))

	assert.NoError(t, Invalidate(ctx, rc))
	assert.NoError(t, Invalidate(ctx, nil, "a"))
}
