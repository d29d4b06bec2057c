package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Cache(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		c, err := New(1<<20, time.Minute)
		require.NoError(t, err)

		c.Set("key", "value")
		c.Wait()

		got, ok := c.Get("key")
		require.True(t, ok)
		require.Equal(t, "value", got)
	})

	t.Run("miss", func(t *testing.T) {
		c, err := New(1<<20, time.Minute)
		require.NoError(t, err)

		_, ok := c.Get("nope")
		require.False(t, ok)
	})

	t.Run("entries expire", func(t *testing.T) {
		c, err := New(1<<20, time.Minute)
		require.NoError(t, err)

		c.SetWithTTL("key", "value", 10*time.Millisecond)
		c.Wait()

		time.Sleep(50 * time.Millisecond)
		_, ok := c.Get("key")
		require.False(t, ok)
	})

	t.Run("delete", func(t *testing.T) {
		c, err := New(1<<20, time.Minute)
		require.NoError(t, err)

		c.Set("key", "value")
		c.Wait()
		c.Del("key")

		_, ok := c.Get("key")
		require.False(t, ok)
	})
}
