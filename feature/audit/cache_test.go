package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerCache(t *testing.T) {
	fetch := func(calls *int) func(context.Context) (*ledgers, error) {
		return func(context.Context) (*ledgers, error) {
			*calls++
			return &ledgers{}, nil
		}
	}

	t.Run("DisabledAlwaysFetches", func(t *testing.T) {
		cache := newLedgerCache(0)

		var calls int
		for i := 0; i < 3; i++ {
			_, err := cache.get(context.Background(), fetch(&calls))
			require.NoError(t, err)
		}
		assert.Equal(t, 3, calls)
	})

	t.Run("ReusesFreshSnapshot", func(t *testing.T) {
		cache := newLedgerCache(time.Minute)

		var calls int
		for i := 0; i < 3; i++ {
			_, err := cache.get(context.Background(), fetch(&calls))
			require.NoError(t, err)
		}
		assert.Equal(t, 1, calls)
	})

	t.Run("InvalidateForcesRefetch", func(t *testing.T) {
		cache := newLedgerCache(time.Minute)

		var calls int
		_, err := cache.get(context.Background(), fetch(&calls))
		require.NoError(t, err)

		cache.invalidate()

		_, err = cache.get(context.Background(), fetch(&calls))
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("FetchErrorPropagates", func(t *testing.T) {
		cache := newLedgerCache(time.Minute)

		_, err := cache.get(context.Background(), func(context.Context) (*ledgers, error) {
			return nil, assert.AnError
		})
		assert.Error(t, err)

		// Errors are never cached.
		var calls int
		_, err = cache.get(context.Background(), fetch(&calls))
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})
}
