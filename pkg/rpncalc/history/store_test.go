package history_test

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/rpncalc/pkg/rpncalc/history"
)

// storeFactories runs the same contract against every implementation.
func storeFactories(t *testing.T) map[string]func() history.Store {
	return map[string]func() history.Store{
		"memory": func() history.Store {
			return history.NewMemoryStore()
		},
		"sqlite": func() history.Store {
			s, err := history.NewSQLiteStore(":memory:")
			require.NoError(t, err)
			return s
		},
	}
}

func record(expr string, value float64) history.Record {
	rec := history.NewRecord(expr)
	rec.Postfix = "_ 1 2 _ 3 4 +"
	rec.Success = true
	rec.Value = value
	return rec
}

func TestNewRecord(t *testing.T) {
	a := history.NewRecord("12+34")
	b := history.NewRecord("12+34")

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Digest, b.Digest)
	assert.Equal(t, history.Digest("12+34"), a.Digest)
	assert.NotEqual(t, history.Digest("12+35"), a.Digest)
	assert.False(t, a.Timestamp.IsZero())
}

func TestStore_SaveGet(t *testing.T) {
	for name, newStore := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			store := newStore()
			defer store.Close()

			rec := record("12+34", 46)
			require.NoError(t, store.Save(rec))

			got, err := store.Get(rec.ID)
			require.NoError(t, err)
			assert.Equal(t, rec.ID, got.ID)
			assert.Equal(t, "12+34", got.Expression)
			assert.Equal(t, rec.Digest, got.Digest)
			assert.Equal(t, rec.Postfix, got.Postfix)
			assert.True(t, got.Success)
			assert.Equal(t, 46.0, got.Value)
			assert.Equal(t, int64(1), got.Sequence)
			assert.WithinDuration(t, rec.Timestamp, got.Timestamp, time.Millisecond)
		})
	}
}

func TestStore_GetMissing(t *testing.T) {
	for name, newStore := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			store := newStore()
			defer store.Close()

			_, err := store.Get("nope")
			assert.ErrorIs(t, err, history.ErrNotFound)
		})
	}
}

func TestStore_FailedAndInfinite(t *testing.T) {
	for name, newStore := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			store := newStore()
			defer store.Close()

			failed := history.NewRecord("(1+2")
			failed.Message = "Parentheses mismatched"
			require.NoError(t, store.Save(failed))

			inf := record("1/0", math.Inf(1))
			require.NoError(t, store.Save(inf))

			got, err := store.Get(failed.ID)
			require.NoError(t, err)
			assert.False(t, got.Success)
			assert.Equal(t, "Parentheses mismatched", got.Message)

			got, err = store.Get(inf.ID)
			require.NoError(t, err)
			assert.True(t, math.IsInf(got.Value, 1))
		})
	}
}

func TestStore_List(t *testing.T) {
	for name, newStore := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			store := newStore()
			defer store.Close()

			require.NoError(t, store.Save(record("1+1", 2)))
			require.NoError(t, store.Save(record("2+2", 4)))
			require.NoError(t, store.Save(record("1+1", 2)))

			all, err := store.List(history.ListOptions{})
			require.NoError(t, err)
			require.Len(t, all, 3)
			assert.Equal(t, int64(3), all[0].Sequence, "newest first")
			assert.Equal(t, int64(1), all[2].Sequence)

			limited, err := store.List(history.ListOptions{Limit: 2})
			require.NoError(t, err)
			require.Len(t, limited, 2)
			assert.Equal(t, "1+1", limited[0].Expression)
			assert.Equal(t, "2+2", limited[1].Expression)

			filtered, err := store.List(history.ListOptions{Expression: "1+1"})
			require.NoError(t, err)
			require.Len(t, filtered, 2)
			for _, rec := range filtered {
				assert.Equal(t, "1+1", rec.Expression)
			}

			none, err := store.List(history.ListOptions{Expression: "9*9"})
			require.NoError(t, err)
			assert.Empty(t, none)
		})
	}
}

func TestStore_DeleteClear(t *testing.T) {
	for name, newStore := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			store := newStore()
			defer store.Close()

			a := record("1+1", 2)
			b := record("2+2", 4)
			require.NoError(t, store.Save(a))
			require.NoError(t, store.Save(b))

			require.NoError(t, store.Delete(a.ID))
			require.NoError(t, store.Delete("missing"), "deleting a missing record is not an error")

			_, err := store.Get(a.ID)
			assert.ErrorIs(t, err, history.ErrNotFound)

			require.NoError(t, store.Clear())
			all, err := store.List(history.ListOptions{})
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestStore_Closed(t *testing.T) {
	for name, newStore := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			store := newStore()
			require.NoError(t, store.Close())

			assert.ErrorIs(t, store.Save(record("1", 1)), history.ErrStoreClosed)
			_, err := store.Get("x")
			assert.ErrorIs(t, err, history.ErrStoreClosed)
			_, err = store.List(history.ListOptions{})
			assert.ErrorIs(t, err, history.ErrStoreClosed)
			assert.ErrorIs(t, store.Delete("x"), history.ErrStoreClosed)
			assert.ErrorIs(t, store.Clear(), history.ErrStoreClosed)
		})
	}
}

func TestStore_Concurrent(t *testing.T) {
	for name, newStore := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			store := newStore()
			defer store.Close()

			const numGoroutines = 20
			const numOps = 10

			var wg sync.WaitGroup
			wg.Add(numGoroutines)
			for i := 0; i < numGoroutines; i++ {
				go func(id int) {
					defer wg.Done()
					for j := 0; j < numOps; j++ {
						switch j % 3 {
						case 0, 1:
							_ = store.Save(record("1+1", 2))
						case 2:
							_, _ = store.List(history.ListOptions{Limit: 5})
						}
					}
				}(i)
			}
			wg.Wait()

			all, err := store.List(history.ListOptions{})
			require.NoError(t, err)
			assert.Len(t, all, numGoroutines*7)
		})
	}
}
