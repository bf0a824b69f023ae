package server

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/themer/app/server/mocks"
)

func TestPruner_Run(t *testing.T) {
	t.Run("prunes on every tick", func(t *testing.T) {
		var calls atomic.Int32
		st := &mocks.PrefPrunerMock{PruneFunc: func(context.Context, time.Time) (int64, error) {
			calls.Add(1)
			return 2, nil
		}}
		p := NewPruner(st, PrunerConfig{Interval: 10 * time.Millisecond, MaxAge: time.Hour})

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		p.Run(ctx)

		assert.GreaterOrEqual(t, calls.Load(), int32(2))
	})

	t.Run("keeps running after store error", func(t *testing.T) {
		var calls atomic.Int32
		st := &mocks.PrefPrunerMock{PruneFunc: func(context.Context, time.Time) (int64, error) {
			calls.Add(1)
			return 0, errors.New("db is gone")
		}}
		p := NewPruner(st, PrunerConfig{Interval: 10 * time.Millisecond, MaxAge: time.Hour})

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		p.Run(ctx)

		assert.GreaterOrEqual(t, calls.Load(), int32(2))
	})

	t.Run("disabled with zero interval", func(t *testing.T) {
		st := &mocks.PrefPrunerMock{PruneFunc: func(context.Context, time.Time) (int64, error) {
			return 0, nil
		}}
		p := NewPruner(st, PrunerConfig{MaxAge: time.Hour})

		done := make(chan struct{})
		go func() {
			p.Run(context.Background())
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("disabled pruner should return immediately")
		}
		assert.Empty(t, st.PruneCalls())
	})
}

func TestPruner_prune(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	st := &mocks.PrefPrunerMock{PruneFunc: func(context.Context, time.Time) (int64, error) {
		return 1, nil
	}}
	p := NewPruner(st, PrunerConfig{Interval: time.Minute, MaxAge: 24 * time.Hour})
	p.now = func() time.Time { return now }

	p.prune(context.Background())

	require.Len(t, st.PruneCalls(), 1)
	assert.Equal(t, now.Add(-24*time.Hour), st.PruneCalls()[0].Before)
}
