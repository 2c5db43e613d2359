package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-helper/internal/game"
)

func TestMemorySaveGet(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	s := &Session{Game: game.New(""), Pending: "trace"}
	require.NoError(t, st.Save(ctx, s))

	got, err := st.Get(ctx, s.ID())
	require.NoError(t, err)
	assert.NotSame(t, s, got)
	assert.Equal(t, s.ID(), got.ID())
	assert.Equal(t, "trace", got.Pending)

	got.Game.Guesses = append(got.Game.Guesses, "crane")
	again, _ := st.Get(ctx, s.ID())
	assert.Empty(t, again.Game.Guesses) // copies do not alias the stored session

	_, err = st.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Error(t, st.Save(ctx, &Session{}))
}

func TestMemoryUpdate(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := &Session{Game: game.New(""), Pending: "trace"}
	require.NoError(t, st.Save(ctx, s))

	err := st.Update(ctx, s.ID(), func(s *Session) error {
		fb, err := game.ParseFeedback("02212")
		if err != nil {
			return err
		}
		if err := s.Game.Record(s.Pending, fb); err != nil {
			return err
		}
		s.Pending = "crane"
		return nil
	})
	require.NoError(t, err)

	got, _ := st.Get(ctx, s.ID())
	assert.Equal(t, "crane", got.Pending)
	assert.Equal(t, 1, got.Game.Board.Len())

	boom := errors.New("boom")
	assert.ErrorIs(t, st.Update(ctx, s.ID(), func(*Session) error { return boom }), boom)
	assert.ErrorIs(t, st.Update(ctx, "nope", func(*Session) error { return nil }), ErrNotFound)
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := &Session{Game: game.New("")}
	require.NoError(t, st.Save(ctx, s))
	require.NoError(t, st.Delete(ctx, s.ID()))
	_, err := st.Get(ctx, s.ID())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, st.Delete(ctx, s.ID()))
}

func TestMemoryConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := &Session{Game: game.New("")}
	require.NoError(t, st.Save(ctx, s))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.Update(ctx, s.ID(), func(s *Session) error {
				s.Exclude = append(s.Exclude, "cigar")
				return nil
			})
			_, _ = st.Get(ctx, s.ID())
		}()
	}
	wg.Wait()
	got, err := st.Get(ctx, s.ID())
	require.NoError(t, err)
	assert.Len(t, got.Exclude, 50)
}

func TestMemoryUpdateLocksOnlyOneSession(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	slow := &Session{Game: game.New("")}
	fast := &Session{Game: game.New("")}
	require.NoError(t, st.Save(ctx, slow))
	require.NoError(t, st.Save(ctx, fast))

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- st.Update(ctx, slow.ID(), func(*Session) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	finished := make(chan error, 1)
	go func() {
		finished <- st.Update(ctx, fast.ID(), func(s *Session) error {
			s.Pending = "crane"
			return nil
		})
	}()
	select {
	case err := <-finished:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("update of another session blocked")
	}
	require.NoError(t, st.Save(ctx, &Session{Game: game.New("")}))

	close(release)
	require.NoError(t, <-done)
}

func TestMemoryUpdateAfterDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := &Session{Game: game.New("")}
	require.NoError(t, st.Save(ctx, s))
	require.NoError(t, st.Delete(ctx, s.ID()))
	assert.ErrorIs(t, st.Update(ctx, s.ID(), func(*Session) error { return nil }), ErrNotFound)
}
