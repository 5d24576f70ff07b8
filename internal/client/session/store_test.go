package session

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/adminconsole/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alice = models.Admin{AdminID: 7, Username: "alice", FirstName: "Alice", TelegramID: "42"}

func TestNew_IsAnonymous(t *testing.T) {
	s := New()
	snap := s.Snapshot()

	assert.Equal(t, models.StatusAnonymous, snap.Status)
	assert.True(t, snap.Consistent())
	assert.False(t, snap.Loading)
}

func TestBeginTwoFactor_FromAnonymous(t *testing.T) {
	s := New()
	require.NoError(t, s.BeginTwoFactor("T1"))

	snap := s.Snapshot()
	assert.Equal(t, models.StatusPendingTwoFactor, snap.Status)
	assert.Equal(t, "T1", snap.TempToken)
	assert.True(t, snap.Consistent())
}

func TestBeginTwoFactor_EmptyToken(t *testing.T) {
	s := New()
	err := s.BeginTwoFactor("")
	require.ErrorIs(t, err, ErrEmptyToken)
	assert.Equal(t, models.StatusAnonymous, s.Status())
}

func TestBeginTwoFactor_WrongStateLeavesStateUnchanged(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *Store)
	}{
		{"pending", func(s *Store) { require.NoError(t, s.BeginTwoFactor("T0")) }},
		{"authenticated", func(s *Store) { require.NoError(t, s.CompleteAuthentication("A", "R", alice)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			tt.setup(s)
			before := s.Snapshot()
			gen := s.Generation()

			err := s.BeginTwoFactor("T1")

			var ise *InvalidStateError
			require.True(t, errors.As(err, &ise))
			assert.Equal(t, before.Status, ise.From)
			assert.Empty(t, cmp.Diff(before, s.Snapshot()))
			assert.Equal(t, gen, s.Generation())
		})
	}
}

func TestCompleteAuthentication_FromPendingClearsTempToken(t *testing.T) {
	s := New()
	require.NoError(t, s.BeginTwoFactor("T1"))
	require.NoError(t, s.CompleteAuthentication("A", "R", alice))

	snap := s.Snapshot()
	assert.Equal(t, models.StatusAuthenticated, snap.Status)
	assert.Empty(t, snap.TempToken)
	assert.Equal(t, "A", snap.AccessToken)
	assert.Equal(t, "R", snap.RefreshToken)
	require.NotNil(t, snap.Account)
	assert.Equal(t, "alice", snap.Account.Username)
	assert.True(t, snap.Consistent())
}

func TestCompleteAuthentication_FromAuthenticatedFails(t *testing.T) {
	s := New()
	require.NoError(t, s.CompleteAuthentication("A", "R", alice))

	err := s.CompleteAuthentication("A2", "R2", alice)
	var ise *InvalidStateError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, "A", s.Snapshot().AccessToken)
}

func TestRotateTokens(t *testing.T) {
	s := New()
	err := s.RotateTokens("A", "R")
	var ise *InvalidStateError
	require.ErrorAs(t, err, &ise)

	require.NoError(t, s.CompleteAuthentication("A", "R", alice))
	require.NoError(t, s.RotateTokens("A2", "R2"))

	snap := s.Snapshot()
	assert.Equal(t, "A2", snap.AccessToken)
	assert.Equal(t, "R2", snap.RefreshToken)
	assert.Equal(t, "alice", snap.Account.Username)
}

func TestClear_FromAnyStateIsIdempotent(t *testing.T) {
	setups := map[string]func(s *Store){
		"anonymous":     func(s *Store) {},
		"pending":       func(s *Store) { require.NoError(t, s.BeginTwoFactor("T1")) },
		"authenticated": func(s *Store) { require.NoError(t, s.CompleteAuthentication("A", "R", alice)) },
	}
	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			s := New()
			setup(s)

			s.Clear()
			s.Clear()

			snap := s.Snapshot()
			assert.Equal(t, models.StatusAnonymous, snap.Status)
			assert.True(t, snap.Consistent())
		})
	}
}

func TestSnapshot_AccountIsCopied(t *testing.T) {
	s := New()
	require.NoError(t, s.CompleteAuthentication("A", "R", alice))

	snap := s.Snapshot()
	snap.Account.Username = "mallory"

	assert.Equal(t, "alice", s.Snapshot().Account.Username)
}

func TestObservers_NotifiedSynchronouslyWithCommittedState(t *testing.T) {
	s := New()

	var seen []models.Status
	var readBack []models.Status
	unsubscribe := s.Subscribe(func(snap models.Session) {
		seen = append(seen, snap.Status)
		readBack = append(readBack, s.Status())
	})

	require.NoError(t, s.BeginTwoFactor("T1"))
	require.NoError(t, s.CompleteAuthentication("A", "R", alice))
	s.Clear()

	want := []models.Status{models.StatusPendingTwoFactor, models.StatusAuthenticated, models.StatusAnonymous}
	assert.Equal(t, want, seen)
	assert.Equal(t, want, readBack)

	unsubscribe()
	s.Clear()
	assert.Len(t, seen, 3)
}

func TestSnapshot_CarriesGeneration(t *testing.T) {
	s := New()
	assert.Zero(t, s.Snapshot().Generation)

	var gens []uint64
	s.Subscribe(func(snap models.Session) { gens = append(gens, snap.Generation) })

	require.NoError(t, s.BeginTwoFactor("T1"))
	s.Clear()

	assert.Equal(t, []uint64{1, 2}, gens)
	assert.Equal(t, s.Generation(), s.Snapshot().Generation)
}

func TestObservers_NotNotifiedOnRejectedTransition(t *testing.T) {
	s := New()
	calls := 0
	s.Subscribe(func(models.Session) { calls++ })

	require.NoError(t, s.CompleteAuthentication("A", "R", alice))
	_ = s.BeginTwoFactor("T1")

	assert.Equal(t, 1, calls)
}

func TestLoading_SurvivesClear(t *testing.T) {
	s := New()
	s.SetLoading(true)
	require.NoError(t, s.CompleteAuthentication("A", "R", alice))
	s.Clear()

	assert.True(t, s.Loading())
	s.SetLoading(false)
	assert.False(t, s.Loading())
}

func TestInvariant_HoldsAfterEverySequence(t *testing.T) {
	type step func(s *Store)
	steps := []step{
		func(s *Store) { _ = s.BeginTwoFactor("T") },
		func(s *Store) { _ = s.CompleteAuthentication("A", "R", alice) },
		func(s *Store) { _ = s.RotateTokens("A1", "R1") },
		func(s *Store) { s.Clear() },
	}
	// every sequence of length 4 over the step alphabet
	for a := range steps {
		for b := range steps {
			for c := range steps {
				for d := range steps {
					s := New()
					for _, i := range []int{a, b, c, d} {
						steps[i](s)
						require.True(t, s.Snapshot().Consistent(), "sequence %v", []int{a, b, c, d})
					}
				}
			}
		}
	}
}
