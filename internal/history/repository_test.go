package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomotick/internal/core/model"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = repo.Close()
	})
	return repo
}

func TestInsertAssignsID(t *testing.T) {
	repo := newTestRepository(t)

	entry := Entry{
		Phase:     model.PhaseWork,
		StartedAt: time.Now().Add(-25 * time.Minute),
		EndedAt:   time.Now(),
		Goal:      "write tests",
	}
	require.NoError(t, repo.Insert(&entry))
	assert.NotZero(t, entry.ID)
}

func TestRecentReturnsNewestFirst(t *testing.T) {
	repo := newTestRepository(t)
	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		entry := Entry{
			Phase:     model.PhaseWork,
			StartedAt: base.Add(time.Duration(i) * time.Hour),
			EndedAt:   base.Add(time.Duration(i)*time.Hour + 25*time.Minute),
			Goal:      string(rune('a' + i)),
		}
		require.NoError(t, repo.Insert(&entry))
	}

	entries, err := repo.Recent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "c", entries[0].Goal)
	assert.Equal(t, "b", entries[1].Goal)

	all, err := repo.All()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].Goal)
}

func TestRoundTripPreservesFields(t *testing.T) {
	repo := newTestRepository(t)
	started := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)

	entry := Entry{
		Phase:     model.PhaseLongBreak,
		StartedAt: started,
		EndedAt:   started.Add(9 * time.Minute),
		Goal:      "stretch",
		Abandoned: true,
	}
	require.NoError(t, repo.Insert(&entry))

	entries, err := repo.All()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	loaded := entries[0]
	assert.Equal(t, model.PhaseLongBreak, loaded.Phase)
	assert.True(t, loaded.StartedAt.Equal(started))
	assert.True(t, loaded.EndedAt.Equal(started.Add(9*time.Minute)))
	assert.Equal(t, "stretch", loaded.Goal)
	assert.True(t, loaded.Abandoned)
}

func TestCompletedWorkSince(t *testing.T) {
	repo := newTestRepository(t)
	cutoff := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	insert := func(phase model.Phase, endedAt time.Time, abandoned bool) {
		entry := Entry{
			Phase:     phase,
			StartedAt: endedAt.Add(-10 * time.Minute),
			EndedAt:   endedAt,
			Abandoned: abandoned,
		}
		require.NoError(t, repo.Insert(&entry))
	}

	insert(model.PhaseWork, cutoff.Add(2*time.Hour), false)
	// Abandoned, non-work and pre-cutoff entries must not be counted.
	insert(model.PhaseWork, cutoff.Add(3*time.Hour), true)
	insert(model.PhaseShortBreak, cutoff.Add(4*time.Hour), false)
	insert(model.PhaseWork, cutoff.Add(-2*time.Hour), false)
	insert(model.PhaseWork, cutoff.Add(8*time.Hour), false)

	count, err := repo.CompletedWorkSince(cutoff)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
