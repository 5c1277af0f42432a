package profile

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gapmapdev/gapmap/internal/curriculum"
)

// memRepo is an in-memory Repo with real version CAS semantics, so the
// tests exercise the same conflict behavior the SQLite store has.
type memRepo struct {
	mu      sync.Mutex
	current map[string]*Profile
	history map[string][]*Profile

	// saveHook runs inside SaveAsCurrent before the CAS check, letting
	// tests interleave a competing write.
	saveHook func()
}

func newMemRepo() *memRepo {
	return &memRepo{
		current: make(map[string]*Profile),
		history: make(map[string][]*Profile),
	}
}

func (r *memRepo) LoadCurrent(_ context.Context, learnerID string) (*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.current[learnerID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memRepo) SaveAsCurrent(_ context.Context, p *Profile, expectedPriorVersion int) error {
	if r.saveHook != nil {
		r.saveHook()
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	have := 0
	if cur, ok := r.current[p.LearnerID]; ok {
		have = cur.Version
	}
	if have != expectedPriorVersion {
		return ErrVersionConflict
	}

	cp := *p
	r.current[p.LearnerID] = &cp
	r.history[p.LearnerID] = append(r.history[p.LearnerID], &cp)
	return nil
}

func testGraph(t *testing.T) *curriculum.Graph {
	t.Helper()

	nodes := []curriculum.Node{
		{Code: "B1.1.1.1", Grade: 1, Severity: 0.9},
		{Code: "B2.1.1.1", Grade: 2, Severity: 0.8},
		{Code: "B4.1.1.1", Grade: 4, Severity: 0.7},
		{Code: "C1.1.1.1", Grade: 1, Severity: 0.6},
		{Code: "C2.1.1.1", Grade: 2, Severity: 0.5},
	}
	edges := []curriculum.Edge{
		{Source: "B1.1.1.1", Target: "B2.1.1.1", Kind: curriculum.RelationRequires},
		{Source: "B2.1.1.1", Target: "B4.1.1.1", Kind: curriculum.RelationRequires},
		{Source: "C1.1.1.1", Target: "C2.1.1.1", Kind: curriculum.RelationRequires},
	}
	cascades := []curriculum.Cascade{
		{Label: "Place Value Collapse", Nodes: []string{"B1.1.1.1", "B2.1.1.1", "B4.1.1.1"}},
	}
	screening := []curriculum.ScreeningList{
		{Grade: 2, Nodes: []string{"B2.1.1.1"}},
	}

	g, err := curriculum.New(nodes, edges, cascades, screening)
	require.NoError(t, err)
	return g
}

func TestMerge_NewProfile(t *testing.T) {
	m := NewMerger(testGraph(t), newMemRepo(), nil, nil)

	summary, err := m.Merge(context.Background(), "learner-1", SourceExerciseBook, Delta{
		Tested:     []string{"C2.1.1.1"},
		Gap:        []string{"C2.1.1.1"},
		Confidence: 0.85,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Version)
	assert.Equal(t, 1, summary.GapCount)
	assert.Equal(t, "C2.1.1.1", summary.PrimaryGap)
	assert.Equal(t, SourceExerciseBook, summary.Source)
	// First contribution takes the incoming confidence verbatim.
	assert.InDelta(t, 0.85, summary.Confidence, 1e-9)
	assert.Empty(t, summary.CascadeLabel)
}

func TestMerge_MasteryWins(t *testing.T) {
	repo := newMemRepo()
	m := NewMerger(testGraph(t), repo, nil, nil)
	ctx := context.Background()

	_, err := m.Merge(ctx, "learner-2", SourceExerciseBook, Delta{
		Tested: []string{"C2.1.1.1"}, Gap: []string{"C2.1.1.1"}, Confidence: 0.85,
	})
	require.NoError(t, err)

	summary, err := m.Merge(ctx, "learner-2", SourceSession, Delta{
		Tested: []string{"C2.1.1.1"}, Mastered: []string{"C2.1.1.1"}, Confidence: 0.9,
	})
	require.NoError(t, err)

	p, err := repo.LoadCurrent(ctx, "learner-2")
	require.NoError(t, err)
	assert.Empty(t, p.Gap)
	assert.Equal(t, []string{"C2.1.1.1"}, p.Mastered)
	assert.Empty(t, summary.PrimaryGap)

	// Mastery is sticky: a later gap report for the node cannot reopen it.
	_, err = m.Merge(ctx, "learner-2", SourceObservation, Delta{
		Tested: []string{"C2.1.1.1"}, Gap: []string{"C2.1.1.1"}, Confidence: 0.6,
	})
	require.NoError(t, err)
	p, err = repo.LoadCurrent(ctx, "learner-2")
	require.NoError(t, err)
	assert.Empty(t, p.Gap)
}

func TestMerge_InvariantHoldsAcrossSequences(t *testing.T) {
	repo := newMemRepo()
	m := NewMerger(testGraph(t), repo, nil, nil)
	ctx := context.Background()

	deltas := []Delta{
		{Tested: []string{"B4.1.1.1"}, Gap: []string{"B4.1.1.1"}, Confidence: 0.9},
		{Tested: []string{"B2.1.1.1"}, Gap: []string{"B2.1.1.1"}, Confidence: 0.8},
		{Tested: []string{"B4.1.1.1"}, Mastered: []string{"B4.1.1.1"}, Confidence: 0.7},
		{Tested: []string{"B1.1.1.1"}, Mastered: []string{"B1.1.1.1"}, Confidence: 0.95},
	}
	for _, d := range deltas {
		_, err := m.Merge(ctx, "learner-3", SourceEngagement, d)
		require.NoError(t, err)

		p, err := repo.LoadCurrent(ctx, "learner-3")
		require.NoError(t, err)
		mastered := map[string]bool{}
		for _, c := range p.Mastered {
			mastered[c] = true
		}
		for _, c := range p.Gap {
			assert.False(t, mastered[c], "gap and mastered must stay disjoint, %s in both", c)
		}
	}

	p, err := repo.LoadCurrent(ctx, "learner-3")
	require.NoError(t, err)
	assert.Equal(t, []string{"B2.1.1.1"}, p.Gap)
	assert.Equal(t, []string{"B1.1.1.1", "B4.1.1.1"}, p.Mastered)
	assert.Equal(t, 4, p.Version)
}

func TestMerge_Idempotent(t *testing.T) {
	repo := newMemRepo()
	m := NewMerger(testGraph(t), repo, nil, nil)
	ctx := context.Background()

	delta := Delta{
		Tested:     []string{"B2.1.1.1", "B4.1.1.1"},
		Gap:        []string{"B2.1.1.1", "B4.1.1.1"},
		Confidence: 0.8,
	}
	_, err := m.Merge(ctx, "learner-4", SourceSession, delta)
	require.NoError(t, err)
	first, err := repo.LoadCurrent(ctx, "learner-4")
	require.NoError(t, err)

	// Duplicate delivery changes no set.
	_, err = m.Merge(ctx, "learner-4", SourceSession, delta)
	require.NoError(t, err)
	second, err := repo.LoadCurrent(ctx, "learner-4")
	require.NoError(t, err)

	assert.Equal(t, first.Tested, second.Tested)
	assert.Equal(t, first.Gap, second.Gap)
	assert.Equal(t, first.Mastered, second.Mastered)
	assert.Equal(t, first.PrimaryGap, second.PrimaryGap)
}

func TestMerge_PrimaryGapMostFoundational(t *testing.T) {
	repo := newMemRepo()
	m := NewMerger(testGraph(t), repo, nil, nil)
	ctx := context.Background()

	// B4.1.1.1 sits two hops above its deepest ancestor, B2.1.1.1 one;
	// the more foundational node wins.
	summary, err := m.Merge(ctx, "learner-5", SourceSession, Delta{
		Tested:     []string{"B2.1.1.1", "B4.1.1.1"},
		Gap:        []string{"B4.1.1.1", "B2.1.1.1"},
		Confidence: 0.9,
	})
	require.NoError(t, err)
	assert.Equal(t, "B2.1.1.1", summary.PrimaryGap)
	assert.Equal(t, "Place Value Collapse", summary.CascadeLabel)

	// Equal depth resolves by higher severity: B2.1.1.1 (0.8) over
	// C2.1.1.1 (0.5).
	summary, err = m.Merge(ctx, "learner-6", SourceSession, Delta{
		Tested:     []string{"B2.1.1.1", "C2.1.1.1"},
		Gap:        []string{"C2.1.1.1", "B2.1.1.1"},
		Confidence: 0.9,
	})
	require.NoError(t, err)
	assert.Equal(t, "B2.1.1.1", summary.PrimaryGap)
}

func TestMerge_ConfidenceBlend(t *testing.T) {
	m := NewMerger(testGraph(t), newMemRepo(), nil, nil)
	ctx := context.Background()

	_, err := m.Merge(ctx, "learner-7", SourceSession, Delta{
		Tested: []string{"B2.1.1.1"}, Gap: []string{"B2.1.1.1"}, Confidence: 0.8,
	})
	require.NoError(t, err)

	summary, err := m.Merge(ctx, "learner-7", SourceObservation, Delta{
		Tested: []string{"B2.1.1.1"}, Confidence: 0.5,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.6*0.5+0.4*0.8, summary.Confidence, 1e-9)
}

func TestMerge_ConcurrentNoLostUpdate(t *testing.T) {
	repo := newMemRepo()
	m := NewMerger(testGraph(t), repo, nil, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	merge := func(code string) {
		defer wg.Done()
		_, err := m.Merge(ctx, "learner-8", SourceSession, Delta{
			Tested: []string{code}, Gap: []string{code}, Confidence: 0.8,
		})
		assert.NoError(t, err)
	}
	wg.Add(2)
	go merge("B2.1.1.1")
	go merge("B4.1.1.1")
	wg.Wait()

	p, err := repo.LoadCurrent(ctx, "learner-8")
	require.NoError(t, err)
	assert.Equal(t, []string{"B2.1.1.1", "B4.1.1.1"}, p.Gap)
	assert.Equal(t, 2, p.Version)
}

func TestMerge_StaleReadRetried(t *testing.T) {
	repo := newMemRepo()
	m := NewMerger(testGraph(t), repo, nil, nil)
	ctx := context.Background()

	// A competing writer lands between this merge's read and write,
	// exactly once.
	interfered := false
	repo.saveHook = func() {
		if interfered {
			return
		}
		interfered = true
		repo.mu.Lock()
		repo.current["learner-9"] = &Profile{
			LearnerID: "learner-9",
			Version:   1,
			Tested:    []string{"B4.1.1.1"},
			Gap:       []string{"B4.1.1.1"},
		}
		repo.mu.Unlock()
	}

	_, err := m.Merge(ctx, "learner-9", SourceSession, Delta{
		Tested: []string{"B2.1.1.1"}, Gap: []string{"B2.1.1.1"}, Confidence: 0.8,
	})
	require.NoError(t, err)

	p, err := repo.LoadCurrent(ctx, "learner-9")
	require.NoError(t, err)
	// The retry folded both writers' evidence in.
	assert.Equal(t, []string{"B2.1.1.1", "B4.1.1.1"}, p.Gap)
	assert.Equal(t, 2, p.Version)
}

func TestMerge_RetriesExhausted(t *testing.T) {
	repo := newMemRepo()
	// Every save sees a bumped version: permanent conflict.
	repo.saveHook = func() {
		repo.mu.Lock()
		cur := repo.current["learner-10"]
		v := 0
		if cur != nil {
			v = cur.Version
		}
		repo.current["learner-10"] = &Profile{LearnerID: "learner-10", Version: v + 1}
		repo.mu.Unlock()
	}
	m := NewMerger(testGraph(t), repo, nil, nil)

	_, err := m.Merge(context.Background(), "learner-10", SourceSession, Delta{
		Tested: []string{"B2.1.1.1"}, Confidence: 0.5,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestMerge_RejectsBadDelta(t *testing.T) {
	m := NewMerger(testGraph(t), newMemRepo(), nil, nil)
	ctx := context.Background()

	_, err := m.Merge(ctx, "learner-11", SourceSession, Delta{
		Gap: []string{"Z9.9.9.9"}, Confidence: 0.5,
	})
	var notFound *curriculum.NodeNotFoundError
	require.ErrorAs(t, err, &notFound)

	_, err = m.Merge(ctx, "learner-11", SourceSession, Delta{
		Tested: []string{"B2.1.1.1"}, Confidence: 1.4,
	})
	require.Error(t, err)
}
