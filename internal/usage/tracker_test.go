package usage

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackWhileIdleIsNoop(t *testing.T) {
	tr := NewTracker()

	tr.TrackClass("btn")
	tr.TrackMediaQuery("@media (min-width: 640px)", "btn")

	assert.Empty(t, tr.UsedClasses())
	assert.Empty(t, tr.MediaQueries())
	assert.False(t, tr.Collecting())
}

func TestCollectingWindow(t *testing.T) {
	tr := NewTracker()

	s, err := tr.StartCollecting()
	require.NoError(t, err)
	assert.True(t, tr.Collecting())
	assert.NotEqual(t, uuid.Nil, s.ID())

	tr.TrackClass("x")
	s.TrackClass("y")
	s.TrackClass("")
	require.NoError(t, s.Stop())

	tr.TrackClass("after")
	s.TrackClass("after")

	assert.Equal(t, map[string]struct{}{"x": {}, "y": {}}, tr.UsedClasses())
}

func TestMediaQueryOrderAndSets(t *testing.T) {
	tr := NewTracker()
	s, err := tr.StartCollecting()
	require.NoError(t, err)

	s.TrackMediaQuery("@media (min-width: 1280px)", "a")
	s.TrackMediaQuery("@media (min-width: 640px)", "b")
	s.TrackMediaQuery("@media (min-width: 1280px)", "c")
	s.TrackMediaQuery("@media (min-width: 1280px)", "a")
	s.TrackMediaQuery("", "ignored")
	s.TrackMediaQuery("@media print", "")
	require.NoError(t, tr.StopCollecting(s))

	mq := tr.MediaQueries()
	require.Len(t, mq, 2)
	assert.Equal(t, "@media (min-width: 1280px)", mq[0].Selector)
	assert.Equal(t, map[string]struct{}{"a": {}, "c": {}}, mq[0].Classes)
	assert.Equal(t, "@media (min-width: 640px)", mq[1].Selector)
	assert.Equal(t, map[string]struct{}{"b": {}}, mq[1].Classes)
}

func TestStartWhileCollecting(t *testing.T) {
	tr := NewTracker()

	s, err := tr.StartCollecting()
	require.NoError(t, err)

	_, err = tr.StartCollecting()
	assert.ErrorIs(t, err, ErrAlreadyCollecting)

	require.NoError(t, s.Stop())
	next, err := tr.StartCollecting()
	require.NoError(t, err)
	assert.NotEqual(t, s.ID(), next.ID())
}

func TestStopMismatch(t *testing.T) {
	tr := NewTracker()
	other := NewTracker()

	assert.ErrorIs(t, tr.StopCollecting(nil), ErrSessionMismatch)

	stale, err := tr.StartCollecting()
	require.NoError(t, err)
	require.NoError(t, stale.Stop())
	assert.ErrorIs(t, stale.Stop(), ErrSessionMismatch)

	current, err := tr.StartCollecting()
	require.NoError(t, err)

	foreign, err := other.StartCollecting()
	require.NoError(t, err)
	assert.ErrorIs(t, tr.StopCollecting(foreign), ErrSessionMismatch)

	// A stale handle cannot write into or close the new window
	stale.TrackClass("stale")
	assert.ErrorIs(t, tr.StopCollecting(stale), ErrSessionMismatch)
	assert.True(t, tr.Collecting())
	assert.Empty(t, tr.UsedClasses())

	require.NoError(t, current.Stop())
}

func TestClear(t *testing.T) {
	tr := NewTracker()
	s, err := tr.StartCollecting()
	require.NoError(t, err)

	s.TrackClass("a")
	s.TrackMediaQuery("@media print", "a")

	// Clear works mid-session and leaves the session open
	tr.Clear()
	assert.Empty(t, tr.UsedClasses())
	assert.Empty(t, tr.MediaQueries())
	assert.True(t, tr.Collecting())

	s.TrackClass("b")
	require.NoError(t, s.Stop())

	tr.Clear()
	assert.Empty(t, tr.UsedClasses())
}

func TestSnapshotIsACopy(t *testing.T) {
	tr := NewTracker()
	s, err := tr.StartCollecting()
	require.NoError(t, err)
	s.TrackClass("a")
	s.TrackMediaQuery("@media print", "a")

	snap := tr.Snapshot()
	snap.UsedClasses["mutated"] = struct{}{}
	snap.MediaQueries[0].Classes["mutated"] = struct{}{}

	s.TrackClass("b")
	require.NoError(t, s.Stop())

	assert.NotContains(t, tr.UsedClasses(), "mutated")
	assert.NotContains(t, tr.MediaQueries()[0].Classes, "mutated")
	assert.NotContains(t, snap.UsedClasses, "b")
}

func TestConcurrentTracking(t *testing.T) {
	tr := NewTracker()
	s, err := tr.StartCollecting()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				s.TrackClass(fmt.Sprintf("c-%d-%d", i, j))
				tr.TrackMediaQuery("@media print", fmt.Sprintf("m-%d", i))
				_ = tr.Snapshot()
			}
		}(i)
	}
	wg.Wait()
	require.NoError(t, s.Stop())

	assert.Len(t, tr.UsedClasses(), 200)
	require.Len(t, tr.MediaQueries(), 1)
	assert.Len(t, tr.MediaQueries()[0].Classes, 8)
}
