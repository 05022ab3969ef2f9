package searchlog

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aislenav/gridgraph"
)

func TestLog_AppendAndRecords(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	l := New()
	l.now = func() time.Time { return fixed }

	route := []gridgraph.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}
	_, ok := l.Last()
	require.False(t, ok)

	l.Append(route[0], route[2], route)
	rec, ok := l.Last()
	require.True(t, ok)

	require.NotEqual(t, uuid.Nil, rec.ID)
	require.Equal(t, 3, rec.Length)
	require.Equal(t, 2, rec.Steps())
	require.Equal(t, fixed, rec.At)

	// The log keeps its own copy of the route.
	route[1] = gridgraph.Cell{Row: 9, Col: 9}
	got := l.Records()
	require.Len(t, got, 1)
	require.Equal(t, gridgraph.Cell{Row: 0, Col: 1}, got[0].Route[1])

	// Snapshots are detached from the log.
	got[0].Route[0] = gridgraph.Cell{Row: 7, Col: 7}
	require.Equal(t, gridgraph.Cell{Row: 0, Col: 0}, l.Records()[0].Route[0])
}

func TestLog_OrderAndClear(t *testing.T) {
	l := New()
	for i := 0; i < 3; i++ {
		c := gridgraph.Cell{Row: i, Col: i}
		l.Append(c, c, []gridgraph.Cell{c})
	}
	recs := l.Records()
	require.Len(t, recs, 3)
	for i, rec := range recs {
		require.Equal(t, gridgraph.Cell{Row: i, Col: i}, rec.Start)
		require.Equal(t, 0, rec.Steps())
	}

	l.Clear()
	require.Equal(t, 0, l.Len())
	require.Empty(t, l.Records())
}

func TestLog_ZeroValueUsable(t *testing.T) {
	var l Log
	l.Append(gridgraph.Cell{}, gridgraph.Cell{}, nil)
	rec, ok := l.Last()
	require.True(t, ok)
	require.False(t, rec.At.IsZero())
	require.Equal(t, 0, rec.Steps())
	require.Equal(t, 1, l.Len())
}

func TestLog_ConcurrentAppend(t *testing.T) {
	l := New()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := gridgraph.Cell{Row: i}
			l.Append(c, c, []gridgraph.Cell{c})
			_ = l.Records()
		}(i)
	}
	wg.Wait()
	require.Equal(t, 16, l.Len())
}
