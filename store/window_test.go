package store_test

import (
	"math"
	"testing"

	"github.com/hugolhafner/go-streamtest/store"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, it store.WindowIterator) map[int64]any {
	t.Helper()
	defer func() {
		require.NoError(t, it.Close())
	}()

	out := make(map[int64]any)
	for it.Next() {
		out[it.WindowStart()] = it.Value()
	}
	return out
}

func TestWindowStore_FetchInclusiveBounds(t *testing.T) {
	t.Parallel()

	ws := store.NewWindow("windows")
	require.Equal(t, "windows", ws.Name())

	ws.Put("k", 10, "a")
	ws.Put("k", 100, "b")
	ws.Put("k", 200, "c")
	ws.Put("other", 10, "x")

	require.Equal(t, map[int64]any{10: "a", 100: "b"}, collect(t, ws.Fetch("k", 0, 100)))
	require.Equal(t, map[int64]any{10: "a"}, collect(t, ws.Fetch("k", 10, 10)))
	require.Equal(
		t, map[int64]any{10: "a", 100: "b", 200: "c"},
		collect(t, ws.Fetch("k", 0, math.MaxInt64)),
	)
}

func TestWindowStore_FetchAscendingOrder(t *testing.T) {
	t.Parallel()

	ws := store.NewWindow("windows")
	ws.Put("k", 300, "c")
	ws.Put("k", 100, "a")
	ws.Put("k", 200, "b")

	it := ws.Fetch("k", 0, math.MaxInt64)
	defer it.Close()

	var starts []int64
	for it.Next() {
		starts = append(starts, it.WindowStart())
	}
	require.Equal(t, []int64{100, 200, 300}, starts)
}

func TestWindowStore_FetchEmptyCases(t *testing.T) {
	t.Parallel()

	ws := store.NewWindow("windows")
	ws.Put("k", 50, "a")

	require.Empty(t, collect(t, ws.Fetch("missing", 0, math.MaxInt64)))
	require.Empty(t, collect(t, ws.Fetch("k", 60, 40))) // inverted range
	require.Empty(t, collect(t, ws.Fetch("k", 51, 100)))
}

func TestWindowStore_OverwriteSameWindow(t *testing.T) {
	t.Parallel()

	ws := store.NewWindow("windows")
	ws.Put("k", 10, "old")
	ws.Put("k", 10, "new")

	require.Equal(t, map[int64]any{10: "new"}, collect(t, ws.Fetch("k", 0, 100)))
}
