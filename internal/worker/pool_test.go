package worker

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johntlangton/chess/internal/errors"
	"github.com/johntlangton/chess/internal/rules"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantMoves int
		wantSide  string
	}{
		{"initial position", rules.InitialFEN, 20, "White"},
		{"lone rook", "8/8/8/8/8/8/8/R7 w - - 0 1", 14, "White"},
		{"lone black knight to move", "n7/8/8/8/8/8/8/8 b - - 0 1", 2, "Black"},
		{"no pieces for side to move", "8/8/8/8/8/8/8/K7 b - - 0 1", 0, "Black"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Analyze(Item{FEN: tt.fen, Index: 7})
			require.NoError(t, res.Err)
			assert.Equal(t, 7, res.Index)
			assert.Equal(t, tt.fen, res.FEN)
			assert.Equal(t, tt.wantSide, res.ToMove)
			assert.Equal(t, tt.wantMoves, res.MoveCount)
		})
	}
}

func TestAnalyzeBadFEN(t *testing.T) {
	res := Analyze(Item{FEN: "not a position", Index: 3})
	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, errors.ErrInvalidFEN)
	assert.Equal(t, 3, res.Index)
}

func TestPoolProcessesAllItems(t *testing.T) {
	pool := NewPool(Analyze, WithWorkers(4), WithBufferSize(8))
	assert.Equal(t, 4, pool.NumWorkers())
	pool.Start()

	const n = 32
	go func() {
		for i := 0; i < n; i++ {
			pool.Submit(Item{FEN: rules.InitialFEN, Index: i})
		}
		pool.Close()
	}()

	var indexes []int
	for res := range pool.Results() {
		require.NoError(t, res.Err)
		assert.Equal(t, 20, res.MoveCount)
		indexes = append(indexes, res.Index)
	}

	require.Len(t, indexes, n)
	sort.Ints(indexes)
	for i := 0; i < n; i++ {
		assert.Equal(t, i, indexes[i])
	}
}

func TestPoolDefaults(t *testing.T) {
	pool := NewPool(Analyze)
	assert.Equal(t, 1, pool.NumWorkers())

	// Out-of-range options are ignored.
	pool = NewPool(Analyze, WithWorkers(0), WithBufferSize(-1))
	assert.Equal(t, 1, pool.NumWorkers())
}

func TestPoolStop(t *testing.T) {
	pool := NewPool(Analyze, WithWorkers(2))
	pool.Start()

	pool.Submit(Item{FEN: rules.InitialFEN, Index: 0})
	pool.Stop()
	assert.True(t, pool.IsStopped())
	assert.False(t, pool.TrySubmit(Item{FEN: rules.InitialFEN, Index: 1}),
		"TrySubmit after Stop")

	pool.Close()
	// Results may or may not include the first item depending on when
	// the stop flag was observed; the channel must still close.
	for range pool.Results() {
	}
}

func TestTrySubmitFullBuffer(t *testing.T) {
	// No workers started, buffer of 1: the second TrySubmit cannot fit.
	pool := NewPool(Analyze, WithBufferSize(1))

	assert.True(t, pool.TrySubmit(Item{FEN: rules.InitialFEN, Index: 0}))
	assert.False(t, pool.TrySubmit(Item{FEN: rules.InitialFEN, Index: 1}))
}
