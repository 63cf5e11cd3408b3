package refresh

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_BeginCancelsPreviousLoad(t *testing.T) {
	var g Guard

	ctx1, gen1 := g.Begin(context.Background())
	ctx2, gen2 := g.Begin(context.Background())

	require.Error(t, ctx1.Err(), "first load should be canceled")
	require.NoError(t, ctx2.Err())
	assert.NotEqual(t, gen1, gen2)
}

func TestGuard_SupersededGenerationRejected(t *testing.T) {
	var g Guard

	_, gen1 := g.Begin(context.Background())
	_, gen2 := g.Begin(context.Background())

	assert.False(t, g.Accept(gen1), "stale result must not be applied")
	assert.True(t, g.Accept(gen2))
}

func TestGuard_StopCancelsWithoutNewGeneration(t *testing.T) {
	var g Guard

	ctx, gen := g.Begin(context.Background())
	g.Stop()

	require.Error(t, ctx.Err())
	// Nothing superseded the load; a result that already arrived
	// still matches.
	assert.True(t, g.Accept(gen))

	g.Stop()
}

func TestGuard_ZeroValueAcceptsNothing(t *testing.T) {
	var g Guard

	assert.False(t, g.Accept(1))
	g.Stop()
}

func TestGuard_ParentCancelPropagates(t *testing.T) {
	var g Guard

	parent, cancel := context.WithCancel(context.Background())
	ctx, _ := g.Begin(parent)
	cancel()

	require.Error(t, ctx.Err())
}

func TestGuard_ConcurrentBeginsYieldOneCurrent(t *testing.T) {
	var g Guard

	const loads = 32
	gens := make([]uint64, loads)
	var wg sync.WaitGroup
	for i := 0; i < loads; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, gens[i] = g.Begin(context.Background())
		}()
	}
	wg.Wait()

	current := 0
	for _, gen := range gens {
		if g.Accept(gen) {
			current++
		}
	}
	assert.Equal(t, 1, current, "exactly one load survives a burst")
}
