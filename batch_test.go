package polygo

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hupe1980/polygo/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitions(t *testing.T) {
	tests := []struct {
		name             string
		n, workers, size int
		want             []span
	}{
		{"empty", 0, 4, 10, nil},
		{"below min size", 15, 4, 10, []span{{0, 15}}},
		{"one per worker", 100, 4, 10, []span{{0, 25}, {25, 50}, {50, 75}, {75, 100}}},
		{"limited by size", 35, 8, 10, []span{{0, 12}, {12, 24}, {24, 35}}},
		{"single worker", 1000, 1, 1, []span{{0, 1000}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, partitions(tt.n, tt.workers, tt.size))
		})
	}
}

func TestForEach_CoversEveryIndexOnce(t *testing.T) {
	pc, err := New(0, WithWorkers(3), WithMinPartitionSize(100))
	require.NoError(t, err)
	defer pc.Close()

	const n = 10_000
	seen := make([]int32, n)
	var calls atomic.Int32

	err = pc.forEach(context.Background(), n, func(lo, hi int, s *spatial.Scratch) {
		assert.NotNil(t, s)
		calls.Add(1)
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})
	require.NoError(t, err)

	for i := range seen {
		assert.Equal(t, int32(1), seen[i], "index %d", i)
	}
	// Three partitions of ~3334 points, each split into four chunks.
	assert.Equal(t, int32(12), calls.Load())
}

func TestForEach_WaitsForBusyWorkers(t *testing.T) {
	pc, err := New(0, WithWorkers(2), WithMinPartitionSize(100))
	require.NoError(t, err)
	defer pc.Close()

	// Every slot is held elsewhere, so no partition may run inline.
	require.NoError(t, pc.rc.AcquireWorker(context.Background()))
	require.NoError(t, pc.rc.AcquireWorker(context.Background()))

	var processed atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- pc.forEach(context.Background(), 1000, func(lo, hi int, _ *spatial.Scratch) {
			processed.Add(int32(hi - lo))
		})
	}()

	select {
	case err := <-done:
		t.Fatalf("forEach finished without a worker slot: %v", err)
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, int32(0), processed.Load())

	pc.rc.ReleaseWorker()
	pc.rc.ReleaseWorker()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("forEach did not finish after slots were released")
	}
	assert.Equal(t, int32(1000), processed.Load())

	// All slots are free again.
	assert.True(t, pc.rc.TryAcquireWorker())
	assert.True(t, pc.rc.TryAcquireWorker())
	assert.False(t, pc.rc.TryAcquireWorker())
}

func TestForEach_CancelStopsAllPartitions(t *testing.T) {
	pc, err := New(0, WithWorkers(4), WithMinPartitionSize(chunkSize))
	require.NoError(t, err)
	defer pc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	err = pc.forEach(ctx, 16*chunkSize, func(lo, hi int, _ *spatial.Scratch) {
		calls.Add(1)
		cancel()
	})
	require.ErrorIs(t, err, context.Canceled)
	// Four partitions of four chunks; each stops after at most one chunk.
	assert.LessOrEqual(t, calls.Load(), int32(4))
}
