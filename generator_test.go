package snowflake

import (
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// requireLayout asserts the invariants every generated id must satisfy:
// sign guard clear, separator clear, timestamp field non zero after the
// epoch, random field in range.
func requireLayout(t *testing.T, id Snowflake) {
	t.Helper()

	v := id.Uint64()
	require.Zero(t, (v>>63)&1, "bit 63 (sign guard) must be 0: %016x", v)
	require.Zero(t, (v>>21)&1, "bit 21 (separator) must be 0: %016x", v)
	require.NotZero(t, v&TimeMask, "timestamp field must be non zero post epoch: %016x", v)
	require.LessOrEqual(t, uint64(id.RandomField()), RandomMask)
}

func TestRandomLayout(t *testing.T) {
	// Generate a batch to give the random field a fair chance of tripping
	// any bit placement mistake.
	for range 100 {
		id, err := Random()
		require.NoError(t, err)
		requireLayout(t, id)
	}
}

func TestNewIsRandom(t *testing.T) {
	// New is defined as exactly Random, same layout, same error contract.
	id, err := New()
	require.NoError(t, err)
	requireLayout(t, id)

	g := NewGenerator()
	id, err = g.New()
	require.NoError(t, err)
	requireLayout(t, id)
}

func TestGeneratorDeterministic(t *testing.T) {
	at := time.UnixMilli(EpochMS + 5000)
	g := NewGenerator(
		WithSource(rand.New(rand.NewPCG(1, 2))),
		WithNow(func() time.Time { return at }),
	)

	// An identically seeded source predicts the draws.
	want := rand.New(rand.NewPCG(1, 2))

	for range 10 {
		id, err := g.Random()
		require.NoError(t, err)
		require.Equal(t, uint64(5000), id.Millis())
		require.Equal(t, uint32(want.Uint64N(RandomMask+1)), id.RandomField())
	}
}

func TestRandomTimestampTrend(t *testing.T) {
	// Under an advancing clock the timestamp field never decreases.
	now := time.UnixMilli(EpochMS + 1000)
	g := NewGenerator(WithNow(func() time.Time { return now }))

	a, err := g.Random()
	require.NoError(t, err)

	now = now.Add(5 * time.Millisecond)
	b, err := g.Random()
	require.NoError(t, err)

	require.Greater(t, b.Millis(), a.Millis())
	require.Equal(t, a.Millis()+5, b.Millis())

	// And against the real clock, consecutive ids are non decreasing.
	first, err := Random()
	require.NoError(t, err)
	second, err := Random()
	require.NoError(t, err)
	require.GreaterOrEqual(t, second.Millis(), first.Millis())
}

func TestRandomClockBeforeEpoch(t *testing.T) {
	g := NewGenerator(WithNow(func() time.Time {
		return time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	}))

	_, err := g.Random()
	require.ErrorIs(t, err, ErrEpochOrdering)
}

func TestRandomConcurrent(t *testing.T) {
	const goroutines = 8
	const perGoroutine = 200

	ids := make(chan Snowflake, goroutines*perGoroutine)
	errs := make(chan error, goroutines*perGoroutine)

	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perGoroutine {
				id, err := Random()
				if err != nil {
					errs <- err
					continue
				}
				ids <- id
			}
		}()
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	for id := range ids {
		requireLayout(t, id)
	}
}

// Benchmark_RandomStressTest stresses the generator as hard as the host
// CPU will allow, checking the layout invariants on every id.
func Benchmark_RandomStressTest(b *testing.B) {
	g := NewGenerator()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			id, err := g.Random()
			if err != nil {
				b.Errorf("generating: %v", err)
				continue
			}
			v := id.Uint64()
			if v>>63 != 0 || (v>>21)&1 != 0 {
				b.Errorf("layout violation: %016x", v)
			}
		}
	})
}
