package roster

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	calls   int
	planned []PlannedShift
	err     error
}

func (f *fakeSource) Fetch(ctx context.Context, month, year int) ([]PlannedShift, error) {
	f.calls++
	return f.planned, f.err
}

func TestCachedSource_ServesFromCacheWithinTTL(t *testing.T) {
	t.Parallel()

	fake := &fakeSource{planned: []PlannedShift{{AdminName: "A", CashierName: "B"}}}
	cached := NewCachedSource(fake, time.Minute)

	ctx := context.Background()
	first, err := cached.Fetch(ctx, 6, 2024)
	require.NoError(t, err)
	second, err := cached.Fetch(ctx, 6, 2024)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, fake.calls)
}

func TestCachedSource_RefetchesAfterTTL(t *testing.T) {
	t.Parallel()

	fake := &fakeSource{}
	cached := NewCachedSource(fake, time.Minute)

	current := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	cached.now = func() time.Time { return current }

	ctx := context.Background()
	_, err := cached.Fetch(ctx, 6, 2024)
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)
	_, err = cached.Fetch(ctx, 6, 2024)
	require.NoError(t, err)

	assert.Equal(t, 2, fake.calls)
}

func TestCachedSource_DistinctMonthsAreSeparateEntries(t *testing.T) {
	t.Parallel()

	fake := &fakeSource{}
	cached := NewCachedSource(fake, time.Minute)

	ctx := context.Background()
	_, _ = cached.Fetch(ctx, 6, 2024)
	_, _ = cached.Fetch(ctx, 7, 2024)

	assert.Equal(t, 2, fake.calls)
}

func TestCachedSource_ServesStaleOnError(t *testing.T) {
	t.Parallel()

	fake := &fakeSource{planned: []PlannedShift{{AdminName: "A"}}}
	cached := NewCachedSource(fake, time.Minute)

	current := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	cached.now = func() time.Time { return current }

	ctx := context.Background()
	first, err := cached.Fetch(ctx, 6, 2024)
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)
	fake.err = errors.New("upstream down")

	got, err := cached.Fetch(ctx, 6, 2024)
	require.NoError(t, err)
	assert.Equal(t, first, got)
}
