package kernel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowChunks(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n, workers, minRows int
		want                []rowRange
	}{
		{0, 4, 1, nil},
		{5, 4, 64, []rowRange{{0, 5}}},
		{10, 1, 1, []rowRange{{0, 10}}},
		{10, 3, 1, []rowRange{{0, 4}, {4, 8}, {8, 10}}},
		{10, 16, 1, []rowRange{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7}, {7, 8}, {8, 9}, {9, 10}}},
		{200, 8, 64, []rowRange{{0, 67}, {67, 134}, {134, 200}}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, rowChunks(tc.n, tc.workers, tc.minRows),
			"n=%d workers=%d minRows=%d", tc.n, tc.workers, tc.minRows)
	}
}

func TestRowChunks_Cover(t *testing.T) {
	t.Parallel()

	for n := 1; n < 300; n += 7 {
		for _, workers := range []int{1, 2, 5, 13} {
			chunks := rowChunks(n, workers, 3)
			require.NotEmpty(t, chunks)
			assert.LessOrEqual(t, len(chunks), workers)
			assert.Equal(t, 0, chunks[0].start)
			assert.Equal(t, n, chunks[len(chunks)-1].end)
			for i := 1; i < len(chunks); i++ {
				assert.Equal(t, chunks[i-1].end, chunks[i].start)
			}
		}
	}
}

func TestEvaluateRows_EachRowOnce(t *testing.T) {
	t.Parallel()

	const n = 1000
	counts := make([]int32, n)
	o := &options{workers: 6, minRowsPerWorker: 10}
	evaluateRows(n, o, func(i int) {
		atomic.AddInt32(&counts[i], 1)
	})
	for i, c := range counts {
		assert.Equal(t, int32(1), c, "row %d", i)
	}
}
