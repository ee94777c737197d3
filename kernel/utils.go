package kernel

import "golang.org/x/sync/errgroup"

type rowRange struct {
	start int
	end   int
}

// rowChunks splits [0, n) into at most workers contiguous ranges, none
// shorter than minRows unless n itself is.
func rowChunks(n, workers, minRows int) []rowRange {
	if n <= 0 {
		return nil
	}
	cnt := min(workers, max(n/minRows, 1))
	size := (n + cnt - 1) / cnt
	res := make([]rowRange, 0, cnt)
	for start := 0; start < n; start += size {
		res = append(res, rowRange{start: start, end: min(start+size, n)})
	}
	return res
}

// evaluateRows calls eval once for every row in [0, n). Chunks are disjoint
// so eval may write its row without locking.
func evaluateRows(n int, o *options, eval func(i int)) {
	chunks := rowChunks(n, o.workers, o.minRowsPerWorker)
	if len(chunks) <= 1 {
		for i := 0; i < n; i++ {
			eval(i)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(o.workers)
	for _, c := range chunks {
		c := c
		g.Go(func() error {
			for i := c.start; i < c.end; i++ {
				eval(i)
			}
			return nil
		})
	}
	_ = g.Wait()
}
