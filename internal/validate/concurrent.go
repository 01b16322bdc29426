package validate

import (
	"context"
	"math"
	"sync"
	"sync/atomic"

	"github.com/hedisam/pipeline/chans"

	"github.com/hedisam/ledgercheck/internal/ledger"
)

// checkBlocksConcurrently spreads block checks over the configured workers and returns the verdict of
// the lowest failing block, which is what a sequential pass would have returned.
func (v *Validator) checkBlocksConcurrently(blocks []ledger.Block) Verdict {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// lowest failing block index seen so far; blocks above it need not be checked
	var lowestFailure atomic.Int64
	lowestFailure.Store(math.MaxInt64)

	indexes := dispatchIndexes(ctx, len(blocks), &lowestFailure)
	failures := v.blockWorkers(ctx, blocks, indexes, &lowestFailure)

	first := accepted
	for verdict := range chans.ReceiveOrDoneSeq(ctx, failures) {
		if first.Valid() || verdict.Block < first.Block {
			first = verdict
		}
	}

	return first
}

// dispatchIndexes emits block indexes in ascending order until it reaches a known failure.
// Every index below a failure is therefore handed out before the failure is reported.
func dispatchIndexes(ctx context.Context, n int, lowestFailure *atomic.Int64) <-chan int {
	out := make(chan int)

	go func() {
		defer close(out)

		for i := range n {
			if int64(i) > lowestFailure.Load() {
				return
			}
			if !chans.SendOrDone(ctx, out, i) {
				return
			}
		}
	}()

	return out
}

func (v *Validator) blockWorkers(ctx context.Context, blocks []ledger.Block, in <-chan int, lowestFailure *atomic.Int64) <-chan Verdict {
	out := make(chan Verdict)

	var wg sync.WaitGroup
	for range min(v.workers, len(blocks)) {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range chans.ReceiveOrDoneSeq(ctx, in) {
				if int64(i) > lowestFailure.Load() {
					continue
				}

				verdict := v.checkBlock(&blocks[i], i)
				if verdict.Valid() {
					continue
				}
				storeMin(lowestFailure, int64(i))
				if !chans.SendOrDone(ctx, out, verdict) {
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func storeMin(v *atomic.Int64, candidate int64) {
	for {
		current := v.Load()
		if candidate >= current || v.CompareAndSwap(current, candidate) {
			return
		}
	}
}
