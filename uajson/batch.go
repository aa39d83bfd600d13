package uajson

import (
	"sync"

	"github.com/gammazero/workerpool"
)

// BatchItem is one unit of work for EncodeBatch: a callback that renders
// one top-level value independently, with an Encoder of its own.
type BatchItem struct {
	// Encode is called with a fresh Encoder bound to the batch's shared
	// EncodingContext; it should call exactly one top-level emit and then
	// return e.Text().
	Encode func(e *Encoder) (string, error)
}

// BatchResult is the outcome of one BatchItem.
type BatchResult struct {
	Text string
	Err  error
}

// EncodeBatch runs each item's Encode callback concurrently across a
// worker pool, one Encoder per submitted job (Encoders are not safe to
// share across goroutines), all bound read-only to the same ctx. Results
// are returned in the same order as items, mirroring the teacher's own
// srv.workerpool usage pattern of a fixed pool stopped with StopWait once
// every submitted job has drained.
func EncodeBatch(ctx *EncodingContext, reversible bool, maxWorkers int, items []BatchItem) []BatchResult {
	results := make([]BatchResult, len(items))
	if len(items) == 0 {
		return results
	}
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	pool := workerpool.New(maxWorkers)
	var wg sync.WaitGroup
	wg.Add(len(items))
	for i, item := range items {
		i, item := i, item
		pool.Submit(func() {
			defer wg.Done()
			enc := NewEncoder(ctx)
			enc.SetReversible(reversible)
			text, err := item.Encode(enc)
			results[i] = BatchResult{Text: text, Err: err}
		})
	}
	wg.Wait()
	pool.StopWait()
	return results
}
