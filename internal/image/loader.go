package imagepkg

import (
	"context"
	"image"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// DefaultWorkers bounds how many fetches run at once.
const DefaultWorkers = 10

// Result is the outcome of one Request. Exactly one of Image and Err is set.
type Result struct {
	Image *image.NRGBA
	Err   error
}

// OK reports whether the image was fetched.
func (r Result) OK() bool {
	return r.Image != nil && r.Err == nil
}

// Loader runs batches of fetches on a bounded pool shared by all callers.
type Loader struct {
	fetcher Fetcher
	sem     *semaphore.Weighted
}

// NewLoader creates a Loader allowing at most workers concurrent fetches.
func NewLoader(fetcher Fetcher, workers int) *Loader {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Loader{
		fetcher: fetcher,
		sem:     semaphore.NewWeighted(int64(workers)),
	}
}

// LoadMany fetches every request concurrently and waits for all of them.
// results[i] is always the outcome of reqs[i]; a failed fetch never affects its siblings.
func (l *Loader) LoadMany(ctx context.Context, reqs []Request) []Result {
	results := make([]Result, len(reqs))
	var g errgroup.Group
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			results[i] = l.load(ctx, req)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (l *Loader) load(ctx context.Context, req Request) Result {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return Result{Err: &FetchError{URL: req.URL, Err: err}}
	}
	defer l.sem.Release(1)

	img, err := l.fetcher.Fetch(ctx, req)
	if err != nil {
		return Result{Err: err}
	}
	if img == nil {
		return Result{Err: &FetchError{URL: req.URL, Err: errEmptyImage}}
	}
	return Result{Image: img}
}
