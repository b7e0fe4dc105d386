/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package objectops

import (
	"context"

	"github.com/suparena/objectops/handle"
	"github.com/suparena/objectops/opmodels"
)

// Count invokes the count capability on the query handle, forwarding the
// options unchanged, and returns the number of matching objects.
func Count(ctx context.Context, q handle.Counter, opts *opmodels.Options) (int64, error) {
	return q.Count(ctx, opts)
}

// Find invokes the find capability on the query handle, forwarding the
// options unchanged, and returns the matching objects.
func Find[T any](ctx context.Context, q handle.Finder[T], opts *opmodels.Options) ([]T, error) {
	return q.Find(ctx, opts)
}

// First invokes the first-match capability on the query handle, forwarding
// the options unchanged. It returns (nil, nil) when nothing matches.
func First[T any](ctx context.Context, q handle.FirstFinder[T], opts *opmodels.Options) (*T, error) {
	return q.First(ctx, opts)
}

// Fetch invokes the fetch capability on the record handle, forwarding the
// options unchanged, and returns the refreshed handle.
func Fetch[R any](ctx context.Context, r handle.Fetcher[R], opts *opmodels.Options) (R, error) {
	return r.Fetch(ctx, opts)
}

// Save invokes the save capability on the record handle, forwarding the
// options unchanged, and returns the persisted handle.
func Save[R any](ctx context.Context, r handle.Saver[R], opts *opmodels.Options) (R, error) {
	return r.Save(ctx, opts)
}

// Destroy invokes the destroy capability on the record handle, forwarding
// the options unchanged, and returns the handle, now deleted remotely.
func Destroy[R any](ctx context.Context, r handle.Destroyer[R], opts *opmodels.Options) (R, error) {
	return r.Destroy(ctx, opts)
}
