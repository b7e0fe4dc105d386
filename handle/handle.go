/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handle

import (
	"context"

	"github.com/suparena/objectops/opmodels"
)

// Counter is the capability of counting the objects matched by a query handle.
type Counter interface {
	Count(ctx context.Context, opts *opmodels.Options) (int64, error)
}

// Finder is the capability of retrieving all objects matched by a query handle.
type Finder[T any] interface {
	Find(ctx context.Context, opts *opmodels.Options) ([]T, error)
}

// FirstFinder is the capability of retrieving the first object matched by a
// query handle. Implementations return (nil, nil) when nothing matches.
type FirstFinder[T any] interface {
	First(ctx context.Context, opts *opmodels.Options) (*T, error)
}

// Fetcher is the capability of refreshing a record handle from the backend.
// The returned value is the handle itself, refreshed.
type Fetcher[R any] interface {
	Fetch(ctx context.Context, opts *opmodels.Options) (R, error)
}

// Saver is the capability of persisting a record handle to the backend.
// The returned value is the handle itself, persisted.
type Saver[R any] interface {
	Save(ctx context.Context, opts *opmodels.Options) (R, error)
}

// Destroyer is the capability of deleting a record handle's object from the
// backend. The returned value is the handle itself, now deleted remotely.
type Destroyer[R any] interface {
	Destroy(ctx context.Context, opts *opmodels.Options) (R, error)
}

// Query is the full capability set of a queryable handle.
type Query[T any] interface {
	Counter
	Finder[T]
	FirstFinder[T]
}

// Record is the full capability set of a record handle.
type Record[R any] interface {
	Fetcher[R]
	Saver[R]
	Destroyer[R]
}
