/*
Package handle defines the capability interfaces consumed by the objectops
facade.

Each facade operation requires exactly one capability, so each capability is
its own interface. A test double (or a backend) implements only what it
needs:

	type Counter interface {
	    Count(ctx context.Context, opts *opmodels.Options) (int64, error)
	}

	type Fetcher[R any] interface {
	    Fetch(ctx context.Context, opts *opmodels.Options) (R, error)
	}

Record-side capabilities (Fetcher, Saver, Destroyer) are generic over the
handle's own concrete type, so that fetching or saving a handle returns that
same handle, fully typed:

	func (h *ObjectHandle[T]) Fetch(ctx context.Context, opts *opmodels.Options) (*ObjectHandle[T], error)

The composite interfaces Query[T] and Record[R] name the full capability set
of a queryable handle and a record handle respectively.

Implementations:
  - ddb: DynamoDB reference backend
  - mock: in-memory doubles for testing
*/
package handle
