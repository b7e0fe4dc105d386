/*
Package errors provides semantic error types for the objectops backends.

The package defines common failure scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper
functions.

Common Errors:

	var (
	    ErrObjectNotFound    = errors.New("object not found")
	    ErrMasterKeyRequired = errors.New("master key required")
	    ErrInvalidQuery      = errors.New("invalid query")
	    ErrNoKeyMap          = errors.New("no key map found for type")
	)

Usage:

	// Check error type
	h, err := objectops.Fetch(ctx, record, opts)
	if err != nil {
	    if errors.IsObjectNotFound(err) {
	        // Handle missing object
	        return nil, fmt.Errorf("score %s does not exist", id)
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewObjectNotFoundError("GameScore", "xWMyZ4YEGZ")
	err := errors.NewMasterKeyRequiredError("destroy")
	err := errors.NewInvalidQueryError("missing key condition")

These errors originate in backend implementations only. The facade itself
never creates or wraps errors; it propagates whatever the handle returns,
unchanged.
*/
package errors
