/*
Package objectops provides a thin, mockable facade over a backend object
store's object and query operations.

Each of the six operations — Count, Fetch, Find, First, Save, Destroy — is a
one-line delegation to the corresponding capability on a caller-supplied
handle. The facade owns no state, performs no validation, adds no retries,
and never wraps errors: whatever the handle returns, the caller gets.

The point is testability. Application code that calls instance methods on a
live SDK client is hard to substitute in unit tests; code that calls the
facade over a narrow capability interface is trivially testable with a
double that implements exactly one method (see the handle and handle/mock
packages).

Basic Usage:

	// Register a key map for the type (typically generated, see cmd/classmap)
	registry.RegisterKeyMap[GameScore](map[string]string{
	    "PK": "GAMESCORE#{ObjectID}",
	    "SK": "GAMESCORE#{ObjectID}",
	})

	// Create a backend store and a record handle
	store, _ := ddb.NewStore(accessKey, secretKey, region, table)
	h := ddb.NewObjectHandle[GameScore](store, "xWMyZ4YEGZ")

	// Operate through the facade
	h, err := objectops.Fetch(ctx, h, nil)
	h.Object().Score = aws.Int64(1337)
	h, err = objectops.Save(ctx, h, &opmodels.Options{UseMasterKey: true})

Options pass through unchanged; recognized keys (privilege elevation,
session tokens) are defined entirely by the backend the handle belongs to.

For more information, see the documentation at https://github.com/suparena/objectops
*/
package objectops
