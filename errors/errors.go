/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrObjectNotFound is returned when a fetched object does not exist in the backend
	ErrObjectNotFound = errors.New("object not found")

	// ErrMasterKeyRequired is returned when an operation requests privilege elevation
	// but the store has no master credentials configured
	ErrMasterKeyRequired = errors.New("master key required")

	// ErrInvalidQuery is returned when query parameters cannot be turned into a backend request
	ErrInvalidQuery = errors.New("invalid query")

	// ErrNoKeyMap is returned when no key map is registered for a type
	ErrNoKeyMap = errors.New("no key map found for type")
)

// ObjectNotFoundError represents an error when an addressed object does not exist
type ObjectNotFoundError struct {
	Class    string
	ObjectID string
}

func (e *ObjectNotFoundError) Error() string {
	return fmt.Sprintf("%s object with id %q not found", e.Class, e.ObjectID)
}

func (e *ObjectNotFoundError) Is(target error) bool {
	return target == ErrObjectNotFound
}

// MasterKeyRequiredError represents an operation that asked for elevation
// on a store without master credentials
type MasterKeyRequiredError struct {
	Operation string
}

func (e *MasterKeyRequiredError) Error() string {
	return fmt.Sprintf("%s requested master key but store has no master credentials", e.Operation)
}

func (e *MasterKeyRequiredError) Is(target error) bool {
	return target == ErrMasterKeyRequired
}

// InvalidQueryError represents query parameters rejected before any backend call
type InvalidQueryError struct {
	Reason string
}

func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("invalid query: %s", e.Reason)
}

func (e *InvalidQueryError) Is(target error) bool {
	return target == ErrInvalidQuery
}

// Helper functions for creating errors

// NewObjectNotFoundError creates a new ObjectNotFoundError
func NewObjectNotFoundError(class, objectID string) error {
	return &ObjectNotFoundError{Class: class, ObjectID: objectID}
}

// NewMasterKeyRequiredError creates a new MasterKeyRequiredError
func NewMasterKeyRequiredError(operation string) error {
	return &MasterKeyRequiredError{Operation: operation}
}

// NewInvalidQueryError creates a new InvalidQueryError
func NewInvalidQueryError(reason string) error {
	return &InvalidQueryError{Reason: reason}
}

// IsObjectNotFound checks if an error is an object not found error
func IsObjectNotFound(err error) bool {
	return errors.Is(err, ErrObjectNotFound)
}

// IsMasterKeyRequired checks if an error is a master key required error
func IsMasterKeyRequired(err error) bool {
	return errors.Is(err, ErrMasterKeyRequired)
}

// IsInvalidQuery checks if an error is an invalid query error
func IsInvalidQuery(err error) bool {
	return errors.Is(err, ErrInvalidQuery)
}
