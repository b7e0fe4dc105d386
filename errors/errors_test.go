/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestObjectNotFoundError(t *testing.T) {
	err := NewObjectNotFoundError("GameScore", "xWMyZ4YEGZ")

	// Test error message
	expected := `GameScore object with id "xWMyZ4YEGZ" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrObjectNotFound) {
		t.Error("ObjectNotFoundError should match ErrObjectNotFound")
	}

	// Test helper function
	if !IsObjectNotFound(err) {
		t.Error("IsObjectNotFound should return true for ObjectNotFoundError")
	}
}

func TestMasterKeyRequiredError(t *testing.T) {
	err := NewMasterKeyRequiredError("destroy")

	// Test error message
	expected := "destroy requested master key but store has no master credentials"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrMasterKeyRequired) {
		t.Error("MasterKeyRequiredError should match ErrMasterKeyRequired")
	}

	// Test helper function
	if !IsMasterKeyRequired(err) {
		t.Error("IsMasterKeyRequired should return true for MasterKeyRequiredError")
	}
}

func TestInvalidQueryError(t *testing.T) {
	tests := []struct {
		name     string
		reason   string
		expected string
	}{
		{
			name:     "MissingKeyCondition",
			reason:   "missing key condition",
			expected: "invalid query: missing key condition",
		},
		{
			name:     "EmptyExpressionValues",
			reason:   "no expression attribute values",
			expected: "invalid query: no expression attribute values",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewInvalidQueryError(tt.reason)
			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}
			if !errors.Is(err, ErrInvalidQuery) {
				t.Error("InvalidQueryError should match ErrInvalidQuery")
			}
			if !IsInvalidQuery(err) {
				t.Error("IsInvalidQuery should return true for InvalidQueryError")
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	inner := NewObjectNotFoundError("GameScore", "abc")
	wrapped := fmt.Errorf("fetch failed: %w", inner)

	if !errors.Is(wrapped, ErrObjectNotFound) {
		t.Error("wrapped ObjectNotFoundError should still match ErrObjectNotFound")
	}

	var onf *ObjectNotFoundError
	if !errors.As(wrapped, &onf) {
		t.Fatal("errors.As should extract ObjectNotFoundError from wrapped error")
	}
	if onf.Class != "GameScore" || onf.ObjectID != "abc" {
		t.Errorf("unexpected extracted error: %+v", onf)
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrObjectNotFound, ErrMasterKeyRequired, ErrInvalidQuery, ErrNoKeyMap}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v should not match %v", a, b)
			}
		}
	}
}
