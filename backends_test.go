/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package objectops

import (
	"testing"
)

type fakeStore struct {
	table string
}

func TestBackends(t *testing.T) {
	t.Run("BasicOperations", func(t *testing.T) {
		backends := NewBackends()

		// Register backend
		err := backends.Register("primary", &fakeStore{table: "objects"})
		if err != nil {
			t.Fatalf("Failed to register: %v", err)
		}

		// Get backend
		retrieved, err := backends.Get("primary")
		if err != nil {
			t.Fatalf("Failed to get: %v", err)
		}
		if retrieved == nil {
			t.Fatal("Retrieved backend is nil")
		}

		// List backends
		names := backends.List()
		if len(names) != 1 || names[0] != "primary" {
			t.Fatalf("Expected [primary], got %v", names)
		}

		// Remove backend
		err = backends.Remove("primary")
		if err != nil {
			t.Fatalf("Failed to remove: %v", err)
		}
		if _, err := backends.Get("primary"); err == nil {
			t.Fatal("Expected error after removal")
		}
	})

	t.Run("DuplicateRegistration", func(t *testing.T) {
		backends := NewBackends()

		if err := backends.Register("primary", &fakeStore{}); err != nil {
			t.Fatalf("Failed to register: %v", err)
		}
		if err := backends.Register("primary", &fakeStore{}); err == nil {
			t.Fatal("Expected error on duplicate registration")
		}
	})

	t.Run("TypedRetrieval", func(t *testing.T) {
		backends := NewBackends()

		if err := backends.Register("primary", &fakeStore{table: "objects"}); err != nil {
			t.Fatalf("Failed to register: %v", err)
		}

		store, err := GetBackend[*fakeStore](backends, "primary")
		if err != nil {
			t.Fatalf("GetBackend failed: %v", err)
		}
		if store.table != "objects" {
			t.Fatalf("Unexpected store: %+v", store)
		}

		// Wrong type assertion
		if _, err := GetBackend[string](backends, "primary"); err == nil {
			t.Fatal("Expected error for wrong backend type")
		}

		// Missing name
		if _, err := GetBackend[*fakeStore](backends, "missing"); err == nil {
			t.Fatal("Expected error for missing backend")
		}
	})
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	if info.Version == "" {
		t.Error("Version should not be empty")
	}
}
