/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock_test

import (
	"context"
	"testing"

	"github.com/suparena/objectops/errors"
	"github.com/suparena/objectops/handle"
	"github.com/suparena/objectops/handle/mock"
	"github.com/suparena/objectops/opmodels"
)

type TestEntity struct {
	ObjectID string
	Name     string
}

// Compile-time interface checks
var (
	_ handle.Query[TestEntity]                = (*mock.Query[TestEntity])(nil)
	_ handle.Record[*mock.Record[TestEntity]] = (*mock.Record[TestEntity])(nil)
)

func TestMockQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultBehavior", func(t *testing.T) {
		q := mock.NewQuery[TestEntity]().WithItems(
			TestEntity{ObjectID: "1", Name: "One"},
			TestEntity{ObjectID: "2", Name: "Two"},
		)

		n, err := q.Count(ctx, nil)
		if err != nil {
			t.Fatalf("Count failed: %v", err)
		}
		if n != 2 {
			t.Fatalf("Expected count 2, got %d", n)
		}

		items, err := q.Find(ctx, nil)
		if err != nil {
			t.Fatalf("Find failed: %v", err)
		}
		if len(items) != 2 || items[0].ObjectID != "1" {
			t.Fatalf("Unexpected find result: %+v", items)
		}

		first, err := q.First(ctx, nil)
		if err != nil {
			t.Fatalf("First failed: %v", err)
		}
		if first == nil || first.Name != "One" {
			t.Fatalf("Unexpected first result: %+v", first)
		}
	})

	t.Run("FirstWithNoMatch", func(t *testing.T) {
		q := mock.NewQuery[TestEntity]()

		first, err := q.First(ctx, nil)
		if err != nil {
			t.Fatalf("First failed: %v", err)
		}
		if first != nil {
			t.Fatalf("Expected nil for empty query, got %+v", first)
		}
	})

	t.Run("ErrorSimulation", func(t *testing.T) {
		queryErr := errors.NewInvalidQueryError("missing key condition")
		q := mock.NewQuery[TestEntity]().WithFindError(queryErr)

		_, err := q.Find(ctx, nil)
		if err != queryErr {
			t.Fatalf("Expected find error, got: %v", err)
		}
	})

	t.Run("CallRecording", func(t *testing.T) {
		q := mock.NewQuery[TestEntity]()
		opts := &opmodels.Options{UseMasterKey: true}

		if _, err := q.Count(ctx, opts); err != nil {
			t.Fatalf("Count failed: %v", err)
		}
		if _, err := q.Find(ctx, nil); err != nil {
			t.Fatalf("Find failed: %v", err)
		}

		calls := q.Calls()
		if len(calls) != 2 {
			t.Fatalf("Expected 2 recorded calls, got %d", len(calls))
		}
		if calls[0].Op != "count" || calls[0].Options != opts {
			t.Fatalf("Unexpected first call: %+v", calls[0])
		}
		if calls[1].Op != "find" || calls[1].Options != nil {
			t.Fatalf("Unexpected second call: %+v", calls[1])
		}
	})
}

func TestMockRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultBehavior", func(t *testing.T) {
		entity := &TestEntity{ObjectID: "1", Name: "One"}
		r := mock.NewRecord(entity)

		fetched, err := r.Fetch(ctx, nil)
		if err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		if fetched != r {
			t.Fatal("Fetch should return the same handle")
		}

		saved, err := r.Save(ctx, nil)
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if saved != r || !r.Saved() {
			t.Fatal("Save should return the same handle and mark it saved")
		}

		destroyed, err := r.Destroy(ctx, nil)
		if err != nil {
			t.Fatalf("Destroy failed: %v", err)
		}
		if destroyed != r || !r.Destroyed() {
			t.Fatal("Destroy should return the same handle and mark it destroyed")
		}

		if r.Object() != entity {
			t.Fatal("Object should return the wrapped entity")
		}
	})

	t.Run("ErrorSimulation", func(t *testing.T) {
		fetchErr := errors.NewObjectNotFoundError("TestEntity", "missing")
		r := mock.NewRecord(&TestEntity{}).WithFetchError(fetchErr)

		_, err := r.Fetch(ctx, nil)
		if err != fetchErr {
			t.Fatalf("Expected fetch error, got: %v", err)
		}
		if !errors.IsObjectNotFound(err) {
			t.Fatal("Propagated error should still match ErrObjectNotFound")
		}
	})

	t.Run("CustomFunc", func(t *testing.T) {
		replacement := mock.NewRecord(&TestEntity{ObjectID: "fresh"})
		r := mock.NewRecord(&TestEntity{ObjectID: "stale"}).
			WithFetchFunc(func(ctx context.Context, opts *opmodels.Options) (*mock.Record[TestEntity], error) {
				return replacement, nil
			})

		fetched, err := r.Fetch(ctx, nil)
		if err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		if fetched != replacement {
			t.Fatal("Fetch should return exactly what the custom func returned")
		}
	})

	t.Run("OptionsRecording", func(t *testing.T) {
		r := mock.NewRecord(&TestEntity{})
		opts := &opmodels.Options{UseMasterKey: true, SessionToken: "r:abc"}

		if _, err := r.Save(ctx, opts); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if r.LastOptions() != opts {
			t.Fatal("Save should forward options unchanged")
		}
	})
}
