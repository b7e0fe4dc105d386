/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	opserrors "github.com/suparena/objectops/errors"
	"github.com/suparena/objectops/opmodels"
)

func TestQueryInputValidation(t *testing.T) {
	store := &Store{tableName: "objects-test"}

	t.Run("NilParams", func(t *testing.T) {
		q := NewQueryHandle[keyMapEntity](store, nil)
		_, err := q.queryInput()
		if !opserrors.IsInvalidQuery(err) {
			t.Fatalf("Expected invalid query error, got: %v", err)
		}
	})

	t.Run("MissingKeyCondition", func(t *testing.T) {
		q := NewQueryHandle[keyMapEntity](store, &opmodels.QueryParams{})
		_, err := q.queryInput()
		if !opserrors.IsInvalidQuery(err) {
			t.Fatalf("Expected invalid query error, got: %v", err)
		}
	})

	t.Run("ValidParams", func(t *testing.T) {
		params := &opmodels.QueryParams{
			KeyConditionExpression: "PK = :pk",
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk": &types.AttributeValueMemberS{Value: "SCORE#abc"},
			},
		}
		q := NewQueryHandle[keyMapEntity](store, params)

		input, err := q.queryInput()
		if err != nil {
			t.Fatalf("queryInput failed: %v", err)
		}
		if *input.TableName != "objects-test" {
			t.Errorf("Expected table name from store, got %q", *input.TableName)
		}
		if *input.KeyConditionExpression != "PK = :pk" {
			t.Errorf("Unexpected key condition: %q", *input.KeyConditionExpression)
		}
	})
}

func TestClientForMasterKey(t *testing.T) {
	store := &Store{tableName: "objects-test"}

	t.Run("NoElevation", func(t *testing.T) {
		client, err := store.clientFor("count", nil)
		if err != nil {
			t.Fatalf("clientFor failed: %v", err)
		}
		if client != store.client {
			t.Error("Expected the standard client")
		}
	})

	t.Run("ElevationWithoutMasterCredentials", func(t *testing.T) {
		_, err := store.clientFor("destroy", &opmodels.Options{UseMasterKey: true})
		if !opserrors.IsMasterKeyRequired(err) {
			t.Fatalf("Expected master key required error, got: %v", err)
		}
	})
}
