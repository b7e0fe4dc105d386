/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	opserrors "github.com/suparena/objectops/errors"
	"github.com/suparena/objectops/opmodels"
)

// QueryHandle is a search specification of type T against the store's table.
// It implements the query-side capabilities (Find, First, Count).
type QueryHandle[T any] struct {
	store  *Store
	params *opmodels.QueryParams
}

// NewQueryHandle creates a query handle over the store with the given parameters.
func NewQueryHandle[T any](store *Store, params *opmodels.QueryParams) *QueryHandle[T] {
	return &QueryHandle[T]{store: store, params: params}
}

// Params returns the handle's query parameters.
func (q *QueryHandle[T]) Params() *opmodels.QueryParams {
	return q.params
}

// queryInput translates the handle's parameters into a DynamoDB QueryInput.
func (q *QueryHandle[T]) queryInput() (*sdk.QueryInput, error) {
	if q.params == nil || q.params.KeyConditionExpression == "" {
		return nil, opserrors.NewInvalidQueryError("missing key condition")
	}

	return &sdk.QueryInput{
		TableName:                 &q.store.tableName,
		KeyConditionExpression:    &q.params.KeyConditionExpression,
		ExpressionAttributeValues: q.params.ExpressionAttributeValues,
		FilterExpression:          q.params.FilterExpression,
		IndexName:                 q.params.IndexName,
		Limit:                     q.params.Limit,
		ScanIndexForward:          q.params.ScanIndexForward,
	}, nil
}

// Find returns all objects matching the query, following pagination until
// the result set is exhausted or the configured Limit is reached.
func (q *QueryHandle[T]) Find(ctx context.Context, opts *opmodels.Options) ([]T, error) {
	input, err := q.queryInput()
	if err != nil {
		return nil, err
	}

	client, err := q.store.clientFor("find", opts)
	if err != nil {
		return nil, err
	}

	var results []T
	for {
		out, err := client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("query error: %w", err)
		}

		for _, item := range out.Items {
			obj, err := unmarshalObject[T](item)
			if err != nil {
				return nil, err
			}
			results = append(results, obj)
			if q.params.Limit != nil && int32(len(results)) >= *q.params.Limit {
				return results, nil
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			return results, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// First returns the first object matching the query, or (nil, nil) when
// nothing matches.
func (q *QueryHandle[T]) First(ctx context.Context, opts *opmodels.Options) (*T, error) {
	input, err := q.queryInput()
	if err != nil {
		return nil, err
	}
	input.Limit = aws.Int32(1)

	client, err := q.store.clientFor("first", opts)
	if err != nil {
		return nil, err
	}

	var lastEvaluatedKey map[string]types.AttributeValue
	for {
		input.ExclusiveStartKey = lastEvaluatedKey
		out, err := client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("query error: %w", err)
		}

		if len(out.Items) > 0 {
			obj, err := unmarshalObject[T](out.Items[0])
			if err != nil {
				return nil, err
			}
			return &obj, nil
		}

		// A filter expression can produce empty pages before a match.
		if len(out.LastEvaluatedKey) == 0 {
			return nil, nil
		}
		lastEvaluatedKey = out.LastEvaluatedKey
	}
}

// Count returns the number of objects matching the query, summed over all
// pages, without transferring the objects themselves.
func (q *QueryHandle[T]) Count(ctx context.Context, opts *opmodels.Options) (int64, error) {
	input, err := q.queryInput()
	if err != nil {
		return 0, err
	}
	input.Select = types.SelectCount
	input.Limit = nil

	client, err := q.store.clientFor("count", opts)
	if err != nil {
		return 0, err
	}

	var total int64
	for {
		out, err := client.Query(ctx, input)
		if err != nil {
			return 0, fmt.Errorf("query error: %w", err)
		}
		total += int64(out.Count)

		if len(out.LastEvaluatedKey) == 0 {
			return total, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// unmarshalObject converts a raw item to T, stripping the injected
// ClassName attribute first.
func unmarshalObject[T any](item map[string]types.AttributeValue) (T, error) {
	var result T

	cleaned := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		if k == classNameAttr {
			continue
		}
		cleaned[k] = v
	}

	if err := attributevalue.UnmarshalMap(cleaned, &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal item to type %T: %w", result, err)
	}
	return result, nil
}
