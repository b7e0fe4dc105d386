/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/objectops/opmodels"
	"github.com/suparena/objectops/registry"
)

// FindStream performs a streaming find with configurable retry, buffering
// and progress reporting. Results arrive on the returned channel; the
// channel is closed when the result set is exhausted, the context is
// cancelled, or an unrecoverable error has been emitted.
func (q *QueryHandle[T]) FindStream(ctx context.Context, opts *opmodels.Options, streamOpts ...opmodels.StreamOption) <-chan opmodels.StreamResult[T] {
	options := opmodels.DefaultStreamOptions()
	for _, opt := range streamOpts {
		opt(&options)
	}

	resultCh := make(chan opmodels.StreamResult[T], options.BufferSize)

	go q.streamWorker(ctx, opts, options, resultCh)

	return resultCh
}

func (q *QueryHandle[T]) streamWorker(
	ctx context.Context,
	opts *opmodels.Options,
	options opmodels.StreamOptions,
	resultCh chan<- opmodels.StreamResult[T],
) {
	defer close(resultCh)

	var itemIndex int64
	var pageNumber int
	startTime := time.Now()
	var errs []error

	reportProgress := func(lastKey map[string]types.AttributeValue) {
		if options.ProgressHandler == nil {
			return
		}
		progress := opmodels.StreamProgress{
			ItemsProcessed: itemIndex,
			PagesProcessed: pageNumber,
			LastKey:        lastKey,
			Errors:         errs,
			StartTime:      startTime,
		}
		if elapsed := time.Since(startTime).Seconds(); elapsed > 0 {
			progress.CurrentRate = float64(progress.ItemsProcessed) / elapsed
		}
		options.ProgressHandler(progress)
	}

	fail := func(err error) {
		resultCh <- opmodels.StreamResult[T]{
			Error: err,
			Meta: opmodels.StreamMeta{
				Index:      itemIndex,
				PageNumber: pageNumber,
				Timestamp:  time.Now(),
			},
		}
	}

	input, err := q.queryInput()
	if err != nil {
		fail(err)
		return
	}
	input.Limit = aws.Int32(options.PageSize)

	client, err := q.store.clientFor("find", opts)
	if err != nil {
		fail(err)
		return
	}

	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if lastEvaluatedKey != nil {
			input.ExclusiveStartKey = lastEvaluatedKey
		}

		out, err := q.queryWithRetry(ctx, client, input, options)
		if err != nil {
			if options.ErrorHandler != nil && options.ErrorHandler(err) {
				errs = append(errs, err)
				continue
			}
			fail(fmt.Errorf("query failed: %w", err))
			return
		}

		pageNumber++

		for _, item := range out.Items {
			select {
			case <-ctx.Done():
				return
			default:
			}

			result := q.processItem(item, itemIndex, pageNumber)
			itemIndex++

			select {
			case <-ctx.Done():
				return
			case resultCh <- result:
			}

			if result.Error != nil {
				errs = append(errs, result.Error)
			}
		}

		reportProgress(out.LastEvaluatedKey)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastEvaluatedKey = out.LastEvaluatedKey
	}

	reportProgress(nil)
}

// queryWithRetry executes a query with configurable retry logic
func (q *QueryHandle[T]) queryWithRetry(
	ctx context.Context,
	client *sdk.Client,
	input *sdk.QueryInput,
	options opmodels.StreamOptions,
) (*sdk.QueryOutput, error) {
	var lastErr error

	for attempt := 0; attempt <= options.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		out, err := client.Query(ctx, input)
		if err == nil {
			return out, nil
		}

		lastErr = err

		if !isRetryableError(err) {
			return nil, err
		}

		if attempt < options.MaxRetries {
			// Linear backoff scaled by attempt number
			backoff := time.Duration(attempt+1) * options.RetryBackoff
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("query failed after %d retries: %w", options.MaxRetries, lastErr)
}

// processItem converts a raw item to a typed stream result
func (q *QueryHandle[T]) processItem(
	item map[string]types.AttributeValue,
	index int64,
	pageNumber int,
) opmodels.StreamResult[T] {
	meta := opmodels.StreamMeta{
		Index:      index,
		PageNumber: pageNumber,
		Timestamp:  time.Now(),
	}

	rawCopy := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		rawCopy[k] = v
	}

	var className string
	if attr, ok := item[classNameAttr]; ok {
		if err := attributevalue.Unmarshal(attr, &className); err != nil {
			return opmodels.StreamResult[T]{
				Error: fmt.Errorf("failed to unmarshal %s: %w", classNameAttr, err),
				Raw:   rawCopy,
				Meta:  meta,
			}
		}
	}

	// Try the direct typed unmarshal first.
	if obj, err := unmarshalObject[T](item); err == nil {
		return opmodels.StreamResult[T]{
			Item: obj,
			Raw:  rawCopy,
			Meta: meta,
		}
	}

	// Fall back to the class registry for polymorphic items.
	if className != "" {
		if unmarshalFn, err := registry.GetUnmarshalFunc(className); err == nil {
			if obj, err := unmarshalFn(rawCopy); err == nil {
				if typedObj, ok := obj.(T); ok {
					return opmodels.StreamResult[T]{
						Item: typedObj,
						Raw:  rawCopy,
						Meta: meta,
					}
				}
			}
		}
	}

	var zero T
	return opmodels.StreamResult[T]{
		Error: fmt.Errorf("failed to unmarshal item to type %T", zero),
		Raw:   rawCopy,
		Meta:  meta,
	}
}

// isRetryableError determines if a DynamoDB error is retryable
func isRetryableError(err error) bool {
	switch err.(type) {
	case *types.ProvisionedThroughputExceededException:
		return true
	case *types.RequestLimitExceeded:
		return true
	case *types.InternalServerError:
		return true
	}

	if awsErr, ok := err.(interface{ IsRetryable() bool }); ok {
		return awsErr.IsRetryable()
	}

	return false
}
