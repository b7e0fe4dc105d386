/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package opmodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Options is the pass-through configuration bag accepted by every facade
// operation. The facade forwards it unchanged; which keys are honored is
// defined entirely by the backend the handle belongs to.
type Options struct {
	// UseMasterKey asks the backend to perform the call with elevated
	// credentials. Backends without master credentials configured reject
	// elevated calls.
	UseMasterKey bool
	// SessionToken identifies the acting session for backends that scope
	// permissions per session. Ignored by backends without sessions.
	SessionToken string
}

// QueryParams defines parameters for a query handle against the DynamoDB
// reference backend. Used for Find, First, Count and FindStream.
type QueryParams struct {
	// KeyConditionExpression is the primary condition for the query.
	KeyConditionExpression string
	// FilterExpression is an optional filter expression.
	FilterExpression *string
	// ExpressionAttributeValues contains the values for expression placeholders.
	ExpressionAttributeValues map[string]types.AttributeValue
	// IndexName is optional if you wish to query a secondary index.
	IndexName *string
	// Limit caps the total number of objects returned by Find.
	Limit *int32
	// ScanIndexForward specifies the order for index traversal.
	// If true (default), traversal is in ascending order.
	// If false, traversal is in descending order.
	ScanIndexForward *bool
}
