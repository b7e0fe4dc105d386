/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	opserrors "github.com/suparena/objectops/errors"
	"github.com/suparena/objectops/opmodels"
	"github.com/suparena/objectops/registry"
)

// classNameAttr is the attribute injected at save time so that polymorphic
// reads can resolve the object's type through the class registry.
const classNameAttr = "ClassName"

// Store holds the DynamoDB clients and table a set of handles operates on.
// The standard client carries the application credentials; the optional
// master client carries elevated credentials and is selected when an
// operation is called with Options.UseMasterKey.
type Store struct {
	client    *sdk.Client
	master    *sdk.Client
	tableName string
}

// NewClient initializes a DynamoDB client using static AWS credentials.
func NewClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg), nil
}

// NewStore constructs a Store over the given table using standard credentials.
func NewStore(awsAccessKey, awsSecretKey, awsRegion, tableName string) (*Store, error) {
	client, err := NewClient(awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	return &Store{
		client:    client,
		tableName: tableName,
	}, nil
}

// WithMasterCredentials attaches an elevated-credentials client to the store.
// Operations called with Options.UseMasterKey run on this client.
func (s *Store) WithMasterCredentials(awsAccessKey, awsSecretKey, awsRegion string) (*Store, error) {
	master, err := NewClient(awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create master DynamoDB client: %w", err)
	}
	s.master = master
	return s, nil
}

// TableName returns the table this store operates on.
func (s *Store) TableName() string {
	return s.tableName
}

// clientFor selects the client an operation runs on based on its options.
func (s *Store) clientFor(operation string, opts *opmodels.Options) (*sdk.Client, error) {
	if opts != nil && opts.UseMasterKey {
		if s.master == nil {
			return nil, opserrors.NewMasterKeyRequiredError(operation)
		}
		return s.master, nil
	}
	return s.client, nil
}

// ObjectHandle addresses a single object of type T in the store.
// It implements the record-side capabilities (Fetch, Save, Destroy).
type ObjectHandle[T any] struct {
	store    *Store
	objectID string
	object   *T
}

// NewObjectHandle creates a handle addressing the object with the given id.
func NewObjectHandle[T any](store *Store, objectID string) *ObjectHandle[T] {
	return &ObjectHandle[T]{store: store, objectID: objectID}
}

// WithObject attaches the object value a subsequent Save will persist.
func (h *ObjectHandle[T]) WithObject(object *T) *ObjectHandle[T] {
	h.object = object
	return h
}

// ObjectID returns the id this handle addresses.
func (h *ObjectHandle[T]) ObjectID() string {
	return h.objectID
}

// Object returns the handle's current object value, nil before the first
// Fetch or WithObject.
func (h *ObjectHandle[T]) Object() *T {
	return h.object
}

// Fetch refreshes the handle's object from DynamoDB and returns the handle.
func (h *ObjectHandle[T]) Fetch(ctx context.Context, opts *opmodels.Options) (*ObjectHandle[T], error) {
	keyMap, ok := registry.GetKeyMap[T]()
	if !ok {
		return nil, opserrors.ErrNoKeyMap
	}

	keyAttrs, err := buildKeyFromExpanded(expandStringKey(keyMap, h.objectID))
	if err != nil {
		return nil, fmt.Errorf("failed to build key: %w", err)
	}

	client, err := h.store.clientFor("fetch", opts)
	if err != nil {
		return nil, err
	}

	out, err := client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &h.store.tableName,
		Key:       keyAttrs,
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, opserrors.NewObjectNotFoundError(typeName[T](), h.objectID)
	}

	result := new(T)
	if err := attributevalue.UnmarshalMap(out.Item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	h.object = result
	return h, nil
}

// Save persists the handle's object to DynamoDB, populating partition and
// sort keys from the registered key map, and returns the handle.
func (h *ObjectHandle[T]) Save(ctx context.Context, opts *opmodels.Options) (*ObjectHandle[T], error) {
	if h.object == nil {
		return nil, fmt.Errorf("no object attached to handle %q", h.objectID)
	}

	keyMap, ok := registry.GetKeyMap[T]()
	if !ok {
		return nil, opserrors.ErrNoKeyMap
	}

	av, err := attributevalue.MarshalMap(*h.object)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal object: %w", err)
	}

	expanded, err := expandMacros(keyMap, *h.object)
	if err != nil {
		return nil, err
	}
	for k, v := range expanded {
		av[k] = &types.AttributeValueMemberS{Value: v}
	}
	av[classNameAttr] = &types.AttributeValueMemberS{Value: typeName[T]()}

	client, err := h.store.clientFor("save", opts)
	if err != nil {
		return nil, err
	}

	_, err = client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &h.store.tableName,
		Item:      av,
	})
	if err != nil {
		return nil, fmt.Errorf("PutItem failed: %w", err)
	}
	return h, nil
}

// Destroy deletes the addressed object from DynamoDB and returns the handle.
func (h *ObjectHandle[T]) Destroy(ctx context.Context, opts *opmodels.Options) (*ObjectHandle[T], error) {
	keyMap, ok := registry.GetKeyMap[T]()
	if !ok {
		return nil, opserrors.ErrNoKeyMap
	}

	keyAttrs, err := buildKeyFromExpanded(expandStringKey(keyMap, h.objectID))
	if err != nil {
		return nil, fmt.Errorf("failed to build key for Destroy: %w", err)
	}

	client, err := h.store.clientFor("destroy", opts)
	if err != nil {
		return nil, err
	}

	_, err = client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &h.store.tableName,
		Key:       keyAttrs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}
	return h, nil
}

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// expandMacros fills the key map's field macros (e.g. "GAMESCORE#{ObjectID}")
// from the object's attribute values.
func expandMacros(keyMap map[string]string, object any) (map[string]string, error) {
	av, err := attributevalue.MarshalMap(object)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal object for key expansion: %w", err)
	}

	res := make(map[string]string, len(keyMap))
	for fieldName, template := range keyMap {
		expanded := macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			key := strings.Trim(macro, "{}")
			val, ok := av[key]
			if !ok {
				return ""
			}
			switch tv := val.(type) {
			case *types.AttributeValueMemberS:
				return tv.Value
			case *types.AttributeValueMemberN:
				return tv.Value
			case *types.AttributeValueMemberBOOL:
				return fmt.Sprintf("%v", tv.Value)
			default:
				// NULL, binary and set members have no usable key form
				return ""
			}
		})
		res[fieldName] = expanded
	}
	return res, nil
}

// expandStringKey replaces every macro in the key map's templates with the
// provided object id.
func expandStringKey(keyMap map[string]string, objectID string) map[string]string {
	expanded := make(map[string]string, len(keyMap))
	for field, template := range keyMap {
		expanded[field] = macroPattern.ReplaceAllString(template, objectID)
	}
	return expanded
}

// buildKeyFromExpanded builds a DynamoDB key from the expanded key map.
// It requires non-empty values for "PK" and "SK".
func buildKeyFromExpanded(expanded map[string]string) (map[string]types.AttributeValue, error) {
	pk, okPK := expanded["PK"]
	sk, okSK := expanded["SK"]

	if !okPK || !okSK || pk == "" || sk == "" {
		return nil, fmt.Errorf("expanded key map missing valid PK or SK")
	}

	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}, nil
}

// typeName returns the class name used for ClassName injection and errors.
func typeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return "interface{}"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
