package registry

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// UnmarshalFunc defines a function that takes a raw backend item and returns the unmarshaled object.
type UnmarshalFunc func(item map[string]types.AttributeValue) (interface{}, error)

// classRegistry holds the mapping from a class name (like "GameScore") to its unmarshal function.
var classRegistry = make(map[string]UnmarshalFunc)

// RegisterClass registers an unmarshal function for a given class name.
// If a class is already registered under the given name, it panics to prevent accidental overrides.
func RegisterClass(name string, fn UnmarshalFunc) {
	if _, exists := classRegistry[name]; exists {
		panic(fmt.Sprintf("class registry: class %q already registered", name))
	}
	classRegistry[name] = fn
}

// GetUnmarshalFunc returns the registered unmarshal function for the given class name.
// If no function is registered, it returns an error.
func GetUnmarshalFunc(name string) (UnmarshalFunc, error) {
	fn, ok := classRegistry[name]
	if !ok {
		return nil, fmt.Errorf("class registry: no class registered under %q", name)
	}
	return fn, nil
}
