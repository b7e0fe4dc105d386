/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"
)

// KeyMapRegistry is a registry for Go types and their backend key maps.

var (
	keyMapRegistry = make(map[reflect.Type]map[string]string)
	mu             sync.RWMutex
)

// RegisterKeyMap associates a Go type T with a given key map (PK, SK, etc.).
// Templates may contain field macros, e.g. "GAMESCORE#{ObjectID}".
func RegisterKeyMap[T any](keyMap map[string]string) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.Lock()
	defer mu.Unlock()
	keyMapRegistry[t] = keyMap
}

// GetKeyMap retrieves the key map for type T, if any.
func GetKeyMap[T any]() (map[string]string, bool) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.RLock()
	defer mu.RUnlock()
	m, ok := keyMapRegistry[t]
	return m, ok
}
