// Package ordered provides ordered, deterministic traversal of maps.
package ordered // import "github.com/CognitoIQ/go-xsd/internal/ordered"

import "sort"

// Keys returns the keys of m in sorted order.
func Keys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RangeMap calls fn on each key/value pair of m, in the sorted order of
// its keys. Iteration stops early if fn returns false.
func RangeMap[V any](m map[string]V, fn func(string, V) bool) {
	for _, k := range Keys(m) {
		if !fn(k, m[k]) {
			return
		}
	}
}

// KeyOf returns the smallest key of m whose value is v, so that
// reverse lookups in a map with duplicate values are repeatable.
func KeyOf[V comparable](m map[string]V, v V) (string, bool) {
	for _, k := range Keys(m) {
		if m[k] == v {
			return k, true
		}
	}
	return "", false
}
