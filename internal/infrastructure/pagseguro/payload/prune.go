// Package payload assembles PagSeguro request bodies from a TransactionState.
//
// Key names are the wire contract of the PagSeguro APIs and must not be changed,
// including the legacy "notifcation_urls" key used for abandoned-cart URLs.
package payload

import "reflect"

// RequestMap is a wire-ready request body.
type RequestMap map[string]any

// Prune returns a new map without empty entries. Booleans are always kept, so an
// explicit false survives; nil, "", numeric zero, empty slices and maps, and nil
// pointers are dropped. Only top-level entries are inspected.
func Prune(m RequestMap) RequestMap {
	out := make(RequestMap, len(m))
	for k, v := range m {
		if keep(v) {
			out[k] = v
		}
	}
	return out
}

func keep(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return true
	case reflect.Slice, reflect.Map, reflect.Array, reflect.String:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	default:
		return !rv.IsZero()
	}
}
