// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bundle implements the key-value argument bag that carries a dialog's
// configuration across a restart.
package bundle

import (
	"math"
	"slices"
	"sort"
)

// Bundle is a string-keyed bag of values. Values are strings, string lists,
// ints, bools or nested bundles.
type Bundle map[string]any

func New() Bundle { return Bundle{} }

func (b Bundle) Has(key string) bool {
	if b == nil {
		return false
	}
	_, ok := b[key]
	return ok
}

func (b Bundle) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (b Bundle) PutString(key, value string) { b[key] = value }

func (b Bundle) PutStrings(key string, values []string) {
	if values == nil {
		delete(b, key)
		return
	}
	b[key] = slices.Clone(values)
}

func (b Bundle) PutInt(key string, value int) { b[key] = value }

func (b Bundle) PutBool(key string, value bool) { b[key] = value }

func (b Bundle) PutBundle(key string, value Bundle) {
	if value == nil {
		delete(b, key)
		return
	}
	b[key] = value
}

func (b Bundle) GetString(key string) string {
	s, _ := b[key].(string)
	return s
}

// GetStrings returns the list stored under key. Lists decoded from TOML
// arrive as []any and are converted.
func (b Bundle) GetStrings(key string) []string {
	switch v := b[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil
			}
			out = append(out, s)
		}
		return out
	default:
		return nil
	}
}

// GetInt returns the int stored under key, or def when the key is missing or
// not an integer.
func (b Bundle) GetInt(key string, def int) int {
	switch v := b[key].(type) {
	case int:
		return v
	case int64:
		if v < math.MinInt || v > math.MaxInt {
			return def
		}
		return int(v)
	case int32:
		return int(v)
	case float64:
		if v == math.Trunc(v) {
			return int(v)
		}
	}
	return def
}

func (b Bundle) GetBool(key string, def bool) bool {
	v, ok := b[key].(bool)
	if !ok {
		return def
	}
	return v
}

// GetBundle returns the nested bundle under key or nil.
func (b Bundle) GetBundle(key string) Bundle {
	switch v := b[key].(type) {
	case Bundle:
		return v
	case map[string]any:
		return normalize(v)
	default:
		return nil
	}
}

// Clone returns a deep copy. Nested bundles and lists are copied so the
// original can be mutated by its owner afterwards.
func (b Bundle) Clone() Bundle {
	if b == nil {
		return nil
	}
	out := make(Bundle, len(b))
	for k, v := range b {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Bundle:
		return t.Clone()
	case map[string]any:
		return Bundle(t).Clone()
	case []string:
		return slices.Clone(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

// normalize converts the generic shapes produced by decoders into bundle
// shapes: nested maps become Bundles, int64 becomes int and string-only
// arrays become []string.
func normalize(m map[string]any) Bundle {
	out := make(Bundle, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return normalize(t)
	case Bundle:
		return normalize(t)
	case int64:
		if t >= math.MinInt && t <= math.MaxInt {
			return int(t)
		}
		return t
	case []any:
		strs := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				out := make([]any, len(t))
				for i, inner := range t {
					out[i] = normalizeValue(inner)
				}
				return out
			}
			strs = append(strs, s)
		}
		return strs
	default:
		return v
	}
}
