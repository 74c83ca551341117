// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bundle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

func Encode(b Bundle) ([]byte, error) {
	if b == nil {
		b = Bundle{}
	}
	return toml.Marshal(map[string]any(b))
}

func Decode(data []byte) (Bundle, error) {
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode bundle: %w", err)
	}
	return FromMap(m), nil
}

// FromMap adopts a generically decoded map as a Bundle.
func FromMap(m map[string]any) Bundle {
	if m == nil {
		return Bundle{}
	}
	return normalize(m)
}

// ParseAssignments builds a bundle from key=value pairs. Integer and boolean
// literals are stored typed; everything else is kept as text.
func ParseAssignments(pairs []string) (Bundle, error) {
	b := Bundle{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid param %q: expected key=value", pair)
		}
		value = strings.TrimSpace(value)
		if n, err := strconv.Atoi(value); err == nil {
			b.PutInt(key, n)
			continue
		}
		switch strings.ToLower(value) {
		case "true":
			b.PutBool(key, true)
			continue
		case "false":
			b.PutBool(key, false)
			continue
		}
		b.PutString(key, value)
	}
	return b, nil
}

// String renders the bundle on one line with sorted keys, e.g. {id=42 name="x"}.
func (b Bundle) String() string {
	if b == nil {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range b.Keys() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		switch v := b[k].(type) {
		case string:
			sb.WriteString(strconv.Quote(v))
		case Bundle:
			sb.WriteString(v.String())
		case map[string]any:
			sb.WriteString(Bundle(v).String())
		default:
			fmt.Fprintf(&sb, "%v", v)
		}
	}
	sb.WriteByte('}')
	return sb.String()
}
