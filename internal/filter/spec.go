// Package filter narrows lists of pull request/issue pairs with declarative key=value filters.
package filter

import (
	"sort"
	"strings"
)

// Recognised filter keys. Any other key is parsed but never applied.
const (
	KeyOwner   = "owner"
	KeyLabel   = "label"
	KeyStatus  = "status"
	KeyComment = "comment"
)

// Spec maps a filter key to the value it must match
type Spec map[string]string

// ParseSpec parses "key=value,key=value". The last duplicate key wins and
// a segment without "=" yields an empty value for that key.
func ParseSpec(raw string) Spec {
	spec := Spec{}
	if raw == "" {
		return spec
	}

	for _, segment := range strings.Split(raw, ",") {
		key, value, _ := strings.Cut(segment, "=")
		spec[key] = value
	}
	return spec
}

// Has reports whether the key is present
func (s Spec) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// String renders the spec with keys sorted, for logging
func (s Spec) String() string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+"="+s[key])
	}
	return strings.Join(parts, ",")
}
