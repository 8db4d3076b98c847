// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509viewer

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// preferredDNOrder is the attribute order used by FormatDN.
var preferredDNOrder = []string{"CN", "OU", "O", "L", "ST", "C"}

// DistinguishedName maps attribute short names (or dotted OIDs for unknown
// attribute types) to their values, in the order they were first seen.
//
// Setting a key that already exists replaces its value and keeps its
// original position, so a name with two OU attributes reports only the last.
type DistinguishedName struct {
	attrs *orderedmap.OrderedMap[string, string]
}

// NewDistinguishedName returns an empty name.
func NewDistinguishedName() *DistinguishedName {
	return &DistinguishedName{attrs: orderedmap.New[string, string]()}
}

func (dn *DistinguishedName) init() {
	if dn.attrs == nil {
		dn.attrs = orderedmap.New[string, string]()
	}
}

// Set stores value under key.
func (dn *DistinguishedName) Set(key, value string) {
	dn.init()
	dn.attrs.Set(key, value)
}

// Get returns the value stored under key.
func (dn *DistinguishedName) Get(key string) (string, bool) {
	if dn == nil || dn.attrs == nil {
		return "", false
	}
	return dn.attrs.Get(key)
}

// Len returns the number of distinct attributes.
func (dn *DistinguishedName) Len() int {
	if dn == nil || dn.attrs == nil {
		return 0
	}
	return dn.attrs.Len()
}

// Keys returns the attribute names in insertion order.
func (dn *DistinguishedName) Keys() []string {
	if dn == nil || dn.attrs == nil {
		return nil
	}
	keys := make([]string, 0, dn.attrs.Len())
	for pair := dn.attrs.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func (dn *DistinguishedName) String() string { return FormatDN(dn) }

// MarshalJSON encodes the name as a JSON object preserving attribute order.
func (dn *DistinguishedName) MarshalJSON() ([]byte, error) {
	dn.init()
	return dn.attrs.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, keeping the key order of the input.
func (dn *DistinguishedName) UnmarshalJSON(data []byte) error {
	dn.init()
	return dn.attrs.UnmarshalJSON(data)
}

// MarshalYAML encodes the name as a YAML mapping preserving attribute order.
func (dn *DistinguishedName) MarshalYAML() (any, error) {
	dn.init()
	return dn.attrs.MarshalYAML()
}

// FormatDN renders a name as "CN=…, OU=…, O=…, L=…, ST=…, C=…".
// Attributes outside that list follow in insertion order. Empty values are
// skipped.
func FormatDN(dn *DistinguishedName) string {
	if dn.Len() == 0 {
		return ""
	}

	parts := make([]string, 0, dn.Len())
	used := make(map[string]bool, len(preferredDNOrder))
	for _, key := range preferredDNOrder {
		used[key] = true
		if v, ok := dn.Get(key); ok && v != "" {
			parts = append(parts, key+"="+v)
		}
	}
	for pair := dn.attrs.Oldest(); pair != nil; pair = pair.Next() {
		if !used[pair.Key] && pair.Value != "" {
			parts = append(parts, pair.Key+"="+pair.Value)
		}
	}

	return strings.Join(parts, ", ")
}
