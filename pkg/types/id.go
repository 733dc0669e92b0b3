// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strconv"

	"go.yaml.in/yaml/v3"
)

// ID holds either a text or a numeric identifier, never both.
type ID struct {
	text    string
	num     int64
	numeric bool
}

// TextID returns an ID holding s.
func TextID(s string) ID {
	return ID{text: s}
}

// NumberID returns an ID holding n.
func NumberID(n int64) ID {
	return ID{num: n, numeric: true}
}

// IsNumber reports whether the ID holds a number.
func (id ID) IsNumber() bool {
	return id.numeric
}

// Number returns the numeric value and whether the ID holds one.
func (id ID) Number() (int64, bool) {
	return id.num, id.numeric
}

// Text returns the text value and whether the ID holds one.
func (id ID) Text() (string, bool) {
	return id.text, !id.numeric
}

func (id ID) String() string {
	if id.numeric {
		return strconv.FormatInt(id.num, 10)
	}
	return id.text
}

// MarshalYAML renders the ID as its underlying scalar.
func (id ID) MarshalYAML() (any, error) {
	if id.numeric {
		return id.num, nil
	}
	return id.text, nil
}

// UnmarshalYAML accepts an integer or a string scalar.
func (id *ID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*id = NumberID(n)
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	*id = TextID(s)
	return nil
}
