// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// Direction is a literal type: its only values are "left" and "right".
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// ErrInvalidDirection is returned when text is not a Direction literal.
var ErrInvalidDirection = errors.New("invalid direction")

// ParseDirection converts s to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case DirectionLeft, DirectionRight:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidDirection, s, DirectionLeft, DirectionRight)
}
