// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tour

import (
	"fmt"
	"io"
	"reflect"
	"strconv"

	"github.com/pdiddy/typetour/pkg/types"
)

// undefinedAge is printed in place of an age that was never supplied.
const undefinedAge = "undefined"

// Number is the set of numeric types the tour accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Formattable is the union of text and numbers accepted by Format.
type Formattable interface {
	~string | Number
}

// Add returns a + b.
func Add[N Number](a, b N) N {
	return a + b
}

// Identity returns arg unchanged.
func Identity[T any](arg T) T {
	return arg
}

// Format returns the text representation of input. Floats are written in
// plain decimal, never in exponent form.
func Format[T Formattable](input T) string {
	switch v := reflect.ValueOf(input); v.Kind() {
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	}
	return fmt.Sprint(input)
}

// Greet writes a single greeting line for p to w.
func Greet(w io.Writer, p types.Person) error {
	_, err := fmt.Fprintf(w, "person name is %s and age is %s\n", p.Name, ageText(p.Age))
	return err
}

func ageText(age *int) string {
	if age == nil {
		return undefinedAge
	}
	return strconv.Itoa(*age)
}
