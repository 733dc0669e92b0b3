// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tour

import (
	"bytes"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/typetour/pkg/types"
)

func TestAdd(t *testing.T) {
	assert.Equal(t, 7, Add(3, 4))
	assert.Equal(t, 0, Add(-5, 5))
	assert.InDelta(t, 0.3, Add(0.1, 0.2), 1e-9)

	pairs := [][2]int{{0, 0}, {3, 4}, {-2, 9}, {math.MaxInt32, 1}}
	for _, p := range pairs {
		assert.Equal(t, Add(p[0], p[1]), Add(p[1], p[0]), "Add(%d, %d) is not commutative", p[0], p[1])
	}
}

func TestIdentity(t *testing.T) {
	assert.Equal(t, 43, Identity[int](43))
	assert.Equal(t, "yashada", Identity[string]("yashada"))
	assert.True(t, Identity[bool](true))
	assert.Equal(t, "auto inferred", Identity("auto inferred"))

	seq := []int{1, 2, 3}
	if diff := cmp.Diff(seq, Identity(seq)); diff != "" {
		t.Errorf("Identity([]int) mismatch (-want +got):\n%s", diff)
	}

	rec := types.Profile{Name: "gaurav", Age: 18}
	if diff := cmp.Diff(rec, Identity(rec)); diff != "" {
		t.Errorf("Identity(Profile) mismatch (-want +got):\n%s", diff)
	}

	p := types.NewPerson("Gaurav", 23)
	got := Identity(p)
	require.NotNil(t, got.Age)
	assert.Same(t, p.Age, got.Age, "identity must not copy through pointers")
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "int", got: Format(42), want: "42"},
		{name: "text", got: Format("42"), want: "42"},
		{name: "negative", got: Format(-7), want: "-7"},
		{name: "float", got: Format(2.5), want: "2.5"},
		{name: "whole float", got: Format(42.0), want: "42"},
		{name: "million float", got: Format(1e6), want: "1000000"},
		{name: "large float", got: Format(1e21), want: "1000000000000000000000"},
		{name: "small float", got: Format(0.000001), want: "0.000001"},
		{name: "float32", got: Format(float32(0.1)), want: "0.1"},
		{name: "large int", got: Format(int64(9007199254740993)), want: "9007199254740993"},
		{name: "empty text", got: Format(""), want: ""},
		{name: "named text", got: Format(types.DirectionRight), want: "right"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
	assert.Equal(t, Format(42), Format("42"))
}

func TestGreet(t *testing.T) {
	tests := []struct {
		name   string
		person types.Person
		want   string
	}{
		{
			name:   "name and age",
			person: types.NewPerson("Gaurav", 23),
			want:   "person name is Gaurav and age is 23\n",
		},
		{
			name:   "missing age",
			person: types.Person{Name: "Ada"},
			want:   "person name is Ada and age is undefined\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Greet(&buf, tt.person))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
