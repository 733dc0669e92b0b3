// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Person is a structural record with a required name and an optional age.
type Person struct {
	Name string `json:"name" yaml:"name"`
	Age  *int   `json:"age,omitempty" yaml:"age,omitempty"`
}

// NewPerson returns a Person with the age set.
func NewPerson(name string, age int) Person {
	return Person{Name: name, Age: &age}
}

// Profile is a record whose fields are both required. The tour passes it
// through the identity function as an inline record type.
type Profile struct {
	Name string `json:"name" yaml:"name"`
	Age  int    `json:"age" yaml:"age"`
}
