// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tour walks through a fixed sequence of type-system demonstrations:
// annotated scalars, a record with an optional field, a generic identity
// function and a union-constrained formatter. Each printed step is captured
// as a Step so it can be rendered as text, as YAML, or recorded.
package tour

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/typetour/pkg/types"
)

// DefaultName is the person greeted when no name is configured.
const DefaultName = "Gaurav"

// DefaultAge is the age used when neither a name nor an age is configured.
const DefaultAge = 23

// ErrUnknownFormat is returned by Render for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Step is one printed statement of the tour.
type Step struct {
	Name    string        `yaml:"name"`
	Section types.Section `yaml:"section"`
	Value   any           `yaml:"value"`
	Text    string        `yaml:"text"`
}

// Tour builds and renders the steps for one run.
type Tour struct {
	person types.Person
	logger *zap.Logger
}

// New returns a Tour greeting the person described by cfg. An empty config
// greets DefaultName aged DefaultAge. A nil logger discards diagnostics.
func New(cfg types.GreetConfig, logger *zap.Logger) *Tour {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := types.Person{Name: cfg.Name, Age: cfg.Age}
	if p.Name == "" {
		p.Name = DefaultName
		if p.Age == nil {
			p = types.NewPerson(DefaultName, DefaultAge)
		}
	}
	return &Tour{person: p, logger: logger}
}

// Person returns the record the tour greets.
func (t *Tour) Person() types.Person {
	return t.person
}

// Steps evaluates the tour top to bottom and returns the printed steps in
// order. Statements that print nothing are reported at debug level.
func (t *Tour) Steps() []Step {
	var steps []Step
	emit := func(section types.Section, name string, v any) {
		steps = append(steps, Step{Name: name, Section: section, Value: v, Text: render(v)})
	}

	var message string = "Hello typescript"
	emit(types.SectionAnnotations, "message", message)

	var rno int = 101
	emit(types.SectionAnnotations, "rno", rno)

	var isEnabled bool = false
	emit(types.SectionAnnotations, "isEnabled", isEnabled)

	var list [4]int = [4]int{1, 2, 3, 4}
	emit(types.SectionAnnotations, "list", list)

	sum := Add(3, 4)
	t.logger.Debug("evaluated add", zap.Int("a", 3), zap.Int("b", 4), zap.Int("sum", sum))

	var greeting strings.Builder
	_ = Greet(&greeting, t.person)
	steps = append(steps, Step{
		Name:    "greet",
		Section: types.SectionInterfaces,
		Value:   t.person,
		Text:    strings.TrimSuffix(greeting.String(), "\n"),
	})

	number := Identity[int](43)
	str := Identity[string]("yashada")
	isBool := Identity[bool](true)
	num := Identity[[]int]([]int{1, 2, 3})
	obj := Identity[types.Profile](types.Profile{Name: "gaurav", Age: 18})
	inferred := Identity("auto inferred")

	emit(types.SectionGenerics, "number", number)
	emit(types.SectionGenerics, "string", str)
	emit(types.SectionGenerics, "isbool", isBool)
	emit(types.SectionGenerics, "num", num)
	emit(types.SectionGenerics, "obj", obj)
	emit(types.SectionGenerics, "inferred", inferred)

	x := 5
	t.logger.Debug("inferred type", zap.String("name", "x"), zap.String("type", fmt.Sprintf("%T", x)))

	t.logger.Debug("formatted union",
		zap.String("number", Format(42)),
		zap.String("text", Format("42")))

	for _, id := range []types.ID{types.TextID("user-7"), types.NumberID(7)} {
		t.logger.Debug("id alias", zap.Stringer("id", id), zap.Bool("numeric", id.IsNumber()))
	}

	var direction types.Direction = types.DirectionLeft
	t.logger.Debug("literal type", zap.String("direction", string(direction)))

	return steps
}

// Render writes steps to w in the requested format.
func Render(w io.Writer, steps []Step, format types.OutputFormat) error {
	switch format {
	case types.OutputText, "":
		for _, s := range steps {
			if _, err := fmt.Fprintln(w, s.Text); err != nil {
				return err
			}
		}
		return nil
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string][]Step{"steps": steps}); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Lines converts steps into transcript lines numbered from 1.
func Lines(steps []Step) []types.Line {
	lines := make([]types.Line, len(steps))
	for i, s := range steps {
		lines[i] = types.Line{Seq: i + 1, Name: s.Name, Section: s.Section, Text: s.Text}
	}
	return lines
}

// render mirrors a console print: records show their field names.
func render(v any) string {
	if _, ok := v.(types.Profile); ok {
		return fmt.Sprintf("%+v", v)
	}
	return fmt.Sprint(v)
}
