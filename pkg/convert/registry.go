package convert

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrConverterNotFound = errors.New("converter not found")
	ErrConverterConflict = errors.New("converter already registered")
)

type (
	// Converter is a type-erased conversion entry for a single (source, target) pair.
	Converter interface {
		SourceType() reflect.Type
		TargetType() reflect.Type
		Convert(value any) (any, error)
	}

	// Registry dispatches a value to the converter registered for
	// (runtime type of value, target type). It is built once from an explicit
	// converter list and read-only afterwards, so concurrent Convert calls
	// need no synchronization.
	Registry interface {
		Convert(value any, target reflect.Type) (any, error)
		Lookup(source, target reflect.Type) (Converter, bool)
		Converters() []Converter
	}

	Func[S, T any] func(S) (T, error)

	typePair struct {
		source reflect.Type
		target reflect.Type
	}
)

// NewRegistry builds a registry from the converter list. Two converters for
// the same (source, target) pair fail construction with ErrConverterConflict:
// a duplicate is a wiring mistake, detected here rather than by silent
// last-write-wins at call time.
func NewRegistry(converters ...Converter) (Registry, error) {
	entries := make(map[typePair]Converter, len(converters))
	for _, converter := range converters {
		pair := typePair{converter.SourceType(), converter.TargetType()}
		if _, ok := entries[pair]; ok {
			return nil, fmt.Errorf("%w: %s to %s", ErrConverterConflict, pair.source, pair.target)
		}

		entries[pair] = converter
	}

	return registry{entries}, nil
}

func MustRegistry(converters ...Converter) Registry {
	result, err := NewRegistry(converters...)
	if err != nil {
		panic(err)
	}

	return result
}

// New wraps a typed conversion function into a type-erased Converter entry,
// deriving the (source, target) pair from the type parameters.
func New[S, T any](fn Func[S, T]) Converter {
	return funcConverter[S, T]{fn}
}

// To converts value to T through the registry, asserting the result type at
// the call site. It is the typed companion of Registry.Convert for callers
// that know the target statically.
func To[T any](r Registry, value any) (T, error) {
	var blank T
	result, err := r.Convert(value, reflect.TypeOf(blank))
	if err != nil {
		return blank, err
	}

	typed, ok := result.(T)
	if !ok {
		return blank, fmt.Errorf("converter returned %T, expected %T", result, blank)
	}

	return typed, nil
}

type registry struct {
	entries map[typePair]Converter
}

func (r registry) Convert(value any, target reflect.Type) (any, error) {
	converter, ok := r.Lookup(reflect.TypeOf(value), target)
	if !ok {
		return nil, fmt.Errorf("%w: %T to %s", ErrConverterNotFound, value, target)
	}

	return converter.Convert(value)
}

func (r registry) Lookup(source, target reflect.Type) (Converter, bool) {
	converter, ok := r.entries[typePair{source, target}]
	return converter, ok
}

func (r registry) Converters() []Converter {
	result := make([]Converter, 0, len(r.entries))
	for _, converter := range r.entries {
		result = append(result, converter)
	}

	return result
}

type funcConverter[S, T any] struct {
	fn Func[S, T]
}

func (c funcConverter[S, T]) SourceType() reflect.Type {
	return reflect.TypeOf((*S)(nil)).Elem()
}

func (c funcConverter[S, T]) TargetType() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func (c funcConverter[S, T]) Convert(value any) (any, error) {
	source, ok := value.(S)
	if !ok {
		var blank S
		return nil, fmt.Errorf("%w: got %T, registered for %T", ErrConverterNotFound, value, blank)
	}

	return c.fn(source)
}
