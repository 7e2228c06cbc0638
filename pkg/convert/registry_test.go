package convert_test

import (
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftools/staff-service/pkg/convert"
)

type (
	celsius    float64
	fahrenheit float64
)

func TestRegistry_Convert_Returns(t *testing.T) {
	errBelowAbsoluteZero := errors.New("below absolute zero")

	celsiusToFahrenheit := convert.New(func(c celsius) (fahrenheit, error) {
		if c < -273.15 {
			return 0, errBelowAbsoluteZero
		}
		return fahrenheit(float64(c)*9/5 + 32), nil
	})
	intToString := convert.New(func(v int) (string, error) {
		return strconv.Itoa(v), nil
	})

	tests := []struct {
		name   string
		value  any
		target reflect.Type
		expect func(t *testing.T, result any, err error)
	}{
		{
			name:   "success_with_registered_pair",
			value:  celsius(100),
			target: reflect.TypeOf(fahrenheit(0)),
			expect: func(t *testing.T, result any, err error) {
				require.NoError(t, err)
				assert.Equal(t, fahrenheit(212), result)
			},
		},
		{
			name:   "success_with_other_registered_pair",
			value:  42,
			target: reflect.TypeOf(""),
			expect: func(t *testing.T, result any, err error) {
				require.NoError(t, err)
				assert.Equal(t, "42", result)
			},
		},
		{
			name:   "error_when_pair_not_registered",
			value:  "42",
			target: reflect.TypeOf(0),
			expect: func(t *testing.T, result any, err error) {
				assert.ErrorIs(t, err, convert.ErrConverterNotFound)
				assert.Nil(t, result)
			},
		},
		{
			name:   "error_when_only_reversed_pair_registered",
			value:  fahrenheit(212),
			target: reflect.TypeOf(celsius(0)),
			expect: func(t *testing.T, result any, err error) {
				assert.ErrorIs(t, err, convert.ErrConverterNotFound)
				assert.Nil(t, result)
			},
		},
		{
			name:   "converter_error_propagates_unwrapped",
			value:  celsius(-300),
			target: reflect.TypeOf(fahrenheit(0)),
			expect: func(t *testing.T, result any, err error) {
				assert.ErrorIs(t, err, errBelowAbsoluteZero)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			registry, err := convert.NewRegistry(celsiusToFahrenheit, intToString)
			require.NoError(t, err)

			result, err := registry.Convert(tc.value, tc.target)
			tc.expect(t, result, err)
		})
	}
}

func TestRegistry_Convert_MatchesDirectCall(t *testing.T) {
	toFahrenheit := func(c celsius) (fahrenheit, error) {
		return fahrenheit(float64(c)*9/5 + 32), nil
	}

	registry, err := convert.NewRegistry(convert.New(toFahrenheit))
	require.NoError(t, err)

	for _, value := range []celsius{-40, 0, 36.6, 100} {
		direct, err := toFahrenheit(value)
		require.NoError(t, err)

		viaRegistry, err := convert.To[fahrenheit](registry, value)
		require.NoError(t, err)
		assert.Equal(t, direct, viaRegistry)
	}
}

func TestNewRegistry_DuplicatePair_Fails(t *testing.T) {
	first := convert.New(func(v int) (string, error) { return strconv.Itoa(v), nil })
	second := convert.New(func(v int) (string, error) { return "other", nil })

	registry, err := convert.NewRegistry(first, second)
	assert.ErrorIs(t, err, convert.ErrConverterConflict)
	assert.Nil(t, registry)
}

func TestNewRegistry_SameSourceDifferentTargets_Succeeds(t *testing.T) {
	registry, err := convert.NewRegistry(
		convert.New(func(v int) (string, error) { return strconv.Itoa(v), nil }),
		convert.New(func(v int) (float64, error) { return float64(v), nil }),
	)
	require.NoError(t, err)

	str, err := convert.To[string](registry, 7)
	require.NoError(t, err)
	assert.Equal(t, "7", str)

	f, err := convert.To[float64](registry, 7)
	require.NoError(t, err)
	assert.Equal(t, 7.0, f)
}

func TestRegistry_Lookup(t *testing.T) {
	converter := convert.New(func(v int) (string, error) { return strconv.Itoa(v), nil })
	registry := convert.MustRegistry(converter)

	found, ok := registry.Lookup(reflect.TypeOf(0), reflect.TypeOf(""))
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(0), found.SourceType())
	assert.Equal(t, reflect.TypeOf(""), found.TargetType())

	_, ok = registry.Lookup(reflect.TypeOf(""), reflect.TypeOf(0))
	assert.False(t, ok)

	assert.Len(t, registry.Converters(), 1)
}
