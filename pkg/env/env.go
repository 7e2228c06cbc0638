package env

import (
	"fmt"
	"os"
	"strings"

	pkgstrings "github.com/stafftools/staff-service/pkg/strings"
)

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("parse environment: %w", err))
	}

	return val
}

func Parse[T pkgstrings.SupportedValueParsingTypes](key string) (T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		var blank T
		return blank, fmt.Errorf("env %s not found", key)
	}

	v, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		var blank T
		return blank, fmt.Errorf("env %s: %w", key, err)
	}

	return v, nil
}

// ParseOptional returns nil without an error when the variable is unset.
func ParseOptional[T pkgstrings.SupportedValueParsingTypes](key string) (*T, error) {
	if _, ok := os.LookupEnv(key); !ok {
		return nil, nil
	}

	v, err := Parse[T](key)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func ParseList[T pkgstrings.SupportedValueParsingTypes](key, delimiter string) ([]T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		return nil, fmt.Errorf("env %s not found", key)
	}

	items := strings.Split(str, delimiter)
	result := make([]T, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		v, err := pkgstrings.ParseTypedValue[T](item)
		if err != nil {
			return nil, fmt.Errorf("env %s: %w", key, err)
		}

		result = append(result, v)
	}

	return result, nil
}
