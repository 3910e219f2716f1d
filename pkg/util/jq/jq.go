package jq

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/itchyny/gojq"
)

// ErrNotFound is returned when a JQ query doesn't find the requested field.
var ErrNotFound = errors.New("field not found")

// convertValue converts a value to a JQ-compatible format.
// Maps and slices are passed through directly; anything else is normalized
// through a JSON round trip.
func convertValue(value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Map:
		if m, ok := value.(map[string]any); ok {
			return m, nil
		}
	case reflect.Slice:
		if s, ok := value.([]any); ok {
			return s, nil
		}
	default:
	}

	// Raw JSON documents are decoded rather than re-encoded.
	if raw, ok := value.([]byte); ok {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, fmt.Errorf("failed to decode JSON document: %w", err)
		}

		return decoded, nil
	}

	var normalizedValue any
	jsonBytes, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}

	if err := json.Unmarshal(jsonBytes, &normalizedValue); err != nil {
		return nil, fmt.Errorf("failed to unmarshal value: %w", err)
	}

	return normalizedValue, nil
}

// Query executes a JQ query against the provided value and returns the first result
// cast to type T. Tries direct type assertion first (zero-cost when types match),
// then falls back to JSON conversion if needed.
// When the query returns nil/null, returns ErrNotFound.
func Query[T any](value any, jqQuery string) (T, error) {
	var zero T

	compiledQuery, err := gojq.Parse(jqQuery)
	if err != nil {
		return zero, fmt.Errorf("failed to parse jq query: %w", err)
	}

	normalizedValue, err := convertValue(value)
	if err != nil {
		return zero, err
	}

	result, ok := compiledQuery.Run(normalizedValue).Next()
	if !ok {
		return zero, ErrNotFound
	}

	if err, isErr := result.(error); isErr {
		return zero, fmt.Errorf("jq query error: %w", err)
	}

	if result == nil {
		return zero, ErrNotFound
	}

	if typed, ok := result.(T); ok {
		return typed, nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return zero, fmt.Errorf("marshaling query result: %w", err)
	}

	var convertedResult T
	if err := json.Unmarshal(data, &convertedResult); err != nil {
		return zero, fmt.Errorf("unmarshaling to type %T: %w", zero, err)
	}

	return convertedResult, nil
}

// QueryAll executes a JQ query and collects every emitted result as type T.
// Null results are skipped.
func QueryAll[T any](value any, jqQuery string) ([]T, error) {
	compiledQuery, err := gojq.Parse(jqQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to parse jq query: %w", err)
	}

	normalizedValue, err := convertValue(value)
	if err != nil {
		return nil, err
	}

	var results []T

	iter := compiledQuery.Run(normalizedValue)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}

		if err, isErr := v.(error); isErr {
			return nil, fmt.Errorf("jq query error: %w", err)
		}

		if v == nil {
			continue
		}

		typed, ok := v.(T)
		if !ok {
			return nil, fmt.Errorf("jq result %v is %T, not %T", v, v, typed)
		}

		results = append(results, typed)
	}

	return results, nil
}
