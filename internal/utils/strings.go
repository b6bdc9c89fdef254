package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCSV splits a comma-separated string and returns trimmed non-empty values.
// Returns nil for empty/whitespace-only input.
func ParseCSV(s string) []string {
	if s == "" {
		return nil
	}

	var result []string
	for _, v := range strings.Split(s, ",") {
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return nil
	}

	return result
}

// ParseIntCSV parses a comma-separated list of positive integers such as
// indicator periods ("20, 50, 200"). Returns nil for empty input.
func ParseIntCSV(s string) ([]int, error) {
	values := ParseCSV(s)
	if values == nil {
		return nil, nil
	}

	result := make([]int, len(values))
	for i, v := range values {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", v, err)
		}
		if n < 1 {
			return nil, fmt.Errorf("invalid period %d: must be positive", n)
		}
		result[i] = n
	}

	return result, nil
}
