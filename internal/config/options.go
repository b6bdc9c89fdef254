package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aristath/backtest/pkg/analytics"
)

// LoadAnalysisOptions reads analysis options from a YAML file.
// Keys missing from the file keep their analytics.DefaultOptions value.
func LoadAnalysisOptions(path string) (analytics.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return analytics.Options{}, fmt.Errorf("failed to read analysis config: %w", err)
	}
	return ParseAnalysisOptions(data)
}

// ParseAnalysisOptions decodes YAML analysis options over the defaults
func ParseAnalysisOptions(data []byte) (analytics.Options, error) {
	opts := analytics.DefaultOptions()

	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&opts); err != nil {
			return analytics.Options{}, fmt.Errorf("failed to parse analysis config: %w", err)
		}
	}

	if err := ValidateOptions(opts); err != nil {
		return analytics.Options{}, err
	}
	return opts, nil
}

// ValidateOptions checks indicator periods and the histogram bin width
func ValidateOptions(opts analytics.Options) error {
	if err := validate.Struct(opts); err != nil {
		return fmt.Errorf("invalid analysis options: %w", err)
	}
	return nil
}
