package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Value mapper names accepted by AnalysisConfig.ValueMapper.
const (
	MapperBinary   = "binary"
	MapperIdentity = "identity"
)

// AnalysisConfig holds the tunable parameters for shape clustering and
// periodicity detection. Every field is optional; the Get* accessors
// supply defaults for anything omitted from the config file.
type AnalysisConfig struct {
	// Clustering params
	ValueMapper    *string  `json:"value_mapper,omitempty" yaml:"value_mapper,omitempty"`       // "binary" or "identity"
	MatchTolerance *float64 `json:"match_tolerance,omitempty" yaml:"match_tolerance,omitempty"` // 0 means exact match after mapping

	// Periodicity params
	MinOccurrences *int  `json:"min_occurrences,omitempty" yaml:"min_occurrences,omitempty"`
	CheckRotations *bool `json:"check_rotations,omitempty" yaml:"check_rotations,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrBool(v bool) *bool          { return &v }
func ptrString(v string) *string    { return &v }
func ptrInt(v int) *int             { return &v }

// EmptyAnalysisConfig returns an AnalysisConfig with all fields nil.
func EmptyAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{}
}

// DefaultAnalysisConfig returns an AnalysisConfig with every field set
// to its default.
func DefaultAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		ValueMapper:    ptrString(MapperBinary),
		MatchTolerance: ptrFloat64(0),
		MinOccurrences: ptrInt(4),
		CheckRotations: ptrBool(false),
	}
}

// LoadAnalysisConfig loads an AnalysisConfig from a JSON or YAML file,
// chosen by extension (.json, .yaml or .yml). The file must be under 1MB.
// Fields omitted from the file keep their defaults, so partial configs are
// safe.
func LoadAnalysisConfig(path string) (*AnalysisConfig, error) {
	cleanPath := filepath.Clean(path)
	ext := filepath.Ext(cleanPath)
	switch ext {
	case ".json", ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("config file must have .json, .yaml or .yml extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if ext == ".json" {
		return ParseAnalysisConfig(data)
	}
	return ParseAnalysisConfigYAML(data)
}

// ParseAnalysisConfig decodes and validates a JSON config document.
func ParseAnalysisConfig(data []byte) (*AnalysisConfig, error) {
	cfg := EmptyAnalysisConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ParseAnalysisConfigYAML decodes and validates a YAML config document.
func ParseAnalysisConfigYAML(data []byte) (*AnalysisConfig, error) {
	cfg := EmptyAnalysisConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *AnalysisConfig) Validate() error {
	if c.ValueMapper != nil {
		switch *c.ValueMapper {
		case MapperBinary, MapperIdentity:
		default:
			return fmt.Errorf("value_mapper must be %q or %q, got %q", MapperBinary, MapperIdentity, *c.ValueMapper)
		}
	}

	if c.MatchTolerance != nil && *c.MatchTolerance < 0 {
		return fmt.Errorf("match_tolerance must be non-negative, got %f", *c.MatchTolerance)
	}

	if c.MinOccurrences != nil && *c.MinOccurrences < 2 {
		return fmt.Errorf("min_occurrences must be at least 2, got %d", *c.MinOccurrences)
	}

	return nil
}

// GetValueMapper returns the value_mapper name or the default.
func (c *AnalysisConfig) GetValueMapper() string {
	if c.ValueMapper == nil || *c.ValueMapper == "" {
		return MapperBinary
	}
	return *c.ValueMapper
}

// GetMatchTolerance returns the match_tolerance value or the default.
func (c *AnalysisConfig) GetMatchTolerance() float64 {
	if c.MatchTolerance == nil {
		return 0
	}
	return *c.MatchTolerance
}

// GetMinOccurrences returns the min_occurrences value or the default.
func (c *AnalysisConfig) GetMinOccurrences() int {
	if c.MinOccurrences == nil {
		return 4
	}
	return *c.MinOccurrences
}

// GetCheckRotations returns the check_rotations value or the default.
func (c *AnalysisConfig) GetCheckRotations() bool {
	if c.CheckRotations == nil {
		return false
	}
	return *c.CheckRotations
}

// WithCheckRotations returns a copy of c with check_rotations overridden.
func (c *AnalysisConfig) WithCheckRotations(enabled bool) *AnalysisConfig {
	out := *c
	out.CheckRotations = ptrBool(enabled)
	return &out
}
