package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wildfunctions/weierstrass/pkg/series"
)

// FileConfig is the on-disk JSON form of Config. Nil fields are left at
// whatever the caller already has, so partial files are safe.
type FileConfig struct {
	Selector   *string            `json:"selector,omitempty"`
	A          *float64           `json:"a,omitempty"`
	B          *int               `json:"b,omitempty"`
	Range      *int               `json:"range,omitempty"`
	MinX       *float64           `json:"min_x,omitempty"`
	MaxX       *float64           `json:"max_x,omitempty"`
	Order      *int               `json:"order,omitempty"`
	Count      *int               `json:"count,omitempty"`
	Convention *series.Convention `json:"convention,omitempty"`
	Seed       *int64             `json:"seed,omitempty"`
	Format     *string            `json:"format,omitempty"`
	Verbose    *bool              `json:"verbose,omitempty"`
	PNG        *string            `json:"png,omitempty"`
	HTML       *string            `json:"html,omitempty"`
}

const maxConfigSize = 1 * 1024 * 1024 // 1MB

// LoadConfig reads a FileConfig from a .json file.
func LoadConfig(path string) (*FileConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxConfigSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	fc := &FileConfig{}
	if err := json.Unmarshal(data, fc); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return fc, nil
}

// Apply copies every set field onto cfg.
func (fc *FileConfig) Apply(cfg *Config) {
	if fc.Selector != nil {
		cfg.Selector = *fc.Selector
	}
	if fc.A != nil {
		cfg.Overrides.A = fc.A
	}
	if fc.B != nil {
		cfg.Overrides.B = fc.B
	}
	if fc.Range != nil {
		cfg.Overrides.Range = fc.Range
	}
	if fc.MinX != nil {
		cfg.MinX = *fc.MinX
	}
	if fc.MaxX != nil {
		cfg.MaxX = *fc.MaxX
	}
	if fc.Order != nil {
		cfg.Order = *fc.Order
	}
	if fc.Count != nil {
		cfg.Count = *fc.Count
	}
	if fc.Convention != nil {
		cfg.Convention = *fc.Convention
	}
	if fc.Seed != nil {
		cfg.Seed = *fc.Seed
	}
	if fc.Format != nil {
		cfg.Format = *fc.Format
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.PNG != nil {
		cfg.PNG = *fc.PNG
	}
	if fc.HTML != nil {
		cfg.HTML = *fc.HTML
	}
}
