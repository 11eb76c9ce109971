package normalmap

import (
	"go.viam.com/utils"
)

const (
	// DefaultMaxDepth is the max_depth used when none is given.
	DefaultMaxDepth = 255
	// DefaultOutputPath is where the normal map is written when no path is given.
	DefaultOutputPath = "normal_map.png"
)

// A Config describes one depth map to normal map conversion.
type Config struct {
	InputPath string `json:"input"`
	// MaxDepth is the maximum depth value of the input. It is carried for compatibility
	// with existing invocations and does not affect the conversion.
	MaxDepth   int    `json:"max_depth"`
	OutputPath string `json:"output_path"`
}

// NewConfig returns a config for inputPath with the default max depth and output path.
func NewConfig(inputPath string) Config {
	return Config{
		InputPath:  inputPath,
		MaxDepth:   DefaultMaxDepth,
		OutputPath: DefaultOutputPath,
	}
}

// Validate ensures all parts of the config are valid.
func (config *Config) Validate(path string) error {
	if config.InputPath == "" {
		return utils.NewConfigValidationFieldRequiredError(path, "input")
	}
	if config.OutputPath == "" {
		return utils.NewConfigValidationFieldRequiredError(path, "output_path")
	}
	return nil
}
