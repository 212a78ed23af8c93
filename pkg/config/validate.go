package config

import (
	"github.com/Sriram-PR/md-outline/pkg/utils"
)

// Validate checks OutlineConfig fields and applies sensible defaults.
// Returns collected warnings and any fatal error.
// Modifies receiver in place to apply defaults.
func (c *OutlineConfig) Validate() (warnings []string, err error) {
	// Levels
	if len(c.Levels) == 0 {
		warnings = append(warnings, "levels not specified, defaulting to [2 3]")
		c.Levels = []int{2, 3}
	}
	for _, level := range c.Levels {
		if level < 1 || level > 6 {
			return warnings, utils.WrapErrorf(utils.ErrConfigValidation,
				"heading level %d out of range 1..6", level)
		}
	}

	// Defines
	for key := range c.Defines {
		if key == "" {
			return warnings, utils.WrapErrorf(utils.ErrConfigValidation,
				"defines contains an empty key")
		}
	}

	return warnings, nil
}
