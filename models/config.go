// Package models defines data structures shared by the CLI actions.
package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Output formats for extraction results.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatBits = "bits"
)

// ExtractConfig holds runtime configuration for extract operations.
// Values come from CLI flags or their PAGESIGNALS_* environment variables.
type ExtractConfig struct {
	Targets     []string      `validate:"required,min=1,dive,required"`
	Source      string        `validate:"oneof=file http browser"`
	WorkerCount int           `validate:"min=1,max=64"`
	Timeout     time.Duration `validate:"gt=0"`
	Settle      time.Duration `validate:"gte=0"`
	CacheDir    string
	CacheTTL    time.Duration `validate:"gte=0"`
	Format      string        `validate:"oneof=json yaml bits"`
	WithSignals bool
	WithMeta    bool
	Store       bool
	DBPath      string
	VocabPath   string
}

// Validate validates the ExtractConfig using the validator.
func (c *ExtractConfig) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
