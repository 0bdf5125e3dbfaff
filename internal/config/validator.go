package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MinAPIKeyLength is the shortest API key accepted without a warning
const MinAPIKeyLength = 32

// Example values shipped in .env.example
const (
	exampleDBPassword = "change_this_secure_password"
	exampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

var validate = newValidator()

// newValidator reports fields by their environment variable name
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("env"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

// Validate checks the numeric and required settings of a loaded configuration
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, ", "))
}

// Warnings reports settings that work but are probably a mistake
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DBPassword == exampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	switch {
	case c.APIKey == exampleAPIKey:
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	case len(c.APIKey) < MinAPIKeyLength:
		warnings = append(warnings, fmt.Sprintf("API_KEY is shorter than %d characters", MinAPIKeyLength))
	}

	// one tick should not skip more than a game hour of needs decay
	if gameSeconds := c.TickInterval.Seconds() * c.TimeScale; gameSeconds > 3600 {
		warnings = append(warnings, fmt.Sprintf("TICK_INTERVAL x TIME_SCALE advances %.0f game seconds per tick", gameSeconds))
	}

	return warnings
}
