package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/wippyai/openxr/abi"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Value   any    // The invalid value
	Field   string // The config field path (e.g., "system.form_factor")
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	errs = append(errs, c.validateApplication()...)
	errs = append(errs, c.validateExtensions()...)
	errs = append(errs, c.validateSystem()...)
	errs = append(errs, c.validateFrame()...)
	errs = append(errs, c.validateLogging()...)

	return errs
}

func (c *Config) validateApplication() []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(c.Application.Name) == "" {
		errs = append(errs, ValidationError{
			Field:   "application.name",
			Value:   c.Application.Name,
			Message: "must not be empty",
		})
	}
	if _, err := c.Application.APIVersionValue(); err != nil {
		errs = append(errs, ValidationError{
			Field:   "application.api_version",
			Value:   c.Application.APIVersion,
			Message: "must be major.minor.patch",
		})
	}

	return errs
}

func (c *Config) validateExtensions() []ValidationError {
	var errs []ValidationError

	check := func(field string, names []string) {
		for _, name := range names {
			if !strings.HasPrefix(name, "XR_") {
				errs = append(errs, ValidationError{
					Field:   field,
					Value:   name,
					Message: "extension names start with XR_",
				})
			}
		}
	}
	check("extensions.required", c.Extensions.Required)
	check("extensions.optional", c.Extensions.Optional)

	for _, name := range c.Extensions.Optional {
		if slices.Contains(c.Extensions.Required, name) {
			errs = append(errs, ValidationError{
				Field:   "extensions.optional",
				Value:   name,
				Message: "already listed as required",
			})
		}
	}

	return errs
}

func (c *Config) validateSystem() []ValidationError {
	var errs []ValidationError

	if _, ok := abi.ParseFormFactor(c.System.FormFactor); !ok {
		errs = append(errs, ValidationError{
			Field:   "system.form_factor",
			Value:   c.System.FormFactor,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(abi.FormFactorNames(), ", ")),
		})
	}
	if _, ok := abi.ParseViewConfigurationType(c.System.ViewConfiguration); !ok {
		errs = append(errs, ValidationError{
			Field:   "system.view_configuration",
			Value:   c.System.ViewConfiguration,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(abi.ViewConfigurationTypeNames(), ", ")),
		})
	}
	if _, ok := abi.ParseEnvironmentBlendMode(c.System.BlendMode); !ok {
		errs = append(errs, ValidationError{
			Field:   "system.blend_mode",
			Value:   c.System.BlendMode,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(abi.EnvironmentBlendModeNames(), ", ")),
		})
	}

	return errs
}

func (c *Config) validateFrame() []ValidationError {
	var errs []ValidationError

	if c.Frame.SwapchainWaitTimeoutMs < 0 {
		errs = append(errs, ValidationError{
			Field:   "frame.swapchain_wait_timeout_ms",
			Value:   c.Frame.SwapchainWaitTimeoutMs,
			Message: "must be non-negative (0 means no limit)",
		})
	}
	if _, ok := abi.ParseReferenceSpaceType(c.Frame.ReferenceSpace); !ok {
		errs = append(errs, ValidationError{
			Field:   "frame.reference_space",
			Value:   c.Frame.ReferenceSpace,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(abi.ReferenceSpaceTypeNames(), ", ")),
		})
	}

	return errs
}

func (c *Config) validateLogging() []ValidationError {
	var errs []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errs
}
