// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dhm116/letterpress/pkg/types"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidMinWordLength is returned when a MinWordLength is below 1.
	ErrInvalidMinWordLength = errors.New("invalid minimum word length")
	// ErrInvalidResultLimit is returned when a ResultLimit is negative.
	ErrInvalidResultLimit = errors.New("invalid result limit")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// MinWordLength is the shortest word length worth suggesting. Must be at least 1.
	MinWordLength int

	// InvalidMinWordLengthError is returned when a MinWordLength is below 1.
	InvalidMinWordLengthError struct {
		Value MinWordLength
	}

	// ResultLimit caps the number of suggestions shown. Zero means no cap.
	ResultLimit int

	// InvalidResultLimitError is returned when a ResultLimit is negative.
	InvalidResultLimitError struct {
		Value ResultLimit
	}

	// InvalidUIConfigError is returned when a UIConfig has invalid fields.
	// It wraps ErrInvalidUIConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Dictionary is the path to the newline-delimited word list
		Dictionary types.FilesystemPath `json:"dictionary" mapstructure:"dictionary"`
		// MinLength drops shorter words from the results
		MinLength MinWordLength `json:"min_length" mapstructure:"min_length"`
		// Limit shows only the best N words (0 = all)
		Limit ResultLimit `json:"limit" mapstructure:"limit"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// Details prints length and preferred-letter counts next to each word
		Details bool `json:"details" mapstructure:"details"`
	}
)

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// IsValid returns whether the ColorScheme is one of the defined schemes.
// The zero value is treated as auto.
func (c ColorScheme) IsValid() (bool, []error) {
	switch c {
	case "", ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: c}}
	}
}

// GlamourStyle maps the scheme to a glamour standard style name.
func (c ColorScheme) GlamourStyle() string {
	switch c {
	case ColorSchemeDark:
		return "dark"
	case ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// IsValid returns whether the MinWordLength is at least 1.
func (m MinWordLength) IsValid() (bool, []error) {
	if m < 1 {
		return false, []error{&InvalidMinWordLengthError{Value: m}}
	}
	return true, nil
}

// Error implements the error interface for InvalidMinWordLengthError.
func (e *InvalidMinWordLengthError) Error() string {
	return fmt.Sprintf("invalid minimum word length %d (must be at least 1)", e.Value)
}

// Unwrap returns ErrInvalidMinWordLength for errors.Is() compatibility.
func (e *InvalidMinWordLengthError) Unwrap() error { return ErrInvalidMinWordLength }

// IsValid returns whether the ResultLimit is non-negative.
func (l ResultLimit) IsValid() (bool, []error) {
	if l < 0 {
		return false, []error{&InvalidResultLimitError{Value: l}}
	}
	return true, nil
}

// Error implements the error interface for InvalidResultLimitError.
func (e *InvalidResultLimitError) Error() string {
	return fmt.Sprintf("invalid result limit %d (must not be negative)", e.Value)
}

// Unwrap returns ErrInvalidResultLimit for errors.Is() compatibility.
func (e *InvalidResultLimitError) Unwrap() error { return ErrInvalidResultLimit }

// IsValid returns whether the UIConfig has valid fields.
// It delegates to ColorScheme.IsValid(); bool fields need no validation.
func (c UIConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidUIConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	return "invalid UI config: " + joinFieldErrors(e.FieldErrors)
}

// Unwrap returns ErrInvalidUIConfig for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() error { return ErrInvalidUIConfig }

// IsValid returns whether the Config has valid fields.
// It delegates to Dictionary.IsValid(), MinLength.IsValid(), Limit.IsValid()
// and UI.IsValid().
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Dictionary.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.MinLength.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Limit.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return "invalid config: " + joinFieldErrors(e.FieldErrors)
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

func joinFieldErrors(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}
