// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"

	"github.com/dhm116/letterpress/pkg/types"
)

func TestColorScheme_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value ColorScheme
		want  bool
	}{
		{ColorSchemeAuto, true},
		{ColorSchemeDark, true},
		{ColorSchemeLight, true},
		{"", true},
		{"neon", false},
		{"DARK", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			t.Parallel()

			valid, errs := tt.value.IsValid()
			if valid != tt.want {
				t.Errorf("ColorScheme(%q).IsValid() = %v, want %v", tt.value, valid, tt.want)
			}
			if !tt.want {
				if len(errs) == 0 || !errors.Is(errs[0], ErrInvalidColorScheme) {
					t.Errorf("expected ErrInvalidColorScheme, got %v", errs)
				}
			}
		})
	}
}

func TestColorScheme_GlamourStyle(t *testing.T) {
	t.Parallel()

	if got := ColorSchemeDark.GlamourStyle(); got != "dark" {
		t.Errorf("dark -> %q", got)
	}
	if got := ColorSchemeLight.GlamourStyle(); got != "light" {
		t.Errorf("light -> %q", got)
	}
	if got := ColorSchemeAuto.GlamourStyle(); got != "auto" {
		t.Errorf("auto -> %q", got)
	}
}

func TestMinWordLength_IsValid(t *testing.T) {
	t.Parallel()

	for _, v := range []MinWordLength{1, 2, 15} {
		if valid, _ := v.IsValid(); !valid {
			t.Errorf("MinWordLength(%d) should be valid", v)
		}
	}
	for _, v := range []MinWordLength{0, -1} {
		valid, errs := v.IsValid()
		if valid {
			t.Errorf("MinWordLength(%d) should be invalid", v)
		}
		if !errors.Is(errs[0], ErrInvalidMinWordLength) {
			t.Errorf("expected ErrInvalidMinWordLength, got %v", errs[0])
		}
	}
}

func TestResultLimit_IsValid(t *testing.T) {
	t.Parallel()

	for _, v := range []ResultLimit{0, 1, 100} {
		if valid, _ := v.IsValid(); !valid {
			t.Errorf("ResultLimit(%d) should be valid", v)
		}
	}
	valid, errs := ResultLimit(-1).IsValid()
	if valid || !errors.Is(errs[0], ErrInvalidResultLimit) {
		t.Errorf("ResultLimit(-1) should be invalid with ErrInvalidResultLimit, got %v", errs)
	}
}

func TestConfig_IsValid_CollectsFieldErrors(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Dictionary: types.FilesystemPath("  "),
		MinLength:  0,
		Limit:      -1,
		UI:         UIConfig{ColorScheme: "neon"},
	}

	valid, errs := cfg.IsValid()
	if valid {
		t.Fatal("Config should be invalid")
	}
	if len(errs) != 1 {
		t.Fatalf("expected a single wrapping error, got %d", len(errs))
	}
	if !errors.Is(errs[0], ErrInvalidConfig) {
		t.Errorf("error should wrap ErrInvalidConfig, got %v", errs[0])
	}

	var cfgErr *InvalidConfigError
	if !errors.As(errs[0], &cfgErr) {
		t.Fatalf("error should be *InvalidConfigError, got %T", errs[0])
	}
	if len(cfgErr.FieldErrors) != 4 {
		t.Errorf("expected 4 field errors, got %d: %v", len(cfgErr.FieldErrors), cfgErr.FieldErrors)
	}

	var uiErr *InvalidUIConfigError
	found := false
	for _, fe := range cfgErr.FieldErrors {
		if errors.As(fe, &uiErr) {
			found = true
		}
	}
	if !found {
		t.Error("expected an InvalidUIConfigError among field errors")
	}
}
