// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/letterpress/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/letterpress/config.cue on macOS, %APPDATA%\letterpress\config.cue
// on Windows), falling back to ./config.cue. Values can be overridden with LETTERPRESS_*
// environment variables, optionally read from a .env file.
//
// The file is validated against an embedded CUE schema (config_schema.cue) before its values
// are merged into Viper, so typos and out-of-range values are reported with their CUE path.
package config
