// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for letterpress.
//
// The root command takes the board letters (and optionally the preferred
// letters) as positional arguments, loads the word list and prints playable
// words best-first. The config subcommands inspect and create the CUE
// configuration file.
package cmd
