// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/dhm116/letterpress/internal/config"
	"github.com/dhm116/letterpress/pkg/types"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `letterpress config` command tree.
// Subcommands that read configuration use the App's config provider.
func newConfigCommand(app *App, flags *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage letterpress configuration",
		Long: `Manage letterpress configuration.

Configuration is stored in:
  - Linux: ~/.config/letterpress/config.cue
  - macOS: ~/Library/Application Support/letterpress/config.cue
  - Windows: %APPDATA%\letterpress\config.cue

Every key can be overridden with a LETTERPRESS_* environment variable,
e.g. LETTERPRESS_DICTIONARY or LETTERPRESS_UI_COLOR_SCHEME. Variables
in a .env file in the working directory are honored too.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app, flags.configPath)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := app.loadConfig(cmd.Context(), flags.configPath)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(app.stdout, config.GenerateCUE(loaded.Config))
			return err
		},
	})

	return cfgCmd
}

func (a *App) loadConfig(ctx context.Context, configPath string) (config.Loaded, error) {
	loaded, err := a.Config.Load(ctx, config.LoadOptions{
		ConfigFilePath: configPath,
		DotEnvPath:     a.DotEnvPath,
	})
	if err != nil {
		a.renderIssue(err, config.ColorSchemeAuto)
		return config.Loaded{}, &ExitError{Code: types.ExitFailure, Err: err}
	}
	return loaded, nil
}

func showConfig(ctx context.Context, app *App, configPath string) error {
	loaded, err := app.loadConfig(ctx, configPath)
	if err != nil {
		return err
	}
	cfg := loaded.Config
	applyColorScheme(cfg.UI.ColorScheme)

	keyStyle := WordStyle
	valueStyle := SuccessStyle

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("Current Configuration") + "\n\n")

	if loaded.Path != "" {
		fmt.Fprintf(&sb, "%s: %s\n", keyStyle.Render("Config file"), loaded.Path)
	} else {
		fmt.Fprintf(&sb, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	sb.WriteString("\n")

	limit := fmt.Sprintf("%d", cfg.Limit)
	if cfg.Limit == 0 {
		limit += " " + SubtitleStyle.Render("(no limit)")
	}

	fmt.Fprintf(&sb, "%s: %s\n", keyStyle.Render("dictionary"), valueStyle.Render(cfg.Dictionary.String()))
	fmt.Fprintf(&sb, "%s: %s\n", keyStyle.Render("min_length"), valueStyle.Render(fmt.Sprintf("%d", cfg.MinLength)))
	fmt.Fprintf(&sb, "%s: %s\n", keyStyle.Render("limit"), valueStyle.Render(limit))

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(&sb, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(&sb, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))
	fmt.Fprintf(&sb, "  details: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Details)))

	_, err = fmt.Fprint(app.stdout, sb.String())
	return err
}

func initConfig(app *App) error {
	cfgPath, created, err := config.CreateDefaultConfig()
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	if !created {
		_, err = fmt.Fprintf(app.stdout, "%s Configuration already exists at %s\n", WarningStyle.Render("!"), cfgPath)
		return err
	}
	_, err = fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), cfgPath)
	return err
}

func showConfigPath(app *App) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	cfgPath, err := config.ConfigFilePath()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(app.stdout, "Config directory: %s\nConfig file: %s\n", cfgDir, cfgPath)
	return err
}
