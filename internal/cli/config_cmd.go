package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/meta-ads-cli/internal/config"
	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
)

func newConfigCommand(app *App) *cobra.Command {
	return groupCommand("config", "Read and write the persisted configuration",
		newConfigGetCommand(app),
		newConfigSetCommand(app),
		newConfigListCommand(app),
		newConfigPathCommand(app),
	)
}

func newConfigGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "get <key>",
		Short:   "Get a saved configuration value",
		Example: "  meta-ads config get account_id",
		Args:    exactArgs("key"),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(args[0])

			var value any
			if saved, ok := app.Store.Get(key); ok {
				if key == config.KeyAccessToken {
					saved = config.MaskToken(saved)
				}
				value = saved
			}

			return app.Render(cmd.Context(), map[string]any{"key": key, "value": value}, nil)
		},
	}
}

func newConfigSetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "set <key> <value>",
		Short:   "Save a configuration value (" + strings.Join(config.SettableKeys, ", ") + ")",
		Example: "  meta-ads config set output_format table\n  meta-ads config set account_id act_123456789",
		Args:    exactArgs("key", "value"),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := strings.ToLower(args[0]), strings.TrimSpace(args[1])

			if !slices.Contains(config.SettableKeys, key) {
				return apiErrors.Newf(apiErrors.ErrInvalidParameter, "Invalid config key %q.", key).
					WithDetail("valid_keys", config.SettableKeys)
			}
			if key == config.KeyAccountID {
				value = domain.NormalizeAccountID(value)
			}

			if err := app.Store.Set(key, value); err != nil {
				return err
			}

			if err := app.Render(cmd.Context(), map[string]any{"key": key, "value": value}, nil); err != nil {
				return err
			}
			app.Renderer.Success("Set " + key + " = " + value)
			return nil
		},
	}
}

func newConfigListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved configuration values (the token is masked)",
		Args:  exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Render(cmd.Context(), map[string]any{
				"config": app.Store.List(),
				"path":   app.Store.Path(),
			}, nil)
		},
	}
}

func newConfigPathCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the config file location",
		Args:  exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Render(cmd.Context(), map[string]any{
				"path":   app.Store.Path(),
				"exists": app.Store.Exists(),
			}, nil)
		},
	}
}
