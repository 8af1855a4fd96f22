package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/meta-ads-cli/internal/config"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-cli/pkg/log"
)

func newAuthCommand(app *App) *cobra.Command {
	return groupCommand("auth", "Manage the Meta access token",
		newAuthLoginCommand(app),
		newAuthStatusCommand(app),
		newAuthLogoutCommand(app),
	)
}

func newAuthLoginCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "login",
		Short:   "Validate an access token and save it to the config file",
		Example: "  meta-ads auth login\n  meta-ads auth login --token EAAxxxxxx",
		Args:    exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			token := strings.TrimSpace(app.flags.Token)
			if token == "" {
				token = promptForToken(cmd)
			}
			if token == "" {
				return apiErrors.New(apiErrors.ErrAuthNotConfigured, "No access token provided.")
			}

			status, err := app.tokenManager().Status(ctx, token)
			if err != nil {
				return err
			}
			if len(status.MissingPermissions) > 0 {
				app.Renderer.Warn("Token is missing recommended permissions: " + strings.Join(status.MissingPermissions, ", "))
			}

			if err := app.Store.Set(config.KeyAccessToken, token); err != nil {
				return err
			}

			log.ForContext(ctx).WithField("app_id", status.AppID).Info("Token salvo")

			if err := app.Render(ctx, map[string]any{
				"message": "Successfully authenticated",
				"app_id":  status.AppID,
				"expires": status.ExpiresIn,
				"scopes":  status.Scopes,
			}, nil); err != nil {
				return err
			}
			app.Renderer.Success("Token saved to " + app.Store.Path())
			return nil
		},
	}
}

func promptForToken(cmd *cobra.Command) string {
	fmt.Fprintln(cmd.ErrOrStderr(), "To get an access token:")
	fmt.Fprintln(cmd.ErrOrStderr(), "1. Go to Meta Business Suite > Business Settings")
	fmt.Fprintln(cmd.ErrOrStderr(), "2. Navigate to Users > System Users")
	fmt.Fprintln(cmd.ErrOrStderr(), "3. Generate a token with ads_management and ads_read permissions")
	fmt.Fprint(cmd.ErrOrStderr(), "\nEnter your access token: ")

	line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	return strings.TrimSpace(line)
}

func newAuthStatusCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the configured token is valid, when it expires and which permissions it lacks",
		Args:  exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			token := app.Config.Meta.AccessToken
			if token == "" {
				return apiErrors.New(apiErrors.ErrAuthNotConfigured, "")
			}

			status, err := app.tokenManager().Status(cmd.Context(), token)
			if err != nil {
				return err
			}

			return app.Render(cmd.Context(), map[string]any{
				"authenticated":            true,
				"app_id":                   status.AppID,
				"user_id":                  status.UserID,
				"expires_at":               status.ExpiresAt,
				"expires":                  status.ExpiresIn,
				"scopes":                   status.Scopes,
				"has_required_permissions": len(status.MissingPermissions) == 0,
				"missing_permissions":      status.MissingPermissions,
				"token":                    config.MaskToken(token),
			}, nil)
		},
	}
}

func newAuthLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the saved access token",
		Args:  exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.Store.Delete(config.KeyAccessToken); err != nil {
				return err
			}
			return app.Render(cmd.Context(), map[string]any{"message": "Logged out", "config_path": app.Store.Path()}, nil)
		},
	}
}
