package cli

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/meta-ads-cli/internal/config"
	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/log"
)

func newAccountsCommand(app *App) *cobra.Command {
	return groupCommand("accounts", "List and select ad accounts",
		newAccountsListCommand(app),
		newAccountsGetCommand(app),
		newAccountsSwitchCommand(app),
	)
}

func newAccountsListCommand(app *App) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the ad accounts the token can access",
		Args:  exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := flags.options(domain.KindAccount)
			if err != nil {
				return err
			}

			integrator, err := app.Integrator()
			if err != nil {
				return err
			}

			result, err := integrator.ListAdAccounts(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return RenderList(cmd.Context(), app, result)
		},
	}
	addListFlags(cmd, flags, false)

	return cmd
}

func newAccountsGetCommand(app *App) *cobra.Command {
	var fields string

	cmd := &cobra.Command{
		Use:   "get [account-id]",
		Short: "Show an ad account (defaults to the configured account)",
		Args:  maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fieldSet, err := parseFields(fields, domain.KindAccount)
			if err != nil {
				return err
			}

			integrator, err := app.Integrator()
			if err != nil {
				return err
			}

			var id string
			if len(args) > 0 {
				id = args[0]
			}

			account, err := integrator.GetAdAccount(cmd.Context(), id, fieldSet)
			if err != nil {
				return err
			}
			return app.Render(cmd.Context(), account, nil)
		},
	}
	addFieldsFlag(cmd, &fields)

	return cmd
}

func newAccountsSwitchCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "switch <account-id>",
		Short:   "Verify an ad account and make it the default",
		Example: "  meta-ads accounts switch act_123456789",
		Args:    exactArgs("account-id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			integrator, err := app.Integrator()
			if err != nil {
				return err
			}

			id := domain.NormalizeAccountID(args[0])
			account, err := integrator.GetAdAccount(ctx, id, domain.FieldSet{"id", "name", "currency", "account_status"})
			if err != nil {
				return err
			}

			if err := app.Store.Set(config.KeyAccountID, id); err != nil {
				return err
			}
			app.Config.Meta.AccountID = id

			log.ForContext(ctx).WithField("account_id", id).Info("Conta padrão alterada")

			if err := app.Render(ctx, map[string]any{
				"message":    "Default account updated",
				"account_id": id,
				"name":       account.Name,
				"currency":   account.Currency,
			}, nil); err != nil {
				return err
			}
			app.Renderer.Success("Default account set to " + id)
			return nil
		},
	}
}
