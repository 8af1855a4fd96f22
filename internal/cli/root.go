// Package cli monta a árvore de comandos cobra da meta-ads.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-cli/pkg/log"
	"github.com/vfg2006/meta-ads-cli/pkg/middleware"
)

const appName = "meta-ads"

// Execute roda um comando completo e devolve o código de saída do processo
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) (code int) {
	ctx, invocationID := log.WithInvocationID(ctx)

	app := newApp(stdout, stderr)
	defer middleware.RecoverPanic(ctx, func(err error) {
		app.RenderFailure(ctx, err)
		code = 1
	})

	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		app.RenderFailure(ctx, err)
		log.ForContext(ctx).WithField("invocation_id", invocationID).Debug("Execução encerrada com erro")
		return 1
	}
	return 0
}

func NewRootCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Meta Ads command-line client",
		Long:          "meta-ads manages ad accounts, campaigns, ad sets, ads, creatives and media and reshapes performance insights through the Meta Graph API.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          unknownCommand,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&app.flags.Output, "output", "o", "", "Output format: json|table")
	flags.StringVarP(&app.flags.Account, "account", "a", "", "Ad account ID (e.g., act_123456789)")
	flags.StringVar(&app.flags.Token, "token", "", "Access token (overrides config and META_ADS_ACCESS_TOKEN)")
	flags.BoolVarP(&app.flags.Verbose, "verbose", "v", false, "Enable debug logging on stderr")
	flags.BoolVarP(&app.flags.Quiet, "quiet", "q", false, "Suppress non-essential messages")
	flags.StringVar(&app.flags.OutputFields, "output-fields", "", "Keep only these fields in the output (comma-separated, e.g., id,name,spend)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apiErrors.Wrap(err, apiErrors.ErrInvalidParameter, err.Error())
	})

	cmd.AddCommand(
		newAuthCommand(app),
		newConfigCommand(app),
		newAccountsCommand(app),
		newCampaignsCommand(app),
		newAdSetsCommand(app),
		newAdsCommand(app),
		newCreativesCommand(app),
		newImagesCommand(app),
		newVideosCommand(app),
		newInsightsCommand(app),
		newBulkCommand(app),
		newSchemaCommand(app),
	)

	return cmd
}

// exactArgs exige os argumentos posicionais nomeados, com erro da taxonomia
func exactArgs(names ...string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < len(names) {
			missing := names[len(args)]
			return apiErrors.Newf(apiErrors.ErrMissingRequiredField, "Missing required argument: %s.", missing).
				WithDetail("field", missing)
		}
		if len(args) > len(names) {
			return apiErrors.Newf(apiErrors.ErrInvalidParameter, "Too many arguments: expected %d, got %d.", len(names), len(args))
		}
		return nil
	}
}

// maxArgs aceita até n argumentos opcionais
func maxArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) > n {
			return apiErrors.Newf(apiErrors.ErrInvalidParameter, "Too many arguments: expected at most %d, got %d.", n, len(args))
		}
		return nil
	}
}

// unknownCommand rejeita subcomandos inexistentes em comandos de grupo
func unknownCommand(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return apiErrors.Newf(apiErrors.ErrInvalidParameter, "Unknown command %q for %q.", args[0], cmd.CommandPath()).
			WithDetail("available", subcommandNames(cmd))
	}
	return nil
}

func subcommandNames(cmd *cobra.Command) []string {
	var names []string
	for _, child := range cmd.Commands() {
		if child.IsAvailableCommand() {
			names = append(names, child.Name())
		}
	}
	return names
}

// groupCommand agrupa subcomandos; sem subcomando mostra a ajuda
func groupCommand(use, short string, children ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  unknownCommand,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(children...)
	return cmd
}
