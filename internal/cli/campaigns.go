package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/meta-ads-cli/internal/domain"
)

func newCampaignsCommand(app *App) *cobra.Command {
	return groupCommand("campaigns", "Manage campaigns",
		newCampaignsListCommand(app),
		newCampaignsGetCommand(app),
		newCampaignsCreateCommand(app),
		newCampaignsUpdateCommand(app),
		newStatusCommand(app, domain.KindCampaign, domain.StatusActive),
		newStatusCommand(app, domain.KindCampaign, domain.StatusPaused),
	)
}

func newCampaignsListCommand(app *App) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List campaigns of the ad account",
		Example: "  meta-ads campaigns list --status ACTIVE\n  meta-ads campaigns list --all -o table",
		Args:    exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := flags.options(domain.KindCampaign)
			if err != nil {
				return err
			}

			integrator, err := app.Integrator()
			if err != nil {
				return err
			}

			result, err := integrator.ListCampaigns(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return RenderList(cmd.Context(), app, result)
		},
	}
	addListFlags(cmd, flags, true)

	return cmd
}

func newCampaignsGetCommand(app *App) *cobra.Command {
	var fields string

	cmd := &cobra.Command{
		Use:   "get <campaign-id>",
		Short: "Show a campaign",
		Args:  exactArgs("campaign-id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			fieldSet, err := parseFields(fields, domain.KindCampaign)
			if err != nil {
				return err
			}

			integrator, err := app.Integrator()
			if err != nil {
				return err
			}

			campaign, err := integrator.GetCampaign(cmd.Context(), args[0], fieldSet)
			if err != nil {
				return err
			}
			return app.Render(cmd.Context(), campaign, nil)
		},
	}
	addFieldsFlag(cmd, &fields)

	return cmd
}

func newCampaignsCreateCommand(app *App) *cobra.Command {
	var (
		params                      domain.CampaignCreate
		categories                  string
		dailyBudget, lifetimeBudget int64
	)

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create a campaign (PAUSED unless --status ACTIVE)",
		Example: `  meta-ads campaigns create --name "Sales" --objective OUTCOME_SALES --daily-budget 5000`,
		Args:    exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if params.DailyBudget, err = budgetFlag(cmd, "daily-budget", dailyBudget); err != nil {
				return err
			}
			if params.LifetimeBudget, err = budgetFlag(cmd, "lifetime-budget", lifetimeBudget); err != nil {
				return err
			}
			params.Objective = strings.ToUpper(params.Objective)
			params.Status = strings.ToUpper(params.Status)
			params.SpecialAdCategories = splitCSV(categories)

			integrator, err := app.Integrator()
			if err != nil {
				return err
			}

			campaign, err := integrator.CreateCampaign(cmd.Context(), params)
			if err != nil {
				return err
			}

			if err := app.Render(cmd.Context(), campaign, nil); err != nil {
				return err
			}
			app.Renderer.Success("Campaign " + campaign.ID + " created")
			return nil
		},
	}

	cmd.Flags().StringVarP(&params.Name, "name", "n", "", "Campaign name")
	cmd.Flags().StringVar(&params.Objective, "objective", "", "Objective (OUTCOME_SALES, OUTCOME_LEADS, OUTCOME_TRAFFIC, ...)")
	cmd.Flags().StringVar(&params.Status, "status", "", "Initial status: ACTIVE or PAUSED (default PAUSED)")
	cmd.Flags().Int64Var(&dailyBudget, "daily-budget", 0, "Daily budget in cents")
	cmd.Flags().Int64Var(&lifetimeBudget, "lifetime-budget", 0, "Lifetime budget in cents")
	cmd.Flags().StringVar(&params.BidStrategy, "bid-strategy", "", "Bid strategy (e.g., LOWEST_COST_WITHOUT_CAP)")
	cmd.Flags().StringVar(&categories, "special-ad-categories", "", "Comma-separated special ad categories")

	return cmd
}

func newCampaignsUpdateCommand(app *App) *cobra.Command {
	var (
		name, status, bidStrategy   string
		dailyBudget, lifetimeBudget int64
	)

	cmd := &cobra.Command{
		Use:     "update <campaign-id>",
		Short:   "Update campaign fields; only the flags given are changed",
		Example: "  meta-ads campaigns update 120210123456789 --daily-budget 10000",
		Args:    exactArgs("campaign-id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := domain.CampaignUpdate{
				Name:        optionalString(cmd, "name", name),
				Status:      optionalString(cmd, "status", strings.ToUpper(status)),
				BidStrategy: optionalString(cmd, "bid-strategy", bidStrategy),
			}

			daily, err := budgetFlag(cmd, "daily-budget", dailyBudget)
			if err != nil {
				return err
			}
			lifetime, err := budgetFlag(cmd, "lifetime-budget", lifetimeBudget)
			if err != nil {
				return err
			}
			params.DailyBudget = optionalString(cmd, "daily-budget", daily)
			params.LifetimeBudget = optionalString(cmd, "lifetime-budget", lifetime)

			integrator, err := app.Integrator()
			if err != nil {
				return err
			}

			campaign, err := integrator.UpdateCampaign(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			return app.Render(cmd.Context(), campaign, nil)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "New name")
	cmd.Flags().StringVar(&status, "status", "", "New status: ACTIVE, PAUSED, ARCHIVED or DELETED")
	cmd.Flags().Int64Var(&dailyBudget, "daily-budget", 0, "Daily budget in cents")
	cmd.Flags().Int64Var(&lifetimeBudget, "lifetime-budget", 0, "Lifetime budget in cents")
	cmd.Flags().StringVar(&bidStrategy, "bid-strategy", "", "Bid strategy")

	return cmd
}
