package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/meta-ads-cli/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-ads-cli/internal/domain"
)

func newAdSetsCommand(app *App) *cobra.Command {
	cmd := groupCommand("adsets", "Manage ad sets",
		newAdSetsListCommand(app),
		newAdSetsGetCommand(app),
		newAdSetsCreateCommand(app),
		newAdSetsUpdateCommand(app),
		newStatusCommand(app, domain.KindAdSet, domain.StatusActive),
		newStatusCommand(app, domain.KindAdSet, domain.StatusPaused),
	)
	cmd.Aliases = []string{"adset"}
	return cmd
}

func newAdSetsListCommand(app *App) *cobra.Command {
	var (
		flags           = &listFlags{}
		campaignID      string
		includeDelivery bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List ad sets of a campaign or of the whole account",
		Example: "  meta-ads adsets list --campaign 120210123456789 --include-delivery",
		Args:    exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := flags.options(domain.KindAdSet)
			if err != nil {
				return err
			}

			integrator, err := app.Integrator()
			if err != nil {
				return err
			}

			result, err := integrator.ListAdSets(cmd.Context(), meta.AdSetListOptions{
				ListOptions:     opts,
				CampaignID:      campaignID,
				IncludeDelivery: includeDelivery,
			})
			if err != nil {
				return err
			}
			return RenderList(cmd.Context(), app, result)
		},
	}
	addListFlags(cmd, flags, true)
	cmd.Flags().StringVar(&campaignID, "campaign", "", "Only ad sets of this campaign")
	cmd.Flags().BoolVar(&includeDelivery, "include-delivery", false, "Include learning phase and delivery issues")

	return cmd
}

func newAdSetsGetCommand(app *App) *cobra.Command {
	var fields string

	cmd := &cobra.Command{
		Use:   "get <adset-id>",
		Short: "Show an ad set",
		Args:  exactArgs("adset-id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			fieldSet, err := parseFields(fields, domain.KindAdSet)
			if err != nil {
				return err
			}

			integrator, err := app.Integrator()
			if err != nil {
				return err
			}

			adSet, err := integrator.GetAdSet(cmd.Context(), args[0], fieldSet)
			if err != nil {
				return err
			}
			return app.Render(cmd.Context(), adSet, nil)
		},
	}
	addFieldsFlag(cmd, &fields)

	return cmd
}

func newAdSetsCreateCommand(app *App) *cobra.Command {
	var (
		params                      domain.AdSetCreate
		targeting                   string
		dailyBudget, lifetimeBudget int64
		bidAmount                   int64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an ad set (PAUSED unless --status ACTIVE)",
		Example: `  meta-ads adsets create --name "BR 25-44" --campaign 120210123456789 \
    --billing-event IMPRESSIONS --optimization-goal OFFSITE_CONVERSIONS \
    --daily-budget 3000 --targeting '{"geo_locations":{"countries":["BR"]},"age_min":25,"age_max":44}'`,
		Args: exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if params.Targeting, err = parseJSONFlag("targeting", targeting); err != nil {
				return err
			}
			if params.DailyBudget, err = budgetFlag(cmd, "daily-budget", dailyBudget); err != nil {
				return err
			}
			if params.LifetimeBudget, err = budgetFlag(cmd, "lifetime-budget", lifetimeBudget); err != nil {
				return err
			}
			if params.BidAmount, err = budgetFlag(cmd, "bid-amount", bidAmount); err != nil {
				return err
			}
			params.BillingEvent = strings.ToUpper(params.BillingEvent)
			params.OptimizationGoal = strings.ToUpper(params.OptimizationGoal)
			params.Status = strings.ToUpper(params.Status)

			integrator, err := app.Integrator()
			if err != nil {
				return err
			}

			adSet, err := integrator.CreateAdSet(cmd.Context(), params)
			if err != nil {
				return err
			}

			if err := app.Render(cmd.Context(), adSet, nil); err != nil {
				return err
			}
			app.Renderer.Success("Ad set " + adSet.ID + " created")
			return nil
		},
	}

	cmd.Flags().StringVarP(&params.Name, "name", "n", "", "Ad set name")
	cmd.Flags().StringVar(&params.CampaignID, "campaign", "", "Parent campaign ID")
	cmd.Flags().StringVar(&params.BillingEvent, "billing-event", "", "Billing event (IMPRESSIONS, LINK_CLICKS, THRUPLAY, ...)")
	cmd.Flags().StringVar(&params.OptimizationGoal, "optimization-goal", "", "Optimization goal (e.g., OFFSITE_CONVERSIONS, LINK_CLICKS)")
	cmd.Flags().StringVar(&targeting, "targeting", "", "Targeting spec as a JSON object")
	cmd.Flags().StringVar(&params.Status, "status", "", "Initial status: ACTIVE or PAUSED (default PAUSED)")
	cmd.Flags().Int64Var(&dailyBudget, "daily-budget", 0, "Daily budget in cents")
	cmd.Flags().Int64Var(&lifetimeBudget, "lifetime-budget", 0, "Lifetime budget in cents")
	cmd.Flags().Int64Var(&bidAmount, "bid-amount", 0, "Bid cap in cents")
	cmd.Flags().StringVar(&params.StartTime, "start-time", "", "Start time (ISO 8601)")
	cmd.Flags().StringVar(&params.EndTime, "end-time", "", "End time (ISO 8601, required with --lifetime-budget)")

	return cmd
}

func newAdSetsUpdateCommand(app *App) *cobra.Command {
	var (
		name, status, endTime                  string
		dailyBudget, lifetimeBudget, bidAmount int64
	)

	cmd := &cobra.Command{
		Use:   "update <adset-id>",
		Short: "Update ad set fields; only the flags given are changed",
		Args:  exactArgs("adset-id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := domain.AdSetUpdate{
				Name:    optionalString(cmd, "name", name),
				Status:  optionalString(cmd, "status", strings.ToUpper(status)),
				EndTime: optionalString(cmd, "end-time", endTime),
			}

			for _, budget := range []struct {
				flag   string
				cents  int64
				target **string
			}{
				{"daily-budget", dailyBudget, &params.DailyBudget},
				{"lifetime-budget", lifetimeBudget, &params.LifetimeBudget},
				{"bid-amount", bidAmount, &params.BidAmount},
			} {
				value, err := budgetFlag(cmd, budget.flag, budget.cents)
				if err != nil {
					return err
				}
				*budget.target = optionalString(cmd, budget.flag, value)
			}

			integrator, err := app.Integrator()
			if err != nil {
				return err
			}

			adSet, err := integrator.UpdateAdSet(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			return app.Render(cmd.Context(), adSet, nil)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "New name")
	cmd.Flags().StringVar(&status, "status", "", "New status: ACTIVE, PAUSED, ARCHIVED or DELETED")
	cmd.Flags().Int64Var(&dailyBudget, "daily-budget", 0, "Daily budget in cents")
	cmd.Flags().Int64Var(&lifetimeBudget, "lifetime-budget", 0, "Lifetime budget in cents")
	cmd.Flags().Int64Var(&bidAmount, "bid-amount", 0, "Bid cap in cents")
	cmd.Flags().StringVar(&endTime, "end-time", "", "End time (ISO 8601)")

	return cmd
}
