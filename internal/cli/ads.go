package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/meta-ads-cli/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-ads-cli/internal/domain"
)

func newAdsCommand(app *App) *cobra.Command {
	cmd := groupCommand("ads", "Manage ads",
		newAdsListCommand(app),
		newAdsGetCommand(app),
		newAdsCreateCommand(app),
		newAdsUpdateCommand(app),
		newStatusCommand(app, domain.KindAd, domain.StatusActive),
		newStatusCommand(app, domain.KindAd, domain.StatusPaused),
	)
	cmd.Aliases = []string{"ad"}
	return cmd
}

func newAdsListCommand(app *App) *cobra.Command {
	var (
		flags                            = &listFlags{}
		adSetID, campaignID              string
		includeDelivery, includeCreative bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List ads of an ad set, a campaign or the whole account",
		Example: "  meta-ads ads list --adset 120210987654321 --include-creative",
		Args:    exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := flags.options(domain.KindAd)
			if err != nil {
				return err
			}

			integrator, err := app.Integrator()
			if err != nil {
				return err
			}

			result, err := integrator.ListAds(cmd.Context(), meta.AdListOptions{
				ListOptions:     opts,
				AdSetID:         adSetID,
				CampaignID:      campaignID,
				IncludeDelivery: includeDelivery,
				IncludeCreative: includeCreative,
			})
			if err != nil {
				return err
			}
			return RenderList(cmd.Context(), app, result)
		},
	}
	addListFlags(cmd, flags, true)
	cmd.Flags().StringVar(&adSetID, "adset", "", "Only ads of this ad set")
	cmd.Flags().StringVar(&campaignID, "campaign", "", "Only ads of this campaign")
	cmd.Flags().BoolVar(&includeDelivery, "include-delivery", false, "Include delivery issues")
	cmd.Flags().BoolVar(&includeCreative, "include-creative", false, "Include creative details")

	return cmd
}

func newAdsGetCommand(app *App) *cobra.Command {
	var fields string

	cmd := &cobra.Command{
		Use:   "get <ad-id>",
		Short: "Show an ad with its creative",
		Args:  exactArgs("ad-id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			fieldSet, err := parseFields(fields, domain.KindAd)
			if err != nil {
				return err
			}

			integrator, err := app.Integrator()
			if err != nil {
				return err
			}

			ad, err := integrator.GetAd(cmd.Context(), args[0], fieldSet)
			if err != nil {
				return err
			}
			return app.Render(cmd.Context(), ad, nil)
		},
	}
	addFieldsFlag(cmd, &fields)

	return cmd
}

func newAdsCreateCommand(app *App) *cobra.Command {
	var params domain.AdCreate

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create an ad from an existing creative (PAUSED unless --status ACTIVE)",
		Example: `  meta-ads ads create --name "Carousel A" --adset 120210987654321 --creative 120210555555555`,
		Args:    exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			params.Status = strings.ToUpper(params.Status)

			integrator, err := app.Integrator()
			if err != nil {
				return err
			}

			ad, err := integrator.CreateAd(cmd.Context(), params)
			if err != nil {
				return err
			}

			if err := app.Render(cmd.Context(), ad, nil); err != nil {
				return err
			}
			app.Renderer.Success("Ad " + ad.ID + " created")
			return nil
		},
	}

	cmd.Flags().StringVarP(&params.Name, "name", "n", "", "Ad name")
	cmd.Flags().StringVar(&params.AdSetID, "adset", "", "Parent ad set ID")
	cmd.Flags().StringVar(&params.CreativeID, "creative", "", "Creative ID")
	cmd.Flags().StringVar(&params.Status, "status", "", "Initial status: ACTIVE or PAUSED (default PAUSED)")

	return cmd
}

func newAdsUpdateCommand(app *App) *cobra.Command {
	var name, status, creativeID string

	cmd := &cobra.Command{
		Use:   "update <ad-id>",
		Short: "Update ad fields; only the flags given are changed",
		Args:  exactArgs("ad-id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := domain.AdUpdate{
				Name:       optionalString(cmd, "name", name),
				Status:     optionalString(cmd, "status", strings.ToUpper(status)),
				CreativeID: optionalString(cmd, "creative", creativeID),
			}

			integrator, err := app.Integrator()
			if err != nil {
				return err
			}

			ad, err := integrator.UpdateAd(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			return app.Render(cmd.Context(), ad, nil)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "New name")
	cmd.Flags().StringVar(&status, "status", "", "New status: ACTIVE, PAUSED, ARCHIVED or DELETED")
	cmd.Flags().StringVar(&creativeID, "creative", "", "Swap the creative")

	return cmd
}
