package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/meta-ads-cli/internal/domain"
)

func newCreativesCommand(app *App) *cobra.Command {
	cmd := groupCommand("creatives", "Manage ad creatives",
		newCreativesListCommand(app),
		newCreativesGetCommand(app),
		newCreativesCreateCommand(app),
	)
	cmd.Aliases = []string{"creative", "adcreatives"}
	return cmd
}

func newCreativesListCommand(app *App) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List creatives of the ad account",
		Args:  exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := flags.options(domain.KindCreative)
			if err != nil {
				return err
			}

			integrator, err := app.Integrator()
			if err != nil {
				return err
			}

			result, err := integrator.ListCreatives(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return RenderList(cmd.Context(), app, result)
		},
	}
	addListFlags(cmd, flags, false)

	return cmd
}

func newCreativesGetCommand(app *App) *cobra.Command {
	var fields string

	cmd := &cobra.Command{
		Use:   "get <creative-id>",
		Short: "Show a creative",
		Args:  exactArgs("creative-id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			fieldSet, err := parseFields(fields, domain.KindCreative)
			if err != nil {
				return err
			}

			integrator, err := app.Integrator()
			if err != nil {
				return err
			}

			creative, err := integrator.GetCreative(cmd.Context(), args[0], fieldSet)
			if err != nil {
				return err
			}
			return app.Render(cmd.Context(), creative, nil)
		},
	}
	addFieldsFlag(cmd, &fields)

	return cmd
}

func newCreativesCreateCommand(app *App) *cobra.Command {
	var (
		params    domain.AdCreativeCreate
		storySpec string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a creative from an object_story_spec or a link + image shortcut",
		Example: `  meta-ads creatives create --name "Spring" --page-id 1234567890 \
    --link https://example.com --message "New collection" --image-hash abc123 --call-to-action SHOP_NOW
  meta-ads creatives create --name "Raw" --object-story-spec '{"page_id":"1234567890","link_data":{"link":"https://example.com"}}'`,
		Args: exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if params.ObjectStorySpec, err = parseJSONFlag("object-story-spec", storySpec); err != nil {
				return err
			}
			params.CallToAction = strings.ToUpper(params.CallToAction)

			integrator, err := app.Integrator()
			if err != nil {
				return err
			}

			creative, err := integrator.CreateCreative(cmd.Context(), params)
			if err != nil {
				return err
			}

			if err := app.Render(cmd.Context(), creative, nil); err != nil {
				return err
			}
			app.Renderer.Success("Creative " + creative.ID + " created")
			return nil
		},
	}

	cmd.Flags().StringVarP(&params.Name, "name", "n", "", "Creative name")
	cmd.Flags().StringVar(&storySpec, "object-story-spec", "", "Full object_story_spec as a JSON object")
	cmd.Flags().StringVar(&params.PageID, "page-id", "", "Facebook page ID (link shortcut)")
	cmd.Flags().StringVar(&params.Link, "link", "", "Destination URL (link shortcut)")
	cmd.Flags().StringVar(&params.Message, "message", "", "Primary text (link shortcut)")
	cmd.Flags().StringVar(&params.ImageHash, "image-hash", "", "Hash of an uploaded image (link shortcut)")
	cmd.Flags().StringVar(&params.Headline, "headline", "", "Headline (link shortcut)")
	cmd.Flags().StringVar(&params.CallToAction, "call-to-action", "", "Call to action type, e.g., SHOP_NOW (link shortcut)")

	return cmd
}
