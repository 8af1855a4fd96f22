package cli

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/meta-ads-cli/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-ads-cli/internal/domain"
)

func newImagesCommand(app *App) *cobra.Command {
	cmd := groupCommand("images", "Manage the ad image library",
		newImagesListCommand(app),
		newImagesUploadCommand(app),
	)
	cmd.Aliases = []string{"adimages", "image"}
	return cmd
}

func newImagesListCommand(app *App) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List images of the ad account",
		Args:  exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := flags.options(domain.KindImage)
			if err != nil {
				return err
			}

			integrator, err := app.Integrator()
			if err != nil {
				return err
			}

			result, err := integrator.ListImages(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return RenderList(cmd.Context(), app, result)
		},
	}
	addListFlags(cmd, flags, false)

	return cmd
}

func newImagesUploadCommand(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:     "upload <file>",
		Short:   "Upload an image and print its hash",
		Example: "  meta-ads images upload ./banner.jpg --name spring-banner",
		Args:    exactArgs("file"),
		RunE: func(cmd *cobra.Command, args []string) error {
			integrator, err := app.Integrator()
			if err != nil {
				return err
			}

			image, err := integrator.UploadImage(cmd.Context(), meta.ImageUpload{FilePath: args[0], Name: name})
			if err != nil {
				return err
			}

			if err := app.Render(cmd.Context(), image, nil); err != nil {
				return err
			}
			app.Renderer.Success("Image uploaded, hash " + image.Hash)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Image name (defaults to the file name)")

	return cmd
}

func newVideosCommand(app *App) *cobra.Command {
	cmd := groupCommand("videos", "Manage the ad video library",
		newVideosListCommand(app),
		newVideosGetCommand(app),
		newVideosUploadCommand(app),
	)
	cmd.Aliases = []string{"advideos", "video"}
	return cmd
}

func newVideosListCommand(app *App) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List videos of the ad account",
		Args:  exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := flags.options(domain.KindVideo)
			if err != nil {
				return err
			}

			integrator, err := app.Integrator()
			if err != nil {
				return err
			}

			result, err := integrator.ListVideos(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return RenderList(cmd.Context(), app, result)
		},
	}
	addListFlags(cmd, flags, false)

	return cmd
}

func newVideosGetCommand(app *App) *cobra.Command {
	var fields string

	cmd := &cobra.Command{
		Use:   "get <video-id>",
		Short: "Show a video and its processing status",
		Args:  exactArgs("video-id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			fieldSet, err := parseFields(fields, domain.KindVideo)
			if err != nil {
				return err
			}

			integrator, err := app.Integrator()
			if err != nil {
				return err
			}

			video, err := integrator.GetVideo(cmd.Context(), args[0], fieldSet)
			if err != nil {
				return err
			}
			return app.Render(cmd.Context(), video, nil)
		},
	}
	addFieldsFlag(cmd, &fields)

	return cmd
}

func newVideosUploadCommand(app *App) *cobra.Command {
	var params domain.VideoUpload

	cmd := &cobra.Command{
		Use:     "upload [file]",
		Short:   "Upload a local video or let Meta fetch it from --url",
		Example: "  meta-ads videos upload ./promo.mp4 --name promo\n  meta-ads videos upload --url https://example.com/promo.mp4",
		Args:    maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				params.FilePath = args[0]
			}

			integrator, err := app.Integrator()
			if err != nil {
				return err
			}

			video, err := integrator.UploadVideo(cmd.Context(), params)
			if err != nil {
				return err
			}

			if err := app.Render(cmd.Context(), video, nil); err != nil {
				return err
			}
			app.Renderer.Success("Video uploaded, id " + video.ID + " (processing may take a few minutes)")
			return nil
		},
	}
	cmd.Flags().StringVarP(&params.Name, "name", "n", "", "Video title (defaults to the file name)")
	cmd.Flags().StringVar(&params.FileURL, "url", "", "Public URL for Meta to download instead of a local file")

	return cmd
}
