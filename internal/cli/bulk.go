package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/internal/usecases/exporting"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
)

func newBulkCommand(app *App) *cobra.Command {
	return groupCommand("bulk", "Change status of many entities or export them to a file",
		newBulkStatusCommand(app, domain.StatusActive),
		newBulkStatusCommand(app, domain.StatusPaused),
		newBulkExportCommand(app),
	)
}

// parseStatusKind aceita só campanhas, conjuntos e anúncios
func parseStatusKind(raw string) (domain.EntityKind, error) {
	kind, ok := domain.ParseEntityKind(raw)
	if !ok || (kind != domain.KindCampaign && kind != domain.KindAdSet && kind != domain.KindAd) {
		return "", apiErrors.Newf(apiErrors.ErrInvalidParameter, "Invalid --type %q: must be campaign, adset or ad.", raw).
			WithDetail("field", "type")
	}
	return kind, nil
}

func newBulkStatusCommand(app *App, status string) *cobra.Command {
	var kindFlag, ids string

	verb := "activate"
	if status == domain.StatusPaused {
		verb = "pause"
	}

	cmd := &cobra.Command{
		Use:     verb,
		Short:   "Set many campaigns, ad sets or ads to " + status,
		Example: "  meta-ads bulk " + verb + " --type campaign --ids 120210000000001,120210000000002",
		Args:    exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if kindFlag == "" {
				return apiErrors.New(apiErrors.ErrMissingRequiredField, "--type is required.").WithDetail("field", "type")
			}
			kind, err := parseStatusKind(kindFlag)
			if err != nil {
				return err
			}

			list := splitCSV(ids)
			if len(list) == 0 {
				return apiErrors.New(apiErrors.ErrMissingRequiredField, "--ids is required.").WithDetail("field", "ids")
			}

			service, err := app.StatusService()
			if err != nil {
				return err
			}

			result, err := service.BulkSetStatus(cmd.Context(), kind, list, status)
			if err != nil {
				return err
			}

			if err := app.Render(cmd.Context(), result, nil); err != nil {
				return err
			}
			msg := fmt.Sprintf("%d of %d succeeded (%d changed)", result.Succeeded, result.Total, result.Changed)
			if result.Failed > 0 {
				app.Renderer.Warn(msg)
			} else {
				app.Renderer.Success(msg)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&kindFlag, "type", "t", "", "Entity type: campaign, adset or ad")
	cmd.Flags().StringVar(&ids, "ids", "", "Comma-separated entity IDs")

	return cmd
}

func newBulkExportCommand(app *App) *cobra.Command {
	var kindFlag, status, file string

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Export every campaign, ad set or ad to a JSON or XLSX file",
		Example: "  meta-ads bulk export --type campaigns --file campaigns.json\n  meta-ads bulk export --type ads --status ACTIVE --file ads.xlsx",
		Args:    exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if kindFlag == "" {
				return apiErrors.New(apiErrors.ErrMissingRequiredField, "--type is required.").WithDetail("field", "type")
			}
			kind, err := parseStatusKind(kindFlag)
			if err != nil {
				return err
			}
			if file == "" {
				return apiErrors.New(apiErrors.ErrMissingRequiredField, "--file is required.").WithDetail("field", "file")
			}

			service, err := app.ExportService()
			if err != nil {
				return err
			}

			result, err := service.Export(cmd.Context(), exporting.Request{Kind: kind, Status: strings.ToUpper(status), File: file})
			if err != nil {
				return err
			}

			if err := app.Render(cmd.Context(), result, nil); err != nil {
				return err
			}
			app.Renderer.Success(fmt.Sprintf("Exported %d %s to %s", result.Count, kindFlag, result.File))
			return nil
		},
	}
	cmd.Flags().StringVarP(&kindFlag, "type", "t", "", "Entity type: campaigns, adsets or ads")
	cmd.Flags().StringVarP(&status, "status", "s", "", "Only entities with this status")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Output file (.json or .xlsx)")

	return cmd
}
