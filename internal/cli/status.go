package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/meta-ads-cli/internal/domain"
)

// newStatusCommand monta activate/pause de um tipo de entidade; a escrita só acontece se o status mudar
func newStatusCommand(app *App, kind domain.EntityKind, status string) *cobra.Command {
	verb := "activate"
	if status == domain.StatusPaused {
		verb = "pause"
	}

	return &cobra.Command{
		Use:   verb + " <" + string(kind) + "-id>",
		Short: strings.ToUpper(verb[:1]) + verb[1:] + " a " + string(kind) + " (no-op when it already is " + status + ")",
		Args:  exactArgs(string(kind) + "-id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := app.StatusService()
			if err != nil {
				return err
			}

			change, err := service.SetStatus(cmd.Context(), kind, args[0], status)
			if err != nil {
				return err
			}

			if err := app.Render(cmd.Context(), change, nil); err != nil {
				return err
			}
			if change.Changed {
				app.Renderer.Success(string(kind) + " " + args[0] + " is now " + status)
			}
			return nil
		},
	}
}
