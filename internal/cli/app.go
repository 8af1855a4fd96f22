package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/vfg2006/meta-ads-cli/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-ads-cli/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-cli/internal/config"
	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/internal/output"
	"github.com/vfg2006/meta-ads-cli/internal/usecases/exporting"
	"github.com/vfg2006/meta-ads-cli/internal/usecases/insighting"
	"github.com/vfg2006/meta-ads-cli/internal/usecases/managing"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-cli/pkg/log"
	"github.com/vfg2006/meta-ads-cli/pkg/utils"
)

// GlobalFlags são as flags persistentes aceitas por todos os comandos
type GlobalFlags struct {
	Output       string
	Account      string
	Token        string
	Verbose      bool
	Quiet        bool
	OutputFields string
}

// App guarda o estado de uma execução: configuração resolvida, renderer e serviços
type App struct {
	flags  GlobalFlags
	stdout io.Writer
	stderr io.Writer

	Store    *config.Store
	Config   *config.Config
	Renderer *output.Renderer

	client     *metaclient.MetaClient
	integrator *meta.MetaIntegrator
}

func newApp(stdout, stderr io.Writer) *App {
	return &App{stdout: stdout, stderr: stderr}
}

// setup resolve a configuração (flag > env > arquivo > padrão) e prepara logger e renderer
func (a *App) setup(cmd *cobra.Command) error {
	path, err := config.DefaultPath()
	if err != nil {
		return err
	}

	store, err := config.Open(path)
	if err != nil {
		return err
	}

	overrides := config.Overrides{
		AccessToken:  a.flags.Token,
		AccountID:    a.flags.Account,
		OutputFormat: a.flags.Output,
	}
	if cmd.Flags().Changed("verbose") {
		overrides.Verbose = &a.flags.Verbose
	}

	cfg, err := config.NewConfig(store, overrides)
	if err != nil {
		return err
	}

	log.Setup(log.Options{
		Level:   cfg.App.LogLevel,
		Verbose: cfg.App.Verbose,
		File:    cfg.App.LogFile,
		Output:  a.stderr,
	})

	a.Store = store
	a.Config = cfg
	a.Renderer = &output.Renderer{
		Format:  cfg.App.OutputFormat,
		Verbose: cfg.App.Verbose,
		Quiet:   a.flags.Quiet,
		Fields:  output.ParseOutputFields(a.flags.OutputFields),
		Out:     a.stdout,
		ErrOut:  a.stderr,
	}

	log.ForContext(cmd.Context()).WithFields(log.Fields{
		"command":     cmd.CommandPath(),
		"config_path": path,
		"api_version": cfg.Meta.Version,
	}).Debug("Configuração carregada")

	return nil
}

// fallbackRenderer é usado quando o erro acontece antes da configuração ser resolvida
func (a *App) fallbackRenderer() *output.Renderer {
	if a.Renderer != nil {
		return a.Renderer
	}

	format := output.FormatJSON
	if a.flags.Output == output.FormatTable {
		format = output.FormatTable
	}
	return &output.Renderer{Format: format, Verbose: a.flags.Verbose, Out: a.stdout, ErrOut: a.stderr}
}

// Client devolve o transporte da Graph API; exige um token configurado
func (a *App) Client() (*metaclient.MetaClient, error) {
	if a.Config.Meta.AccessToken == "" {
		return nil, apiErrors.New(apiErrors.ErrAuthNotConfigured, "")
	}
	if a.client == nil {
		a.client = metaclient.NewClient(a.Config)
	}
	return a.client, nil
}

// Integrator devolve o repositório de entidades
func (a *App) Integrator() (*meta.MetaIntegrator, error) {
	if a.integrator != nil {
		return a.integrator, nil
	}

	client, err := a.Client()
	if err != nil {
		return nil, err
	}

	a.integrator = meta.New(a.Config, client)
	return a.integrator, nil
}

// tokenManager não exige token configurado: auth login valida o token antes de gravá-lo
func (a *App) tokenManager() *metaclient.TokenManager {
	if a.client == nil {
		a.client = metaclient.NewClient(a.Config)
	}
	return metaclient.NewTokenManager(a.client)
}

func (a *App) InsightService() (*insighting.Service, error) {
	integrator, err := a.Integrator()
	if err != nil {
		return nil, err
	}
	return insighting.NewService(integrator), nil
}

func (a *App) StatusService() (managing.StatusService, error) {
	integrator, err := a.Integrator()
	if err != nil {
		return nil, err
	}
	return managing.NewService(integrator), nil
}

func (a *App) ExportService() (exporting.ExportService, error) {
	integrator, err := a.Integrator()
	if err != nil {
		return nil, err
	}
	return exporting.NewService(integrator), nil
}

// Render escreve o envelope de sucesso com os metadados da execução
func (a *App) Render(ctx context.Context, data any, pagination *domain.PaginationMeta) error {
	meta := output.Meta{
		AccountID:  domain.NormalizeAccountID(a.Config.Meta.AccountID),
		Pagination: pagination,
	}

	if requestID, err := utils.GenerateID(); err == nil {
		meta.RequestID = requestID
	}
	if a.client != nil {
		meta.RateLimit = a.client.RateLimitInfo()
	}

	log.ForContext(ctx).WithField("request_id", meta.RequestID).Debug("Renderizando resposta")

	return a.Renderer.Render(output.NewSuccess(data, meta))
}

// RenderList é o Render de uma listagem, expondo o cursor quando há próxima página
func RenderList[T any](ctx context.Context, a *App, result *domain.ListResult[T]) error {
	return a.Render(ctx, result.Data, result.Paging)
}

// RenderFailure escreve o envelope de erro; nunca falha
func (a *App) RenderFailure(ctx context.Context, err error) {
	failure := output.NewFailure(err)

	log.ForContext(ctx).WithFields(log.Fields{
		"code":      failure.Error.Code,
		"retryable": failure.Error.Retryable,
	}).WithError(err).Debug("Comando falhou")

	if renderErr := a.fallbackRenderer().Render(failure); renderErr != nil {
		log.ForContext(ctx).WithError(renderErr).Error("Erro ao renderizar o envelope de erro")
	}
}
