package insighting

import (
	"context"
	"time"

	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-cli/pkg/log"
	"github.com/vfg2006/meta-ads-cli/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// Options são os modos e filtros de insights get
type Options struct {
	Query domain.InsightsQuery

	Flatten          bool
	Compact          bool
	Summary          bool
	BreakdownSummary bool
	Compare          string

	Filters FilterOptions
	SortBy  string
	Top     int
	Bottom  int

	ActiveOnly     bool
	IncludeContext bool
	ByObjective    bool
}

// normalized indica se o pipeline de normalização é necessário; filtros e ordenação o implicam
func (o Options) normalized() bool {
	return o.Flatten || o.Compact || o.Summary || o.BreakdownSummary ||
		o.SortBy != "" || o.Top > 0 || o.Bottom > 0 || !o.Filters.IsZero() ||
		o.ActiveOnly || o.IncludeContext
}

func (o Options) Validate() error {
	q := o.Query

	if _, err := domain.ParseLevel(string(q.Level)); err != nil {
		return err
	}
	if q.DatePreset != "" && !domain.IsDatePreset(q.DatePreset) {
		return apiErrors.Newf(apiErrors.ErrInvalidParameter, "Invalid date preset %q.", q.DatePreset).WithDetail("field", "date_preset")
	}
	if q.DatePreset != "" && q.TimeRange != nil {
		return apiErrors.New(apiErrors.ErrInvalidParameter, "Use either --date-preset or --since/--until, not both.")
	}
	if q.TimeRange != nil {
		if err := validateTimeRange(q.TimeRange); err != nil {
			return err
		}
	}
	for _, breakdown := range q.Breakdowns {
		if !domain.IsBreakdown(breakdown) {
			return apiErrors.Newf(apiErrors.ErrInvalidParameter, "Invalid breakdown %q.", breakdown).WithDetail("field", "breakdowns")
		}
	}

	if o.BreakdownSummary && len(q.Breakdowns) == 0 {
		return apiErrors.New(apiErrors.ErrMissingRequiredField, "--breakdown-summary requires --breakdowns.").WithDetail("field", "breakdowns")
	}
	if o.Top < 0 || o.Bottom < 0 {
		return apiErrors.New(apiErrors.ErrInvalidParameter, "--top and --bottom must be positive.")
	}
	if o.SortBy != "" {
		if _, ok := sortableMetrics[o.SortBy]; !ok {
			return Sort(nil, o.SortBy)
		}
	}
	if o.Compare != "" && (q.DatePreset != "" || q.TimeRange != nil) {
		return apiErrors.New(apiErrors.ErrInvalidParameter, "--compare defines its own periods; remove --date-preset/--since/--until.")
	}

	return nil
}

func validateTimeRange(tr *domain.TimeRange) error {
	since, err := utils.ParseDate(tr.Since)
	if err != nil || tr.Since == "" {
		return apiErrors.Newf(apiErrors.ErrInvalidParameter, "Invalid --since date %q: use YYYY-MM-DD.", tr.Since).WithDetail("field", "since")
	}
	until, err := utils.ParseDate(tr.Until)
	if err != nil || tr.Until == "" {
		return apiErrors.Newf(apiErrors.ErrInvalidParameter, "Invalid --until date %q: use YYYY-MM-DD.", tr.Until).WithDetail("field", "until")
	}
	if since.After(*until) {
		return apiErrors.New(apiErrors.ErrInvalidParameter, "--since must not be after --until.")
	}
	return nil
}

// Report combina resumo e breakdowns quando os dois modos são pedidos juntos
type Report struct {
	Summary    domain.InsightSummary     `json:"summary"`
	Breakdowns []domain.BreakdownSummary `json:"breakdowns"`
}

type Service struct {
	repo    Repository
	matcher *ActionMatcher
	now     func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:    repo,
		matcher: DefaultMatcher(),
		now:     time.Now,
	}
}

// Get executa a consulta e devolve o payload do modo pedido: registros brutos, normalizados,
// compactos, resumo, breakdowns ou comparação
func (s *Service) Get(ctx context.Context, opts Options) (any, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.ByObjective {
		opts.Query.ExtraFields = opts.Query.ExtraFields.With("objective")
	}

	if opts.Compare != "" {
		return s.compare(ctx, opts)
	}

	withStates := opts.ActiveOnly || opts.IncludeContext
	if withStates && opts.Query.Level == domain.LevelAccount {
		log.ForContext(ctx).Warn("Status de entrega não se aplica ao nível de conta, filtro ignorado")
		withStates = false
	}

	records, states, err := s.fetch(ctx, opts.Query, withStates)
	if err != nil {
		return nil, err
	}

	if !opts.normalized() {
		return records, nil
	}

	flat := FlattenAll(records, s.matcher, opts.ByObjective)
	if withStates {
		flat = attachStates(flat, opts.Query.Level, states, opts.ActiveOnly, opts.IncludeContext)
	}
	flat = Filter(flat, opts.Filters)

	if opts.SortBy != "" {
		if err := Sort(flat, opts.SortBy); err != nil {
			return nil, err
		}
	}
	flat = SelectTopBottom(flat, opts.Query.Level, opts.Top, opts.Bottom)

	log.ForContext(ctx).WithFields(log.Fields{
		"records":  len(records),
		"selected": len(flat),
	}).Debug("Insights normalizados")

	switch {
	case opts.Summary && opts.BreakdownSummary:
		return Report{
			Summary:    Summarize(flat, opts.Query.Level),
			Breakdowns: SummarizeBreakdowns(flat, opts.Query.Breakdowns),
		}, nil
	case opts.Summary:
		return Summarize(flat, opts.Query.Level), nil
	case opts.BreakdownSummary:
		return SummarizeBreakdowns(flat, opts.Query.Breakdowns), nil
	case opts.Compact:
		return Compact(flat, opts.Query.Level), nil
	}
	return flat, nil
}

// fetch busca os insights e, em paralelo, o estado das entidades do nível
func (s *Service) fetch(ctx context.Context, q domain.InsightsQuery, withStates bool) ([]domain.Insight, map[string]domain.EntityState, error) {
	var records []domain.Insight
	var states map[string]domain.EntityState

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.repo.GetInsights(gctx, q)
		return err
	})
	if withStates {
		g.Go(func() error {
			var err error
			states, err = s.repo.ListEntityStates(gctx, q.Level)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return records, states, nil
}

func attachStates(items []domain.FlatInsight, level domain.Level, states map[string]domain.EntityState, activeOnly, withContext bool) []domain.FlatInsight {
	out := make([]domain.FlatInsight, 0, len(items))
	for _, item := range items {
		id, _ := item.Entity(level)
		state, ok := states[id]

		if activeOnly && (!ok || !state.IsActive()) {
			continue
		}
		if ok {
			item.Status = state.EffectiveStatus
			if withContext {
				item.DailyBudget = state.DailyBudget
				item.LifetimeBudget = state.LifetimeBudget
			}
		}
		out = append(out, item)
	}
	return out
}

func (s *Service) compare(ctx context.Context, opts Options) (*domain.PeriodComparison, error) {
	plan, err := ResolveComparePeriods(opts.Compare, s.now())
	if err != nil {
		return nil, err
	}

	currentQuery := opts.Query
	currentQuery.DatePreset, currentQuery.TimeRange = plan.Current.Preset, nil

	previousQuery := opts.Query
	if plan.Previous.TimeRange != nil {
		previousQuery.DatePreset, previousQuery.TimeRange = "", plan.Previous.TimeRange
	} else {
		previousQuery.DatePreset, previousQuery.TimeRange = plan.Previous.Preset, nil
	}

	var current, previous []domain.Insight

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.repo.GetInsights(gctx, currentQuery)
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = s.repo.GetInsights(gctx, previousQuery)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if plan.Warning != "" {
		log.ForContext(ctx).WithField("compare", opts.Compare).Warn("Períodos de comparação se sobrepõem")
	}

	currentFlat := Filter(FlattenAll(current, s.matcher, opts.ByObjective), opts.Filters)
	previousFlat := Filter(FlattenAll(previous, s.matcher, opts.ByObjective), opts.Filters)

	comparison := Compare(currentFlat, previousFlat, plan)

	log.ForContext(ctx).WithFields(log.Fields{
		"current_spend":  comparison.Spend.Current,
		"previous_spend": comparison.Spend.Previous,
		"trend":          comparison.Trend,
	}).Debug("Comparação de períodos concluída")

	return &comparison, nil
}
