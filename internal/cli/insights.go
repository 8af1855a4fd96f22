package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/internal/usecases/insighting"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
)

func newInsightsCommand(app *App) *cobra.Command {
	return groupCommand("insights", "Query and reshape performance insights",
		newInsightsGetCommand(app),
	)
}

type insightsFlags struct {
	level, datePreset, since, until string
	breakdowns, fields              string
	limit                           int
	all                             bool

	flatten, compact, summary, breakdownSummary bool
	compare                                     string

	sortBy      string
	top, bottom int

	minSpend, minImpressions, minResults float64
	resultType                           string

	activeOnly, includeContext, videoMetrics, byObjective bool
}

func newInsightsGetCommand(app *App) *cobra.Command {
	f := &insightsFlags{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Fetch insights, optionally flattened, filtered, ranked, summarized or compared",
		Example: `  meta-ads insights get --level campaign --date-preset last_7d --summary
  meta-ads insights get --level ad --date-preset last_30d --sort-by cost_per_result --top 5 --min-spend 10
  meta-ads insights get --level adset --breakdowns age,gender --breakdown-summary
  meta-ads insights get --level campaign --compare last_7d:previous_7d`,
		Args: exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := f.options(cmd)
			if err != nil {
				return err
			}

			service, err := app.InsightService()
			if err != nil {
				return err
			}

			data, err := service.Get(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if comparison, ok := data.(*domain.PeriodComparison); ok && comparison.Warning != "" {
				app.Renderer.Warn(comparison.Warning)
			}
			return app.Render(cmd.Context(), data, nil)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.level, "level", "", "Aggregation level: account, campaign, adset or ad (required)")
	flags.StringVar(&f.datePreset, "date-preset", "", "Date preset (see `meta-ads schema date_presets`)")
	flags.StringVar(&f.since, "since", "", "Start date YYYY-MM-DD (requires --until)")
	flags.StringVar(&f.until, "until", "", "End date YYYY-MM-DD (requires --since)")
	flags.StringVar(&f.breakdowns, "breakdowns", "", "Comma-separated breakdowns (age, gender, country, ...)")
	flags.StringVar(&f.fields, "fields", "", "Comma-separated metrics to fetch")
	flags.IntVarP(&f.limit, "limit", "l", domain.DefaultPageSize, "Page size")
	flags.BoolVar(&f.all, "all", false, "Fetch every page (up to 100 pages)")

	flags.BoolVar(&f.flatten, "flatten", false, "Normalize records: numeric metrics, primary result and cost per result")
	flags.BoolVar(&f.compact, "compact", false, "Minimal records: name, spend, results, cost per result")
	flags.BoolVar(&f.summary, "summary", false, "Totals, averages and best/worst performers")
	flags.BoolVar(&f.breakdownSummary, "breakdown-summary", false, "Aggregate by each breakdown value (requires --breakdowns)")
	flags.StringVar(&f.compare, "compare", "", "Compare two periods, e.g., last_7d:previous_7d or this_month:last_month")

	flags.StringVar(&f.sortBy, "sort-by", "", "Sort by metric ("+strings.Join(insighting.SortFields(), ", ")+")")
	flags.IntVar(&f.top, "top", 0, "Keep the first N records after sorting")
	flags.IntVar(&f.bottom, "bottom", 0, "Keep the last N records after sorting")

	flags.Float64Var(&f.minSpend, "min-spend", 0, "Only records with spend >= value")
	flags.Float64Var(&f.minImpressions, "min-impressions", 0, "Only records with impressions >= value")
	flags.Float64Var(&f.minResults, "min-results", 0, "Only records with results >= value")
	flags.StringVar(&f.resultType, "result-type", "", "Only records whose primary result is this action (lead, purchase, ...)")

	flags.BoolVar(&f.activeOnly, "active-only", false, "Only entities currently delivering (extra API call)")
	flags.BoolVar(&f.includeContext, "include-context", false, "Attach status and budgets of each entity (extra API call)")
	flags.BoolVar(&f.videoMetrics, "video-metrics", false, "Request video view metrics")
	flags.BoolVar(&f.byObjective, "objective", false, "Pick the primary result from each campaign objective")

	return cmd
}

func (f *insightsFlags) options(cmd *cobra.Command) (insighting.Options, error) {
	if f.level == "" {
		return insighting.Options{}, apiErrors.New(apiErrors.ErrMissingRequiredField, "--level is required.").WithDetail("field", "level")
	}
	level, err := domain.ParseLevel(strings.ToLower(f.level))
	if err != nil {
		return insighting.Options{}, err
	}
	if f.limit <= 0 {
		return insighting.Options{}, apiErrors.Newf(apiErrors.ErrInvalidParameter, "--limit must be positive, got %d.", f.limit).
			WithDetail("field", "limit")
	}

	var fields domain.FieldSet
	if strings.TrimSpace(f.fields) != "" {
		if fields, err = domain.ParseFieldSet(f.fields, domain.KnownInsightFields()); err != nil {
			return insighting.Options{}, err
		}
	}

	query := domain.InsightsQuery{
		Level:        level,
		DatePreset:   strings.ToLower(f.datePreset),
		Fields:       fields,
		Breakdowns:   splitCSV(f.breakdowns),
		Limit:        f.limit,
		All:          f.all,
		VideoMetrics: f.videoMetrics,
	}

	switch {
	case f.since != "" && f.until != "":
		query.TimeRange = &domain.TimeRange{Since: f.since, Until: f.until}
	case f.since != "" || f.until != "":
		return insighting.Options{}, apiErrors.New(apiErrors.ErrMissingRequiredField, "--since and --until must be used together.").
			WithDetail("field", "time_range")
	}

	return insighting.Options{
		Query:            query,
		Flatten:          f.flatten,
		Compact:          f.compact,
		Summary:          f.summary,
		BreakdownSummary: f.breakdownSummary,
		Compare:          strings.ToLower(f.compare),
		Filters: insighting.FilterOptions{
			MinSpend:       optionalFloat(cmd, "min-spend", f.minSpend),
			MinImpressions: optionalFloat(cmd, "min-impressions", f.minImpressions),
			MinResults:     optionalFloat(cmd, "min-results", f.minResults),
			ResultType:     strings.TrimSpace(f.resultType),
		},
		SortBy:         strings.ToLower(f.sortBy),
		Top:            f.top,
		Bottom:         f.bottom,
		ActiveOnly:     f.activeOnly,
		IncludeContext: f.includeContext,
		ByObjective:    f.byObjective,
	}, nil
}
