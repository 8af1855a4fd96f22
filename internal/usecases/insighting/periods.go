package insighting

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-cli/pkg/utils"
)

var (
	lastNDaysPattern     = regexp.MustCompile(`^last_(\d+)d$`)
	previousNDaysPattern = regexp.MustCompile(`^previous_(\d+)d$`)
)

// PeriodQuery é um lado da comparação: preset da API ou intervalo explícito
type PeriodQuery struct {
	Preset    string
	TimeRange *domain.TimeRange

	// start/end resolvidos localmente quando o preset é relativo a hoje
	start, end string
}

func (p PeriodQuery) Period() domain.Period {
	period := domain.Period{Preset: p.Preset, Start: p.start, End: p.end}
	if p.TimeRange != nil {
		period.Start, period.End = p.TimeRange.Since, p.TimeRange.Until
	}
	return period
}

// ComparePlan são as duas consultas de --compare; Warning sinaliza sobreposição de períodos
type ComparePlan struct {
	Current  PeriodQuery
	Previous PeriodQuery
	Warning  string
}

// ResolveComparePeriods interpreta "atual:anterior". previous_Nd vira um intervalo explícito que termina
// no dia anterior ao início do período atual; presets sobrepostos geram aviso
func ResolveComparePeriods(value string, today time.Time) (*ComparePlan, error) {
	today = utils.Today(today)

	parts := strings.Split(value, ":")
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return nil, apiErrors.New(apiErrors.ErrInvalidParameter, `Compare format must be "current:previous" (e.g., last_7d:previous_7d).`).
			WithDetail("value", value)
	}
	currentPreset, previousPreset := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])

	if !domain.IsDatePreset(currentPreset) {
		return nil, apiErrors.Newf(apiErrors.ErrInvalidParameter, "Invalid date preset %q for the current period.", currentPreset)
	}

	plan := &ComparePlan{Current: PeriodQuery{Preset: currentPreset}}
	currentStart, currentEnd, currentKnown := presetRange(currentPreset, today)
	if currentKnown {
		plan.Current.start, plan.Current.end = utils.FormatDate(currentStart), utils.FormatDate(currentEnd)
	}

	if match := previousNDaysPattern.FindStringSubmatch(previousPreset); match != nil {
		days, _ := strconv.Atoi(match[1])
		if days <= 0 {
			return nil, apiErrors.Newf(apiErrors.ErrInvalidParameter, "Invalid previous period %q.", previousPreset)
		}
		if !currentKnown {
			return nil, apiErrors.Newf(apiErrors.ErrInvalidParameter, "%s cannot be paired with %s: the current period has no fixed start date.", previousPreset, currentPreset)
		}

		end := currentStart.AddDate(0, 0, -1)
		start := end.AddDate(0, 0, -(days - 1))
		plan.Previous = PeriodQuery{
			Preset:    previousPreset,
			TimeRange: &domain.TimeRange{Since: utils.FormatDate(start), Until: utils.FormatDate(end)},
		}
		return plan, nil
	}

	if !domain.IsDatePreset(previousPreset) {
		return nil, apiErrors.Newf(apiErrors.ErrInvalidParameter, "Invalid date preset %q for the previous period: use a date preset or previous_Nd.", previousPreset)
	}

	plan.Previous = PeriodQuery{Preset: previousPreset}
	previousStart, previousEnd, previousKnown := presetRange(previousPreset, today)
	if previousKnown {
		plan.Previous.start, plan.Previous.end = utils.FormatDate(previousStart), utils.FormatDate(previousEnd)
	}

	switch {
	case currentPreset == previousPreset:
		plan.Warning = "Both periods use " + currentPreset + "; the comparison covers the same days."
	case currentKnown && previousKnown && !previousEnd.Before(currentStart) && !currentEnd.Before(previousStart):
		plan.Warning = "Periods " + currentPreset + " and " + previousPreset + " overlap; use previous_Nd for a non-overlapping comparison."
	}

	return plan, nil
}

// presetRange resolve os presets relativos a hoje. Presets como maximum não têm intervalo fixo
func presetRange(preset string, today time.Time) (start, end time.Time, ok bool) {
	yesterday := today.AddDate(0, 0, -1)

	if match := lastNDaysPattern.FindStringSubmatch(preset); match != nil {
		days, _ := strconv.Atoi(match[1])
		return today.AddDate(0, 0, -days), yesterday, true
	}

	year, month, _ := today.Date()
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	quarterStart := time.Date(year, month-(month-1)%3, 1, 0, 0, 0, 0, today.Location())

	switch preset {
	case "today":
		return today, today, true
	case "yesterday":
		return yesterday, yesterday, true
	case "this_month":
		return firstOfMonth, today, true
	case "last_month":
		return firstOfMonth.AddDate(0, -1, 0), firstOfMonth.AddDate(0, 0, -1), true
	case "this_quarter":
		return quarterStart, today, true
	case "last_quarter":
		return quarterStart.AddDate(0, -3, 0), quarterStart.AddDate(0, 0, -1), true
	case "this_year":
		return time.Date(year, 1, 1, 0, 0, 0, 0, today.Location()), today, true
	case "last_year":
		return time.Date(year-1, 1, 1, 0, 0, 0, 0, today.Location()), time.Date(year-1, 12, 31, 0, 0, 0, 0, today.Location()), true
	case "this_week_mon_today":
		return weekStart(today, time.Monday), today, true
	case "this_week_sun_today":
		return weekStart(today, time.Sunday), today, true
	case "last_week_mon_sun":
		start := weekStart(today, time.Monday).AddDate(0, 0, -7)
		return start, start.AddDate(0, 0, 6), true
	case "last_week_sun_sat":
		start := weekStart(today, time.Sunday).AddDate(0, 0, -7)
		return start, start.AddDate(0, 0, 6), true
	}

	return time.Time{}, time.Time{}, false
}

func weekStart(day time.Time, first time.Weekday) time.Time {
	offset := (int(day.Weekday()) - int(first) + 7) % 7
	return day.AddDate(0, 0, -offset)
}
