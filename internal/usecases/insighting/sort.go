package insighting

import (
	"sort"
	"strings"

	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
)

type metric struct {
	value func(f *domain.FlatInsight) *float64
	cost  bool
}

func plain(get func(f *domain.FlatInsight) float64) func(f *domain.FlatInsight) *float64 {
	return func(f *domain.FlatInsight) *float64 {
		v := get(f)
		return &v
	}
}

// Campos de custo ordenam crescente com nulos no fim; os demais decrescente com ausente = 0
var sortableMetrics = map[string]metric{
	"spend":              {value: plain(func(f *domain.FlatInsight) float64 { return f.Spend })},
	"impressions":        {value: plain(func(f *domain.FlatInsight) float64 { return f.Impressions })},
	"reach":              {value: plain(func(f *domain.FlatInsight) float64 { return f.Reach })},
	"clicks":             {value: plain(func(f *domain.FlatInsight) float64 { return f.Clicks })},
	"ctr":                {value: plain(func(f *domain.FlatInsight) float64 { return f.CTR })},
	"results":            {value: plain(func(f *domain.FlatInsight) float64 { return f.Results })},
	"link_clicks":        {value: plain(func(f *domain.FlatInsight) float64 { return f.LinkClicks })},
	"landing_page_views": {value: plain(func(f *domain.FlatInsight) float64 { return f.LandingPageViews })},
	"video_plays":        {value: func(f *domain.FlatInsight) *float64 { return f.VideoPlays }},
	"video_thruplays":    {value: func(f *domain.FlatInsight) *float64 { return f.VideoThruplay }},
	"video_p25":          {value: func(f *domain.FlatInsight) *float64 { return f.VideoP25 }},
	"video_p50":          {value: func(f *domain.FlatInsight) *float64 { return f.VideoP50 }},
	"video_p75":          {value: func(f *domain.FlatInsight) *float64 { return f.VideoP75 }},
	"video_p100":         {value: func(f *domain.FlatInsight) *float64 { return f.VideoP100 }},
	"cost_per_result":    {value: func(f *domain.FlatInsight) *float64 { return f.CostPerResult }, cost: true},
	"cpc":                {value: func(f *domain.FlatInsight) *float64 { return f.CPC }, cost: true},
	"cpm":                {value: func(f *domain.FlatInsight) *float64 { return f.CPM }, cost: true},
}

// SortFields lista os campos aceitos em --sort-by
func SortFields() []string {
	fields := make([]string, 0, len(sortableMetrics))
	for name := range sortableMetrics {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return fields
}

// Sort ordena no lugar, de forma estável
func Sort(items []domain.FlatInsight, field string) error {
	m, ok := sortableMetrics[field]
	if !ok {
		return apiErrors.Newf(apiErrors.ErrInvalidParameter, "Invalid sort field %q: must be one of %s.", field, strings.Join(SortFields(), ", ")).
			WithDetail("field", "sort_by")
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := m.value(&items[i]), m.value(&items[j])

		if m.cost {
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			}
			return *a < *b
		}

		return valueOrZero(a) > valueOrZero(b)
	})
	return nil
}

func valueOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
