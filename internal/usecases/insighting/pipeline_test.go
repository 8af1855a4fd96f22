package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-cli/pkg/utils"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name     string
		record   domain.Insight
		validate func(t *testing.T, flat domain.FlatInsight)
	}{
		{
			name: "resultado e custo do mesmo tipo",
			record: domain.Insight{
				AdID: "1", AdName: "Anúncio", Spend: "25.50", Impressions: "1000", Clicks: "30", CTR: "3", CPC: "0.85",
				Actions:           actions("link_click", "30", "landing_page_view", "12", "offsite_conversion.fb_pixel_purchase", "3"),
				CostPerActionType: actions("link_click", "0.85", "purchase", "8.50"),
			},
			validate: func(t *testing.T, flat domain.FlatInsight) {
				assert.Equal(t, 25.5, flat.Spend)
				assert.Equal(t, "purchase", flat.ResultType)
				assert.Equal(t, 3.0, flat.Results)
				require.NotNil(t, flat.CostPerResult)
				assert.Equal(t, 8.5, *flat.CostPerResult)
				assert.Equal(t, 30.0, flat.LinkClicks)
				assert.Equal(t, 12.0, flat.LandingPageViews)
				require.NotNil(t, flat.CPC)
				assert.Nil(t, flat.CPM)
			},
		},
		{
			name: "sem custo correspondente",
			record: domain.Insight{
				Spend:             "10",
				Actions:           actions("lead", "2"),
				CostPerActionType: actions("link_click", "1"),
			},
			validate: func(t *testing.T, flat domain.FlatInsight) {
				assert.Equal(t, "lead", flat.ResultType)
				assert.Equal(t, 2.0, flat.Results)
				assert.Nil(t, flat.CostPerResult)
			},
		},
		{
			name:   "registro vazio não é descartado",
			record: domain.Insight{},
			validate: func(t *testing.T, flat domain.FlatInsight) {
				assert.Equal(t, domain.ResultTypeNone, flat.ResultType)
				assert.Zero(t, flat.Results)
				assert.Nil(t, flat.CostPerResult)
				assert.Nil(t, flat.VideoPlays)
			},
		},
		{
			name: "métricas de vídeo",
			record: domain.Insight{
				VideoPlayActions:     actions("video_view", "120"),
				VideoThruplayActions: actions("video_view", "40"),
			},
			validate: func(t *testing.T, flat domain.FlatInsight) {
				require.NotNil(t, flat.VideoPlays)
				assert.Equal(t, 120.0, *flat.VideoPlays)
				assert.Equal(t, 40.0, *flat.VideoThruplay)
				assert.Nil(t, flat.VideoP100)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Flatten(tt.record, DefaultMatcher()))
		})
	}
}

func TestFlattenAllByObjective(t *testing.T) {
	records := []domain.Insight{
		{CampaignID: "1", Objective: "OUTCOME_TRAFFIC", Actions: actions("purchase", "1", "link_click", "50")},
		{CampaignID: "2", Objective: "OUTCOME_SALES", Actions: actions("purchase", "1", "link_click", "50")},
	}

	flat := FlattenAll(records, DefaultMatcher(), true)
	require.Len(t, flat, 2)
	assert.Equal(t, "link_click", flat[0].ResultType)
	assert.Equal(t, 50.0, flat[0].Results)
	assert.Equal(t, "purchase", flat[1].ResultType)

	flat = FlattenAll(records, DefaultMatcher(), false)
	assert.Equal(t, "purchase", flat[0].ResultType)
}

func TestFilter(t *testing.T) {
	items := []domain.FlatInsight{
		{AdID: "1", Spend: 4, Impressions: 500, Results: 0, ResultType: domain.ResultTypeNone},
		{AdID: "2", Spend: 10, Impressions: 100, Results: 2, ResultType: "lead"},
		{AdID: "3", Spend: 20, Impressions: 2000, Results: 5, ResultType: "purchase"},
	}

	ids := func(items []domain.FlatInsight) []string {
		out := make([]string, 0)
		for _, item := range items {
			out = append(out, item.AdID)
		}
		return out
	}

	assert.Equal(t, []string{"1", "2", "3"}, ids(Filter(items, FilterOptions{})))
	assert.Equal(t, []string{"2", "3"}, ids(Filter(items, FilterOptions{MinSpend: utils.Float64Ptr(5)})))
	assert.Equal(t, []string{"3"}, ids(Filter(items, FilterOptions{MinSpend: utils.Float64Ptr(5), MinImpressions: utils.Float64Ptr(200)})))
	assert.Equal(t, []string{"2"}, ids(Filter(items, FilterOptions{ResultType: "lead"})))
	assert.Equal(t, []string{"2", "3"}, ids(Filter(items, FilterOptions{MinResults: utils.Float64Ptr(1)})))
	assert.Empty(t, Filter(items, FilterOptions{ResultType: "lead", MinResults: utils.Float64Ptr(3)}))
}

func TestSort(t *testing.T) {
	cpr := utils.Float64Ptr

	t.Run("custo crescente com nulos no fim e estável", func(t *testing.T) {
		items := []domain.FlatInsight{
			{AdID: "a", CostPerResult: nil},
			{AdID: "b", CostPerResult: cpr(5)},
			{AdID: "c", CostPerResult: cpr(2)},
			{AdID: "d", CostPerResult: nil},
			{AdID: "e", CostPerResult: cpr(5)},
		}
		require.NoError(t, Sort(items, "cost_per_result"))

		got := make([]string, 0)
		for _, item := range items {
			got = append(got, item.AdID)
		}
		assert.Equal(t, []string{"c", "b", "e", "a", "d"}, got)
	})

	t.Run("volume decrescente", func(t *testing.T) {
		items := []domain.FlatInsight{{AdID: "a", Spend: 1}, {AdID: "b", Spend: 9}, {AdID: "c", Spend: 9}, {AdID: "d", Spend: 3}}
		require.NoError(t, Sort(items, "spend"))

		got := make([]string, 0)
		for _, item := range items {
			got = append(got, item.AdID)
		}
		assert.Equal(t, []string{"b", "c", "d", "a"}, got)
	})

	t.Run("métrica opcional ausente conta como zero", func(t *testing.T) {
		items := []domain.FlatInsight{{AdID: "a"}, {AdID: "b", VideoPlays: cpr(10)}}
		require.NoError(t, Sort(items, "video_plays"))
		assert.Equal(t, "b", items[0].AdID)
	})

	t.Run("cpm nulo vai para o fim", func(t *testing.T) {
		items := []domain.FlatInsight{{AdID: "a"}, {AdID: "b", CPM: cpr(12)}}
		require.NoError(t, Sort(items, "cpm"))
		assert.Equal(t, "b", items[0].AdID)
	})

	t.Run("campo desconhecido", func(t *testing.T) {
		err := Sort([]domain.FlatInsight{{}}, "name")
		assert.Equal(t, apiErrors.ErrInvalidParameter, apiErrors.Code(err))
	})
}

func numbered(n int) []domain.FlatInsight {
	items := make([]domain.FlatInsight, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, domain.FlatInsight{AdID: string(rune('a' + i))})
	}
	return items
}

func TestSelectTopBottom(t *testing.T) {
	idsOf := func(items []domain.FlatInsight) []string {
		out := make([]string, 0)
		for _, item := range items {
			out = append(out, item.AdID)
		}
		return out
	}

	tests := []struct {
		name   string
		items  []domain.FlatInsight
		top    int
		bottom int
		want   []string
	}{
		{name: "sem corte", items: numbered(3), want: []string{"a", "b", "c"}},
		{name: "top", items: numbered(10), top: 3, want: []string{"a", "b", "c"}},
		{name: "bottom", items: numbered(10), bottom: 2, want: []string{"i", "j"}},
		{name: "top e bottom sem interseção", items: numbered(10), top: 3, bottom: 3, want: []string{"a", "b", "c", "h", "i", "j"}},
		{name: "top e bottom com interseção", items: numbered(4), top: 3, bottom: 3, want: []string{"a", "b", "c", "d"}},
		{name: "maior que o conjunto", items: numbered(2), top: 5, bottom: 5, want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectTopBottom(tt.items, domain.LevelAd, tt.top, tt.bottom)
			assert.Equal(t, tt.want, idsOf(got))
		})
	}
}

func TestSelectTopBottomWithoutIDs(t *testing.T) {
	// registros sem ID são distintos entre si, mas a mesma posição não se repete
	items := []domain.FlatInsight{{Spend: 1}, {Spend: 2}, {Spend: 3}}

	got := SelectTopBottom(items, domain.LevelAd, 2, 2)
	require.Len(t, got, 3)
	assert.Equal(t, []float64{1, 2, 3}, []float64{got[0].Spend, got[1].Spend, got[2].Spend})
}

func TestSelectTopBottomKeepsBreakdownRows(t *testing.T) {
	items := []domain.FlatInsight{
		{CampaignID: "1", Dimensions: map[string]string{"age": "18-24"}},
		{CampaignID: "1", Dimensions: map[string]string{"age": "25-34"}},
	}

	got := SelectTopBottom(items, domain.LevelCampaign, 1, 1)
	assert.Len(t, got, 2)
}

func TestCompact(t *testing.T) {
	items := []domain.FlatInsight{{
		AdSetID: "9", AdSetName: "Conjunto", Spend: 12, Results: 3, ResultType: "lead",
		CostPerResult: utils.Float64Ptr(4), Status: "ACTIVE", DailyBudget: "5000",
	}}

	compact := Compact(items, domain.LevelAdSet)
	require.Len(t, compact, 1)
	assert.Equal(t, domain.CompactInsight{
		Name: "Conjunto", ID: "9", Spend: 12, Results: 3, CostPerResult: utils.Float64Ptr(4),
		ResultType: "lead", Status: "ACTIVE", DailyBudget: "5000",
	}, compact[0])
}
