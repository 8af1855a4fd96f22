package insighting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/internal/usecases/insighting/mocks"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-cli/pkg/utils"
	"go.uber.org/mock/gomock"
)

func newTestService(repo Repository) *Service {
	s := NewService(repo)
	s.now = func() time.Time { return time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC) }
	return s
}

func campaignInsight(id, spend, purchases string) domain.Insight {
	return domain.Insight{
		CampaignID:   id,
		CampaignName: "Campanha " + id,
		Spend:        spend,
		Impressions:  "1000",
		Clicks:       "10",
		Actions:      actions("purchase", purchases),
	}
}

func TestServiceGet(t *testing.T) {
	records := []domain.Insight{
		campaignInsight("1", "10", "2"),
		campaignInsight("2", "40", "2"),
		campaignInsight("3", "3", "0"),
	}

	tests := []struct {
		name     string
		opts     Options
		setup    func(repo *mocks.MockRepository)
		validate func(t *testing.T, result any, err error)
	}{
		{
			name: "registros brutos sem normalização",
			opts: Options{Query: domain.InsightsQuery{Level: domain.LevelCampaign, DatePreset: "last_7d"}},
			setup: func(repo *mocks.MockRepository) {
				repo.EXPECT().
					GetInsights(gomock.Any(), domain.InsightsQuery{Level: domain.LevelCampaign, DatePreset: "last_7d"}).
					Return(records, nil)
			},
			validate: func(t *testing.T, result any, err error) {
				require.NoError(t, err)
				assert.Equal(t, records, result)
			},
		},
		{
			name: "compacto filtrado e ordenado",
			opts: Options{
				Query:   domain.InsightsQuery{Level: domain.LevelCampaign},
				Compact: true,
				Filters: FilterOptions{MinResults: utils.Float64Ptr(1)},
				SortBy:  "cost_per_result",
			},
			setup: func(repo *mocks.MockRepository) {
				repo.EXPECT().GetInsights(gomock.Any(), gomock.Any()).Return(records, nil)
			},
			validate: func(t *testing.T, result any, err error) {
				require.NoError(t, err)
				compact, ok := result.([]domain.CompactInsight)
				require.True(t, ok)
				require.Len(t, compact, 2)
				assert.Equal(t, "1", compact[0].ID)
				assert.Equal(t, "Campanha 1", compact[0].Name)
				assert.Equal(t, "2", compact[1].ID)
			},
		},
		{
			name: "filtro sem modo explícito normaliza",
			opts: Options{
				Query: domain.InsightsQuery{Level: domain.LevelCampaign},
				Top:   1,
			},
			setup: func(repo *mocks.MockRepository) {
				repo.EXPECT().GetInsights(gomock.Any(), gomock.Any()).Return(records, nil)
			},
			validate: func(t *testing.T, result any, err error) {
				require.NoError(t, err)
				flat, ok := result.([]domain.FlatInsight)
				require.True(t, ok)
				require.Len(t, flat, 1)
				assert.Equal(t, "1", flat[0].CampaignID)
			},
		},
		{
			name: "active-only busca estados em paralelo",
			opts: Options{
				Query:          domain.InsightsQuery{Level: domain.LevelCampaign},
				ActiveOnly:     true,
				IncludeContext: true,
			},
			setup: func(repo *mocks.MockRepository) {
				repo.EXPECT().GetInsights(gomock.Any(), gomock.Any()).Return(records, nil)
				repo.EXPECT().
					ListEntityStates(gomock.Any(), domain.LevelCampaign).
					Return(map[string]domain.EntityState{
						"1": {ID: "1", EffectiveStatus: "PAUSED"},
						"2": {ID: "2", EffectiveStatus: "ACTIVE", DailyBudget: "5000"},
					}, nil)
			},
			validate: func(t *testing.T, result any, err error) {
				require.NoError(t, err)
				flat := result.([]domain.FlatInsight)
				require.Len(t, flat, 1)
				assert.Equal(t, "2", flat[0].CampaignID)
				assert.Equal(t, "ACTIVE", flat[0].Status)
				assert.Equal(t, "5000", flat[0].DailyBudget)
			},
		},
		{
			name: "active-only no nível de conta é ignorado",
			opts: Options{
				Query:      domain.InsightsQuery{Level: domain.LevelAccount},
				ActiveOnly: true,
				Summary:    true,
			},
			setup: func(repo *mocks.MockRepository) {
				repo.EXPECT().GetInsights(gomock.Any(), gomock.Any()).Return([]domain.Insight{campaignInsight("", "10", "1")}, nil)
			},
			validate: func(t *testing.T, result any, err error) {
				require.NoError(t, err)
				summary := result.(domain.InsightSummary)
				assert.Equal(t, 1, summary.EntityCount)
			},
		},
		{
			name: "falha ao listar estados propaga",
			opts: Options{
				Query:      domain.InsightsQuery{Level: domain.LevelAd},
				ActiveOnly: true,
			},
			setup: func(repo *mocks.MockRepository) {
				repo.EXPECT().GetInsights(gomock.Any(), gomock.Any()).Return(records, nil).AnyTimes()
				repo.EXPECT().
					ListEntityStates(gomock.Any(), domain.LevelAd).
					Return(nil, apiErrors.New(apiErrors.ErrRateLimitExceeded, ""))
			},
			validate: func(t *testing.T, result any, err error) {
				assert.Nil(t, result)
				assert.Equal(t, apiErrors.ErrRateLimitExceeded, apiErrors.Code(err))
			},
		},
		{
			name: "resumo com breakdowns",
			opts: Options{
				Query:            domain.InsightsQuery{Level: domain.LevelCampaign, Breakdowns: []string{"age"}},
				Summary:          true,
				BreakdownSummary: true,
			},
			setup: func(repo *mocks.MockRepository) {
				withAge := []domain.Insight{campaignInsight("1", "10", "2"), campaignInsight("1", "20", "1")}
				withAge[0].Dimensions = map[string]string{"age": "18-24"}
				withAge[1].Dimensions = map[string]string{"age": "25-34"}
				repo.EXPECT().GetInsights(gomock.Any(), gomock.Any()).Return(withAge, nil)
			},
			validate: func(t *testing.T, result any, err error) {
				require.NoError(t, err)
				report := result.(Report)
				assert.Equal(t, 30.0, report.Summary.TotalSpend)
				require.Len(t, report.Breakdowns, 1)
				assert.Equal(t, "25-34", report.Breakdowns[0].Values[0].Value)
			},
		},
		{
			name: "objetivo pede o campo objective",
			opts: Options{
				Query:       domain.InsightsQuery{Level: domain.LevelCampaign},
				ByObjective: true,
				Flatten:     true,
			},
			setup: func(repo *mocks.MockRepository) {
				repo.EXPECT().
					GetInsights(gomock.Any(), domain.InsightsQuery{Level: domain.LevelCampaign, ExtraFields: domain.FieldSet{"objective"}}).
					Return(nil, nil)
			},
			validate: func(t *testing.T, result any, err error) {
				require.NoError(t, err)
				assert.Empty(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// mock novo por caso
			repo := mocks.NewMockRepository(ctrl)
			tt.setup(repo)

			result, err := newTestService(repo).Get(context.Background(), tt.opts)
			tt.validate(t, result, err)
		})
	}
}

func TestServiceCompare(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRepository(ctrl)

	repo.EXPECT().
		GetInsights(gomock.Any(), domain.InsightsQuery{Level: domain.LevelAccount, DatePreset: "last_7d"}).
		Return([]domain.Insight{{Spend: "100", Actions: actions("purchase", "10")}}, nil)
	repo.EXPECT().
		GetInsights(gomock.Any(), domain.InsightsQuery{
			Level:     domain.LevelAccount,
			TimeRange: &domain.TimeRange{Since: "2024-01-02", Until: "2024-01-08"},
		}).
		Return([]domain.Insight{{Spend: "200", Actions: actions("purchase", "10")}}, nil)

	result, err := newTestService(repo).Get(context.Background(), Options{
		Query:   domain.InsightsQuery{Level: domain.LevelAccount},
		Compare: "last_7d:previous_7d",
	})
	require.NoError(t, err)

	comparison, ok := result.(*domain.PeriodComparison)
	require.True(t, ok)
	assert.Equal(t, 10.0, *comparison.CostPerResult.Current)
	assert.Equal(t, 20.0, *comparison.CostPerResult.Previous)
	assert.Equal(t, -50.0, *comparison.CostPerResult.ChangePct)
	assert.Equal(t, domain.TrendImproving, comparison.Trend)
	assert.Equal(t, "purchase", comparison.ResultType)
	assert.Equal(t, domain.Period{Preset: "previous_7d", Start: "2024-01-02", End: "2024-01-08"}, comparison.PreviousPeriod)
	assert.Empty(t, comparison.Warning)
}

func TestServiceValidationFailsBeforeFetching(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// nenhuma expectativa registrada: qualquer chamada ao repositório falha o teste
	service := newTestService(mocks.NewMockRepository(ctrl))

	tests := []struct {
		name     string
		opts     Options
		wantCode string
	}{
		{name: "nível inválido", opts: Options{Query: domain.InsightsQuery{Level: "global"}}, wantCode: apiErrors.ErrInvalidParameter},
		{name: "preset inválido", opts: Options{Query: domain.InsightsQuery{Level: domain.LevelAd, DatePreset: "last_2d"}}, wantCode: apiErrors.ErrInvalidParameter},
		{
			name:     "since depois de until",
			opts:     Options{Query: domain.InsightsQuery{Level: domain.LevelAd, TimeRange: &domain.TimeRange{Since: "2024-02-01", Until: "2024-01-01"}}},
			wantCode: apiErrors.ErrInvalidParameter,
		},
		{
			name:     "until vazio",
			opts:     Options{Query: domain.InsightsQuery{Level: domain.LevelAd, TimeRange: &domain.TimeRange{Since: "2024-01-01"}}},
			wantCode: apiErrors.ErrInvalidParameter,
		},
		{
			name:     "data mal formatada",
			opts:     Options{Query: domain.InsightsQuery{Level: domain.LevelAd, TimeRange: &domain.TimeRange{Since: "01/02/2024", Until: "2024-01-01"}}},
			wantCode: apiErrors.ErrInvalidParameter,
		},
		{
			name:     "preset e intervalo juntos",
			opts:     Options{Query: domain.InsightsQuery{Level: domain.LevelAd, DatePreset: "last_7d", TimeRange: &domain.TimeRange{Since: "2024-01-01", Until: "2024-01-02"}}},
			wantCode: apiErrors.ErrInvalidParameter,
		},
		{name: "breakdown desconhecido", opts: Options{Query: domain.InsightsQuery{Level: domain.LevelAd, Breakdowns: []string{"zodiac"}}}, wantCode: apiErrors.ErrInvalidParameter},
		{name: "breakdown-summary sem breakdowns", opts: Options{Query: domain.InsightsQuery{Level: domain.LevelAd}, BreakdownSummary: true}, wantCode: apiErrors.ErrMissingRequiredField},
		{name: "campo de ordenação desconhecido", opts: Options{Query: domain.InsightsQuery{Level: domain.LevelAd}, SortBy: "roas"}, wantCode: apiErrors.ErrInvalidParameter},
		{name: "top negativo", opts: Options{Query: domain.InsightsQuery{Level: domain.LevelAd}, Top: -1}, wantCode: apiErrors.ErrInvalidParameter},
		{name: "compare com preset", opts: Options{Query: domain.InsightsQuery{Level: domain.LevelAd, DatePreset: "last_7d"}, Compare: "last_7d:previous_7d"}, wantCode: apiErrors.ErrInvalidParameter},
		{name: "compare mal formatado", opts: Options{Query: domain.InsightsQuery{Level: domain.LevelAd}, Compare: "last_7d"}, wantCode: apiErrors.ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Get(context.Background(), tt.opts)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apiErrors.Code(err))
		})
	}
}

func TestServiceAcceptsSingleDayRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	query := domain.InsightsQuery{Level: domain.LevelAd, TimeRange: &domain.TimeRange{Since: "2024-01-15", Until: "2024-01-15"}}

	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().GetInsights(gomock.Any(), query).Return(nil, nil)

	result, err := newTestService(repo).Get(context.Background(), Options{Query: query})
	require.NoError(t, err)
	assert.Empty(t, result)
}
