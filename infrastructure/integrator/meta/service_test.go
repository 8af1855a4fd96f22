package meta

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-ads-cli/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-cli/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/meta-ads-cli/internal/config"
	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/internal/graphtest"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newIntegrator(server *graphtest.Server) *MetaIntegrator {
	cfg := server.Config()
	return New(cfg, metaclient.NewClient(cfg))
}

func campaignsPage(ids ...string) []any {
	page := make([]any, 0, len(ids))
	for _, id := range ids {
		page = append(page, map[string]any{"id": id, "name": "Campanha " + id, "status": "ACTIVE"})
	}
	return page
}

func TestListCampaigns(t *testing.T) {
	tests := []struct {
		name     string
		opts     domain.ListOptions
		validate func(t *testing.T, server *graphtest.Server, result *domain.ListResult[domain.Campaign])
	}{
		{
			name: "primeira página expõe cursor",
			opts: domain.ListOptions{Status: "active"},
			validate: func(t *testing.T, server *graphtest.Server, result *domain.ListResult[domain.Campaign]) {
				assert.Len(t, result.Data, 2)
				require.NotNil(t, result.Paging)
				assert.True(t, result.Paging.HasNext)
				assert.Equal(t, "cursor-1", result.Paging.Cursor)

				requests := server.RequestsTo(http.MethodGet, "act_1/campaigns")
				require.Len(t, requests, 1)
				assert.Equal(t, "25", requests[0].Query.Get("limit"))
				assert.Equal(t, domain.CampaignListFields.String(), requests[0].Query.Get("fields"))
				assert.JSONEq(t, `[{"field":"status","operator":"IN","value":["ACTIVE"]}]`, requests[0].Query.Get("filtering"))
			},
		},
		{
			name: "cursor explícito",
			opts: domain.ListOptions{After: "cursor-2", Limit: 10},
			validate: func(t *testing.T, server *graphtest.Server, result *domain.ListResult[domain.Campaign]) {
				assert.Equal(t, "5", result.Data[0].ID)
				assert.Nil(t, result.Paging)

				requests := server.RequestsTo(http.MethodGet, "act_1/campaigns")
				require.Len(t, requests, 1)
				assert.Equal(t, "10", requests[0].Query.Get("limit"))
			},
		},
		{
			name: "todas as páginas",
			opts: domain.ListOptions{All: true},
			validate: func(t *testing.T, server *graphtest.Server, result *domain.ListResult[domain.Campaign]) {
				ids := make([]string, 0)
				for _, c := range result.Data {
					ids = append(ids, c.ID)
				}
				assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids)
				assert.Nil(t, result.Paging)

				requests := server.RequestsTo(http.MethodGet, "act_1/campaigns")
				require.Len(t, requests, 3)
				assert.Equal(t, "100", requests[0].Query.Get("limit"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := graphtest.New(t)
			server.Pages("act_1/campaigns", campaignsPage("1", "2"), campaignsPage("3", "4"), campaignsPage("5"))

			result, err := newIntegrator(server).ListCampaigns(context.Background(), tt.opts)
			require.NoError(t, err)

			tt.validate(t, server, result)
		})
	}
}

func TestCreateCampaign(t *testing.T) {
	server := graphtest.New(t)
	server.JSON(http.MethodPost, "act_1/campaigns", http.StatusOK, map[string]string{"id": "42"})
	server.JSON(http.MethodGet, "42", http.StatusOK, map[string]any{"id": "42", "name": "Black Friday", "status": "PAUSED", "objective": "OUTCOME_SALES"})

	campaign, err := newIntegrator(server).CreateCampaign(context.Background(), domain.CampaignCreate{
		Name:      "Black Friday",
		Objective: "OUTCOME_SALES",
	})
	require.NoError(t, err)

	assert.Equal(t, "42", campaign.ID)
	assert.Equal(t, domain.StatusPaused, campaign.Status)

	posts := server.RequestsTo(http.MethodPost, "act_1/campaigns")
	require.Len(t, posts, 1)
	assert.Equal(t, "PAUSED", posts[0].Form.Get("status"))
	assert.Equal(t, "[]", posts[0].Form.Get("special_ad_categories"))
	assert.Equal(t, graphtest.AccessToken, posts[0].Form.Get("access_token"))
	assert.Len(t, server.RequestsTo(http.MethodGet, "42"), 1)
}

func TestWritesFailBeforeNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// nenhuma expectativa: qualquer chamada ao cliente falha o teste
	client := mocks.NewMockClient(ctrl)

	tests := []struct {
		name      string
		accountID string
		call      func(s *MetaIntegrator) error
		wantCode  string
		wantField string
	}{
		{
			name: "sem conta configurada",
			call: func(s *MetaIntegrator) error {
				_, err := s.CreateCampaign(context.Background(), domain.CampaignCreate{Name: "x", Objective: "OUTCOME_SALES"})
				return err
			},
			wantCode: apiErrors.ErrInvalidAccountID,
		},
		{
			name:      "nome obrigatório",
			accountID: "123",
			call: func(s *MetaIntegrator) error {
				_, err := s.CreateCampaign(context.Background(), domain.CampaignCreate{Objective: "OUTCOME_SALES"})
				return err
			},
			wantCode:  apiErrors.ErrMissingRequiredField,
			wantField: "name",
		},
		{
			name:      "objetivo inválido",
			accountID: "123",
			call: func(s *MetaIntegrator) error {
				_, err := s.CreateCampaign(context.Background(), domain.CampaignCreate{Name: "x", Objective: "CONVERSIONS"})
				return err
			},
			wantCode:  apiErrors.ErrInvalidParameter,
			wantField: "objective",
		},
		{
			name:      "conjunto sem targeting",
			accountID: "123",
			call: func(s *MetaIntegrator) error {
				_, err := s.CreateAdSet(context.Background(), domain.AdSetCreate{
					Name: "x", CampaignID: "1", BillingEvent: "IMPRESSIONS", OptimizationGoal: "REACH",
				})
				return err
			},
			wantCode:  apiErrors.ErrMissingRequiredField,
			wantField: "targeting",
		},
		{
			name:      "anúncio sem criativo",
			accountID: "123",
			call: func(s *MetaIntegrator) error {
				_, err := s.CreateAd(context.Background(), domain.AdCreate{Name: "x", AdSetID: "1"})
				return err
			},
			wantCode:  apiErrors.ErrMissingRequiredField,
			wantField: "creative_id",
		},
		{
			name:      "vídeo com arquivo e url",
			accountID: "123",
			call: func(s *MetaIntegrator) error {
				_, err := s.UploadVideo(context.Background(), domain.VideoUpload{FilePath: "a.mp4", FileURL: "https://x/a.mp4"})
				return err
			},
			wantCode:  apiErrors.ErrInvalidParameter,
			wantField: "file_path",
		},
		{
			name:      "atualização vazia",
			accountID: "123",
			call: func(s *MetaIntegrator) error {
				_, err := s.UpdateCampaign(context.Background(), "1", domain.CampaignUpdate{})
				return err
			},
			wantCode: apiErrors.ErrMissingRequiredField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(&config.Config{Meta: config.Meta{AccountID: tt.accountID}}, client)

			err := tt.call(s)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apiErrors.Code(err))

			if tt.wantField != "" {
				var cliErr *apiErrors.CLIError
				require.ErrorAs(t, err, &cliErr)
				assert.Equal(t, tt.wantField, cliErr.Details["field"])
			}
		})
	}
}

func TestListAdsScope(t *testing.T) {
	tests := []struct {
		name     string
		opts     AdListOptions
		endpoint string
	}{
		{name: "conjunto tem prioridade", opts: AdListOptions{AdSetID: "7", CampaignID: "9"}, endpoint: "7/ads"},
		{name: "campanha", opts: AdListOptions{CampaignID: "9"}, endpoint: "9/ads"},
		{name: "conta", opts: AdListOptions{}, endpoint: "act_1/ads"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := graphtest.New(t)
			server.Pages(tt.endpoint, []any{map[string]any{"id": "1", "name": "Anúncio"}})

			tt.opts.Status = "PAUSED"
			tt.opts.IncludeCreative = true
			result, err := newIntegrator(server).ListAds(context.Background(), tt.opts)
			require.NoError(t, err)
			assert.Len(t, result.Data, 1)

			requests := server.RequestsTo(http.MethodGet, tt.endpoint)
			require.Len(t, requests, 1)
			assert.JSONEq(t, `[{"field":"effective_status","operator":"IN","value":["PAUSED"]}]`, requests[0].Query.Get("filtering"))
			assert.Contains(t, requests[0].Query.Get("fields"), "creative{")
		})
	}
}

func TestGetAdAccountNotFound(t *testing.T) {
	server := graphtest.New(t)

	_, err := newIntegrator(server).GetAdAccount(context.Background(), "999", nil)
	require.Error(t, err)
	assert.Equal(t, apiErrors.ErrInvalidAccountID, apiErrors.Code(err))

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "act_999", requests[0].Path)
}

func TestUploadImage(t *testing.T) {
	server := graphtest.New(t)
	server.JSON(http.MethodPost, "act_1/adimages", http.StatusOK, map[string]any{
		"images": map[string]any{"banner.png": map[string]any{"hash": "abc123", "url": "https://cdn/banner.png"}},
	})

	path := filepath.Join(t.TempDir(), "banner.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o600))

	image, err := newIntegrator(server).UploadImage(context.Background(), ImageUpload{FilePath: path})
	require.NoError(t, err)

	assert.Equal(t, "abc123", image.Hash)
	assert.Equal(t, "banner.png", image.Name)

	requests := server.RequestsTo(http.MethodPost, "act_1/adimages")
	require.Len(t, requests, 1)
	assert.Equal(t, "banner.png", requests[0].Files["filename"])
}

func TestUploadImageMissingFile(t *testing.T) {
	server := graphtest.New(t)

	_, err := newIntegrator(server).UploadImage(context.Background(), ImageUpload{FilePath: filepath.Join(t.TempDir(), "nope.png")})
	assert.Equal(t, apiErrors.ErrInvalidParameter, apiErrors.Code(err))
	assert.Empty(t, server.Requests())
}

func TestUploadVideo(t *testing.T) {
	t.Run("por url", func(t *testing.T) {
		server := graphtest.New(t)
		server.JSON(http.MethodPost, "act_1/advideos", http.StatusOK, map[string]string{"id": "v1"})

		video, err := newIntegrator(server).UploadVideo(context.Background(), domain.VideoUpload{Name: "Promo", FileURL: "https://cdn/promo.mp4"})
		require.NoError(t, err)
		assert.Equal(t, "v1", video.ID)

		requests := server.RequestsTo(http.MethodPost, "act_1/advideos")
		require.Len(t, requests, 1)
		assert.Equal(t, "https://cdn/promo.mp4", requests[0].Form.Get("file_url"))
		assert.Equal(t, "Promo", requests[0].Form.Get("name"))
	})

	t.Run("arquivo local", func(t *testing.T) {
		server := graphtest.New(t)
		server.JSON(http.MethodPost, "act_1/advideos", http.StatusOK, map[string]string{"id": "v2"})

		path := filepath.Join(t.TempDir(), "promo.mp4")
		require.NoError(t, os.WriteFile(path, []byte("mp4"), 0o600))

		video, err := newIntegrator(server).UploadVideo(context.Background(), domain.VideoUpload{FilePath: path})
		require.NoError(t, err)
		assert.Equal(t, "v2", video.ID)
		assert.Equal(t, "promo.mp4", video.Title)

		requests := server.RequestsTo(http.MethodPost, "act_1/advideos")
		require.Len(t, requests, 1)
		assert.Equal(t, "promo.mp4", requests[0].Files["source"])
		assert.Equal(t, graphtest.AccessToken, requests[0].Form.Get("access_token"))
	})
}

func TestGetInsights(t *testing.T) {
	page := func(ids ...string) []any {
		out := make([]any, 0)
		for _, id := range ids {
			out = append(out, map[string]any{"campaign_id": id, "spend": "10.00", "age": "25-34"})
		}
		return out
	}

	t.Run("percorre todas as páginas sem limite", func(t *testing.T) {
		server := graphtest.New(t)
		server.Pages("act_1/insights", page("1", "2"), page("3"))

		insights, err := newIntegrator(server).GetInsights(context.Background(), domain.InsightsQuery{
			Level:        domain.LevelCampaign,
			DatePreset:   "last_7d",
			Breakdowns:   []string{"age"},
			VideoMetrics: true,
		})
		require.NoError(t, err)
		require.Len(t, insights, 3)
		assert.Equal(t, "25-34", insights[0].Dimensions["age"])

		requests := server.RequestsTo(http.MethodGet, "act_1/insights")
		require.Len(t, requests, 2)
		query := requests[0].Query
		assert.Equal(t, "campaign", query.Get("level"))
		assert.Equal(t, "last_7d", query.Get("date_preset"))
		assert.Equal(t, "age", query.Get("breakdowns"))
		assert.Contains(t, query.Get("fields"), "campaign_name")
		assert.Contains(t, query.Get("fields"), "video_thruplay_watched_actions")
		assert.Equal(t, "100", query.Get("limit"))
	})

	t.Run("limite explícito lê uma página", func(t *testing.T) {
		server := graphtest.New(t)
		server.Pages("act_1/insights", page("1", "2"), page("3"))

		insights, err := newIntegrator(server).GetInsights(context.Background(), domain.InsightsQuery{
			Level:     domain.LevelCampaign,
			TimeRange: &domain.TimeRange{Since: "2024-01-01", Until: "2024-01-31"},
			Fields:    domain.FieldSet{"campaign_id", "spend"},
			Limit:     2,
		})
		require.NoError(t, err)
		assert.Len(t, insights, 2)

		requests := server.RequestsTo(http.MethodGet, "act_1/insights")
		require.Len(t, requests, 1)
		assert.Equal(t, "campaign_id,spend", requests[0].Query.Get("fields"))
		assert.JSONEq(t, `{"since":"2024-01-01","until":"2024-01-31"}`, requests[0].Query.Get("time_range"))
		assert.Empty(t, requests[0].Query.Get("date_preset"))
	})
}

func TestListEntityStates(t *testing.T) {
	server := graphtest.New(t)
	server.Pages("act_1/adsets",
		[]any{map[string]any{"id": "1", "effective_status": "ACTIVE", "daily_budget": "5000"}},
		[]any{map[string]any{"id": "2", "effective_status": "PAUSED"}},
	)

	s := newIntegrator(server)

	states, err := s.ListEntityStates(context.Background(), domain.LevelAdSet)
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.True(t, states["1"].IsActive())
	assert.Equal(t, "5000", states["1"].DailyBudget)
	assert.False(t, states["2"].IsActive())

	_, err = s.ListEntityStates(context.Background(), domain.LevelAccount)
	assert.Equal(t, apiErrors.ErrInvalidParameter, apiErrors.Code(err))
}

func TestUpdateEntityStatus(t *testing.T) {
	server := graphtest.New(t)
	server.JSON(http.MethodPost, "77", http.StatusOK, map[string]bool{"success": true})
	server.JSON(http.MethodGet, "77", http.StatusOK, map[string]any{"id": "77", "name": "Conjunto", "status": "ACTIVE"})

	entity, err := newIntegrator(server).UpdateEntityStatus(context.Background(), domain.KindAdSet, "77", domain.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, entity.GetStatus())

	posts := server.RequestsTo(http.MethodPost, "77")
	require.Len(t, posts, 1)
	assert.Equal(t, "ACTIVE", posts[0].Form.Get("status"))

	_, err = newIntegrator(server).GetEntity(context.Background(), domain.KindCreative, "1")
	assert.Equal(t, apiErrors.ErrInvalidParameter, apiErrors.Code(err))
}

func TestParamName(t *testing.T) {
	tests := map[string]string{
		"Name":            "name",
		"CampaignID":      "campaign_id",
		"AdSetID":         "adset_id",
		"FileURL":         "file_url",
		"ObjectStorySpec": "object_story_spec",
		"DailyBudget":     "daily_budget",
	}

	for in, want := range tests {
		assert.Equal(t, want, paramName(in), in)
	}
}
