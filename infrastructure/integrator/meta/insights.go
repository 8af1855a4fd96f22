package meta

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	metadomain "github.com/vfg2006/meta-ads-cli/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-cli/pkg/log"
)

// insightFields resolve os campos pedidos: explícitos ou nível + base, depois vídeo e extras
func insightFields(q domain.InsightsQuery) domain.FieldSet {
	fields := q.Fields
	if len(fields) == 0 {
		fields = domain.InsightLevelFields[q.Level].With(domain.InsightBaseFields...)
	}
	if q.VideoMetrics {
		fields = fields.With(domain.InsightVideoFields...)
	}
	return fields.With(q.ExtraFields...)
}

func insightParams(q domain.InsightsQuery) (url.Values, error) {
	params := url.Values{}
	params.Set("level", string(q.Level))
	params.Set("fields", insightFields(q).String())

	if q.DatePreset != "" {
		params.Set("date_preset", q.DatePreset)
	}
	if q.TimeRange != nil {
		if err := setJSON(params, "time_range", q.TimeRange); err != nil {
			return nil, err
		}
	}
	if len(q.Breakdowns) > 0 {
		params.Set("breakdowns", strings.Join(q.Breakdowns, ","))
	}

	return params, nil
}

// GetInsights consulta {account}/insights. Sem --limit todas as páginas são lidas,
// para que resumos e ordenações vejam o conjunto completo
func (s *MetaIntegrator) GetInsights(ctx context.Context, q domain.InsightsQuery) ([]domain.Insight, error) {
	account, err := s.accountID()
	if err != nil {
		return nil, err
	}
	if q.Level == "" {
		q.Level = domain.LevelAccount
	}

	params, err := insightParams(q)
	if err != nil {
		return nil, err
	}

	endpoint := account + "/insights"
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"level":       q.Level,
		"date_preset": q.DatePreset,
		"breakdowns":  q.Breakdowns,
	})

	if q.Limit > 0 && !q.All {
		params.Set("limit", strconv.Itoa(q.Limit))

		var resp metadomain.ListResponse[domain.Insight]
		if err := s.Client.Get(ctx, endpoint, params, &resp); err != nil {
			return nil, err
		}
		if resp.Data == nil {
			resp.Data = make([]domain.Insight, 0)
		}

		logger.WithField("count", len(resp.Data)).Debug("Insights obtidos")
		return resp.Data, nil
	}

	params.Set("limit", strconv.Itoa(domain.WalkPageSize))
	data, err := Walk(ctx, func(ctx context.Context, cursor string) (*Page[domain.Insight], error) {
		query := url.Values{}
		for k, v := range params {
			query[k] = v
		}
		if cursor != "" {
			query.Set("after", cursor)
		}

		var resp metadomain.ListResponse[domain.Insight]
		if err := s.Client.Get(ctx, endpoint, query, &resp); err != nil {
			return nil, err
		}
		return &Page[domain.Insight]{Data: resp.Data, NextCursor: resp.Paging.NextCursor()}, nil
	}, DefaultMaxPages)
	if err != nil {
		return nil, err
	}

	logger.WithField("count", len(data)).Debug("Insights obtidos")
	return data, nil
}

// ListEntityStates devolve o estado de entrega de todas as entidades do nível, indexado por ID
func (s *MetaIntegrator) ListEntityStates(ctx context.Context, level domain.Level) (map[string]domain.EntityState, error) {
	account, err := s.accountID()
	if err != nil {
		return nil, err
	}

	var edge string
	switch level {
	case domain.LevelCampaign:
		edge = "campaigns"
	case domain.LevelAdSet:
		edge = "adsets"
	case domain.LevelAd:
		edge = "ads"
	default:
		return nil, apiErrors.Newf(apiErrors.ErrInvalidParameter, "Entity status is not available at %s level.", level)
	}

	params := url.Values{}
	params.Set("fields", domain.EntityStateFields.String())

	result, err := list[domain.EntityState](ctx, s.Client, account+"/"+edge, params, domain.ListOptions{All: true})
	if err != nil {
		return nil, err
	}

	states := make(map[string]domain.EntityState, len(result.Data))
	for _, state := range result.Data {
		states[state.ID] = state
	}
	return states, nil
}
