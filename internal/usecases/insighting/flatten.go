package insighting

import (
	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/utils"
)

// Flatten normaliza um registro bruto. results e cost_per_result vêm do mesmo tipo casado;
// sem entrada de custo correspondente, cost_per_result fica nulo
func Flatten(record domain.Insight, matcher *ActionMatcher) domain.FlatInsight {
	flat := domain.FlatInsight{
		CampaignID:   record.CampaignID,
		CampaignName: record.CampaignName,
		AdSetID:      record.AdSetID,
		AdSetName:    record.AdSetName,
		AdID:         record.AdID,
		AdName:       record.AdName,

		Spend:       utils.NumberOrZero(record.Spend),
		Impressions: utils.NumberOrZero(record.Impressions),
		Reach:       utils.NumberOrZero(record.Reach),
		Clicks:      utils.NumberOrZero(record.Clicks),
		CTR:         utils.NumberOrZero(record.CTR),
		CPC:         optionalNumber(record.CPC),
		CPM:         optionalNumber(record.CPM),

		ResultType: domain.ResultTypeNone,

		Dimensions: record.Dimensions,
		DateStart:  record.DateStart,
		DateStop:   record.DateStop,
	}

	if actionType, action, ok := matcher.Match(record.Actions); ok {
		flat.ResultType = actionType
		flat.Results = utils.NumberOrZero(action.Value)

		if cost, ok := matcher.Find(record.CostPerActionType, actionType); ok {
			flat.CostPerResult = optionalNumber(cost.Value)
		}
	}

	flat.LinkClicks = exactAction(record.Actions, "link_click")
	flat.LandingPageViews = exactAction(record.Actions, "landing_page_view")

	flat.VideoPlays = sumActions(record.VideoPlayActions)
	flat.VideoThruplay = sumActions(record.VideoThruplayActions)
	flat.VideoP25 = sumActions(record.VideoP25Actions)
	flat.VideoP50 = sumActions(record.VideoP50Actions)
	flat.VideoP75 = sumActions(record.VideoP75Actions)
	flat.VideoP100 = sumActions(record.VideoP100Actions)

	return flat
}

// FlattenAll normaliza todos os registros sem descartar nenhum. Com byObjective, cada registro
// prioriza a ação do objetivo da sua campanha
func FlattenAll(records []domain.Insight, matcher *ActionMatcher, byObjective bool) []domain.FlatInsight {
	out := make([]domain.FlatInsight, 0, len(records))
	for _, record := range records {
		m := matcher
		if byObjective {
			m = matcher.ForObjective(record.Objective)
		}
		out = append(out, Flatten(record, m))
	}
	return out
}

func optionalNumber(s string) *float64 {
	value, ok := utils.ParseNumber(s)
	if !ok {
		return nil
	}
	return &value
}

func exactAction(actions []domain.Action, actionType string) float64 {
	for _, action := range actions {
		if action.ActionType == actionType {
			return utils.NumberOrZero(action.Value)
		}
	}
	return 0
}

// sumActions soma as entradas de uma métrica de vídeo; nil quando a métrica não veio
func sumActions(actions []domain.Action) *float64 {
	if len(actions) == 0 {
		return nil
	}

	total := 0.0
	for _, action := range actions {
		total += utils.NumberOrZero(action.Value)
	}
	return &total
}
