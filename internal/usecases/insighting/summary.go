package insighting

import (
	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/utils"
)

// effectiveCostPerResult usa o custo informado pela API e, na falta dele, gasto/resultados
func effectiveCostPerResult(item *domain.FlatInsight) (float64, bool) {
	if item.CostPerResult != nil {
		return *item.CostPerResult, true
	}
	if item.Results > 0 {
		return item.Spend / item.Results, true
	}
	return 0, false
}

// Summarize agrega o conjunto. Menor e maior custo por resultado consideram apenas entidades
// com resultados; em empate vence a primeira da entrada
func Summarize(items []domain.FlatInsight, level domain.Level) domain.InsightSummary {
	summary := domain.InsightSummary{EntityCount: len(items)}

	var lowest, highest *domain.PerformerRef
	var lowestCPR, highestCPR float64

	for i := range items {
		item := &items[i]

		summary.TotalSpend += item.Spend
		summary.TotalResults += item.Results
		summary.TotalImpressions += item.Impressions
		summary.TotalClicks += item.Clicks

		if item.Results <= 0 {
			continue
		}
		summary.WithResultsCount++

		cpr, ok := effectiveCostPerResult(item)
		if !ok {
			continue
		}

		if lowest == nil || cpr < lowestCPR {
			lowest, lowestCPR = performer(item, level, cpr), cpr
		}
		if highest == nil || cpr > highestCPR {
			highest, highestCPR = performer(item, level, cpr), cpr
		}
	}

	if summary.TotalResults > 0 {
		summary.AvgCostPerResult = utils.Float64Ptr(utils.RoundWithTwoDecimalPlace(summary.TotalSpend / summary.TotalResults))
	}
	if summary.TotalImpressions > 0 {
		summary.AvgCTR = utils.RoundWithTwoDecimalPlace(summary.TotalClicks / summary.TotalImpressions * 100)
	}

	summary.TotalSpend = utils.RoundWithTwoDecimalPlace(summary.TotalSpend)
	summary.LowestCPR = lowest
	summary.HighestCPR = highest
	summary.PrimaryResultType = PrimaryResultType(items)

	if len(items) > 0 {
		summary.DateStart = items[0].DateStart
		summary.DateStop = items[0].DateStop
	}

	return summary
}

func performer(item *domain.FlatInsight, level domain.Level, cpr float64) *domain.PerformerRef {
	id, name := item.Entity(level)
	return &domain.PerformerRef{
		ID:            id,
		Name:          name,
		CostPerResult: utils.RoundWithTwoDecimalPlace(cpr),
		Spend:         utils.RoundWithTwoDecimalPlace(item.Spend),
		Results:       item.Results,
	}
}

// PrimaryResultType é o tipo com mais resultados no conjunto; empate fica com o que apareceu primeiro
func PrimaryResultType(items []domain.FlatInsight) string {
	totals := map[string]float64{}
	order := make([]string, 0)

	for i := range items {
		resultType := items[i].ResultType
		if resultType == "" || resultType == domain.ResultTypeNone {
			continue
		}
		if _, ok := totals[resultType]; !ok {
			order = append(order, resultType)
		}
		totals[resultType] += items[i].Results
	}

	primary := ""
	for _, resultType := range order {
		if primary == "" || totals[resultType] > totals[primary] {
			primary = resultType
		}
	}
	return primary
}
