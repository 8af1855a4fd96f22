package insighting

import (
	"sort"

	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/utils"
)

// UnknownDimensionValue agrupa registros que não trouxeram a dimensão
const UnknownDimensionValue = "unknown"

// SummarizeBreakdowns agrupa por valor distinto de cada dimensão, somando gasto, resultados e impressões
func SummarizeBreakdowns(items []domain.FlatInsight, dimensions []string) []domain.BreakdownSummary {
	out := make([]domain.BreakdownSummary, 0, len(dimensions))
	for _, dimension := range dimensions {
		out = append(out, summarizeDimension(items, dimension))
	}
	return out
}

func summarizeDimension(items []domain.FlatInsight, dimension string) domain.BreakdownSummary {
	index := map[string]int{}
	values := make([]domain.BreakdownValue, 0)

	for i := range items {
		value, ok := items[i].Dimensions[dimension]
		if !ok || value == "" {
			value = UnknownDimensionValue
		}

		pos, ok := index[value]
		if !ok {
			pos = len(values)
			index[value] = pos
			values = append(values, domain.BreakdownValue{Value: value})
		}

		values[pos].Spend += items[i].Spend
		values[pos].Results += items[i].Results
		values[pos].Impressions += items[i].Impressions
	}

	for i := range values {
		if values[i].Results > 0 {
			values[i].CostPerResult = utils.Float64Ptr(utils.RoundWithTwoDecimalPlace(values[i].Spend / values[i].Results))
		}
		values[i].Spend = utils.RoundWithTwoDecimalPlace(values[i].Spend)
	}

	sort.SliceStable(values, func(i, j int) bool {
		return values[i].Spend > values[j].Spend
	})

	summary := domain.BreakdownSummary{Dimension: dimension, Values: values}
	for i := range values {
		cpr := values[i].CostPerResult
		if cpr == nil {
			continue
		}
		if summary.LowestCPR == nil || *cpr < *summary.LowestCPR.CostPerResult {
			v := values[i]
			summary.LowestCPR = &v
		}
		if summary.HighestCPR == nil || *cpr > *summary.HighestCPR.CostPerResult {
			v := values[i]
			summary.HighestCPR = &v
		}
	}

	return summary
}
