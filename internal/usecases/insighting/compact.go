package insighting

import "github.com/vfg2006/meta-ads-cli/internal/domain"

// Compact reduz cada registro ao mínimo para decisão, mantendo status e orçamento quando anexados
func Compact(items []domain.FlatInsight, level domain.Level) []domain.CompactInsight {
	out := make([]domain.CompactInsight, 0, len(items))
	for i := range items {
		item := &items[i]
		id, name := item.Entity(level)

		out = append(out, domain.CompactInsight{
			Name:           name,
			ID:             id,
			Spend:          item.Spend,
			Results:        item.Results,
			CostPerResult:  item.CostPerResult,
			ResultType:     item.ResultType,
			Status:         item.Status,
			DailyBudget:    item.DailyBudget,
			LifetimeBudget: item.LifetimeBudget,
		})
	}
	return out
}
