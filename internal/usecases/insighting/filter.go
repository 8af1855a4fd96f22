package insighting

import "github.com/vfg2006/meta-ads-cli/internal/domain"

// FilterOptions são limites inferiores e o tipo de resultado exigido; nil/"" desliga o predicado
type FilterOptions struct {
	MinSpend       *float64
	MinImpressions *float64
	MinResults     *float64
	ResultType     string
}

func (o FilterOptions) IsZero() bool {
	return o.MinSpend == nil && o.MinImpressions == nil && o.MinResults == nil && o.ResultType == ""
}

// Filter mantém os registros que satisfazem todos os predicados, na ordem original
func Filter(items []domain.FlatInsight, opts FilterOptions) []domain.FlatInsight {
	out := make([]domain.FlatInsight, 0, len(items))
	for _, item := range items {
		if opts.MinSpend != nil && item.Spend < *opts.MinSpend {
			continue
		}
		if opts.MinImpressions != nil && item.Impressions < *opts.MinImpressions {
			continue
		}
		if opts.MinResults != nil && item.Results < *opts.MinResults {
			continue
		}
		if opts.ResultType != "" && item.ResultType != opts.ResultType {
			continue
		}
		out = append(out, item)
	}
	return out
}
